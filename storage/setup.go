// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avltree/fault"
)

// Source - a LevelDB database holding key/value records
type Source struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the database in a directory
//
// a read-only open requires the database to exist
func Open(directory string, readOnly bool) (*Source, error) {
	if "" == directory {
		return nil, fault.ErrMissingDatabase
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	s := NewSource(db)
	s.log.Infof("opened: %q  read only: %t", directory, readOnly)
	return s, nil
}

// NewSource - wrap an already open database
func NewSource(db *leveldb.DB) *Source {
	return &Source{
		log: logger.New("storage"),
		db:  db,
	}
}

// Close - release the database, further access returns
// fault.ErrDatabaseClosed
func (s *Source) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrDatabaseClosed
	}
	err := s.db.Close()
	s.db = nil
	s.log.Info("closed")
	return err
}
