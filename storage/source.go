// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// FillResult - totals from a Fill
type FillResult struct {
	Inserted   int
	Duplicates int
}

func prefixKey(prefix []byte, key []byte) []byte {
	k := make([]byte, 0, len(prefix)+len(key))
	k = append(k, prefix...)
	return append(k, key...)
}

// Put - store a single record under prefix
func (s *Source) Put(prefix []byte, key []byte, value []byte) error {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return fault.ErrDatabaseClosed
	}
	return s.db.Put(prefixKey(prefix, key), value, nil)
}

// Get - fetch a single record from under prefix
func (s *Source) Get(prefix []byte, key []byte) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrDatabaseClosed
	}
	value, err := s.db.Get(prefixKey(prefix, key), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrKeyNotFound
	}
	return value, err
}

// Fill - insert up to limit records with the given prefix into tree
//
// a limit of zero or less means no limit, keys already present in the
// tree are counted as duplicates and left unchanged
func (s *Source) Fill(tree *avl.Tree[string, string], prefix []byte, limit int) (FillResult, error) {
	s.RLock()
	defer s.RUnlock()

	result := FillResult{}
	if nil == s.db {
		return result, fault.ErrDatabaseClosed
	}

	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

iterating:
	for iter.Next() {
		if limit > 0 && result.Inserted+result.Duplicates >= limit {
			break iterating
		}

		// string conversion copies the iterator's buffers
		key := string(iter.Key()[len(prefix):])
		value := string(iter.Value())

		err := tree.Insert(key, value)
		switch {
		case nil == err:
			result.Inserted += 1
		case fault.IsErrExists(err):
			s.log.Debugf("duplicate key: %q", key)
			result.Duplicates += 1
		default:
			return result, err
		}
	}

	s.log.Infof("fill prefix: %q  inserted: %d  duplicates: %d", prefix, result.Inserted, result.Duplicates)
	return result, iter.Error()
}

// Save - write every entry of tree under prefix as one batch
func (s *Source) Save(tree *avl.Tree[string, string], prefix []byte) (int, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return 0, fault.ErrDatabaseClosed
	}

	batch := new(leveldb.Batch)
	for key, value := range tree.InOrder() {
		batch.Put(prefixKey(prefix, []byte(key)), []byte(value))
	}

	n := batch.Len()
	err := s.db.Write(batch, nil)
	if nil != err {
		return 0, err
	}
	s.log.Infof("save prefix: %q  records: %d", prefix, n)
	return n, nil
}
