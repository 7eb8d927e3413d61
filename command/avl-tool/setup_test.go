// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "avl-tool-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "avl-tool.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	if err := fault.Initialise(); nil != err {
		panic(fmt.Sprintf("fault initialization failed: %s", err))
	}

	rc := m.Run()

	fault.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}
