// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - LevelDB key/value source for populating trees
//
// keys are grouped into tables by a byte prefix:
//
//   prefix ++ key              - data: value
//
// Fill inserts the records of one prefix into an avl.Tree, one
// Insert at a time, with the prefix stripped from each key.  Save
// writes a tree back under a prefix in a single batch.
package storage
