// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - return a handle to the value stored for key
//
// the handle may be used to update the value in place, it is only
// valid until key is deleted
func (tree *Tree[K, V]) Find(key K) (*V, error) {
	p := *tree.locate(key, nil)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return &p.value, nil
}

// Contains - true if key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != *tree.locate(key, nil)
}

// locate - return the slot that holds key, or the empty slot where it
// would be inserted
//
// if path is not nil the slots of all the ancestors of the returned
// slot are appended to it, root first
func (tree *Tree[K, V]) locate(key K, path *[]**node[K, V]) **node[K, V] {
	pp := &tree.root
	for p := *pp; nil != p; p = *pp {
		c := tree.compare(key, p.key)
		if 0 == c {
			break
		}
		if nil != path {
			*path = append(*path, pp)
		}
		if c < 0 {
			pp = &p.left
		} else {
			pp = &p.right
		}
	}
	return pp
}
