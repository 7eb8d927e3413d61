// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree
//
// an existing key is not overwritten, fault.ErrDuplicateKey is
// returned and the tree is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) error {
	path := make([]**node[K, V], 0, tree.pathHint())
	pp := tree.locate(key, &path)
	if nil != *pp {
		return fault.ErrDuplicateKey
	}

	*pp = tree.alloc.newNode(key, value)
	tree.count += 1

	rebalance(path)
	tree.verify("insert")
	return nil
}

// rebalance every ancestor, innermost first
//
// each slot belongs to the node above it, which is not touched until
// its own turn, so the slots stay valid while rotations happen below
func rebalance[K, V any](path []**node[K, V]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		ensureBalance(path[i])
	}
}

// capacity for an ancestor path: root height plus the new leaf level
func (tree *Tree[K, V]) pathHint() int {
	return height(tree.root) + 2
}
