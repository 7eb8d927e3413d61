// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// maximum number of reclaimed nodes kept for reuse
const poolLimit = 256

// a node in the tree
type node[K, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 0 for a leaf, -1 is used for an absent node
}

// per-tree node allocator
type allocator[K, V any] struct {
	pool    *node[K, V] // linked list (via left) of reclaimed nodes
	created counter.Counter
	reused  counter.Counter
	free    counter.Counter
}

// Stats - node allocation statistics for a tree
type Stats struct {
	Created uint64 // nodes obtained from the Go allocator
	Reused  uint64 // nodes taken from the reclaim pool
	Free    uint64 // nodes currently held in the reclaim pool
}

// Stats - read the allocation statistics
func (tree *Tree[K, V]) Stats() Stats {
	return Stats{
		Created: tree.alloc.created.Uint64(),
		Reused:  tree.alloc.reused.Uint64(),
		Free:    tree.alloc.free.Uint64(),
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *allocator[K, V]) newNode(key K, value V) *node[K, V] {
	if nil == a.pool {
		if !a.free.IsZero() {
			panic("pool corrupt")
		}
		a.created.Increment()
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 0,
		}
	}
	p := a.pool
	a.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.key = key
	p.value = value
	a.free.Decrement()
	a.reused.Increment()
	return p
}

// reclaim a node that is no longer linked into the tree
func (a *allocator[K, V]) freeNode(p *node[K, V]) {
	var k K
	var v V
	p.key = k
	p.value = v
	p.right = nil
	p.height = 0

	if a.free.Uint64() >= poolLimit {
		p.left = nil
		return
	}
	p.left = a.pool // use as free list pointer
	a.pool = p
	a.free.Increment()
}

// give all pooled nodes back to the Go allocator
func (a *allocator[K, V]) drain() {
	a.pool = nil
	a.free.Reset()
}
