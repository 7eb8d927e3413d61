// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific item from the tree and returns its value
func (tree *Tree[K, V]) Remove(key K) (V, error) {
	path := make([]**node[K, V], 0, tree.pathHint())
	pp := tree.locate(key, &path)
	if nil == *pp { // key not in tree
		var nothing V
		return nothing, fault.ErrKeyNotFound
	}

	value := tree.removeAt(pp)
	tree.count -= 1

	rebalance(path)
	tree.verify("remove")
	return value, nil
}

// unlink the node held in a slot, reclaim it and return its value
func (tree *Tree[K, V]) removeAt(pp **node[K, V]) V {
	q := *pp
	switch {
	case nil == q.left && nil == q.right:
		*pp = nil
	case nil == q.right:
		*pp = q.left
	case nil == q.left:
		*pp = q.right
	default:
		return tree.removeByPredecessor(pp)
	}
	value := q.value // preserve the value part
	tree.alloc.freeNode(q)
	return value
}

// delete a node with two children: the in-order predecessor node is
// moved into its place and the node is then deleted from the
// predecessor's old position
func (tree *Tree[K, V]) removeByPredecessor(target **node[K, V]) V {
	value := tree.predecessorRemove(target, nil)
	ensureBalance(target)
	return value
}

// descend right from the left child of the target, then on the way
// back up rebalance each node that was passed
func (tree *Tree[K, V]) predecessorRemove(target **node[K, V], parent *node[K, V]) V {
	pp := predecessorSlot(target, parent)
	p := *pp
	if nil == p {
		fault.Panicf("avl: node: %v  in-order predecessor not found", (*target).key)
	}

	if nil != p.right {
		value := tree.predecessorRemove(target, p)

		// when parent is nil the slot belongs to whichever node is
		// now at the target, so it must not be reused from above
		ensureBalance(predecessorSlot(target, parent))
		return value
	}

	moved := swapNodes(target, pp)
	if nil != (*moved).right {
		fault.Panicf("avl: node: %v  has right child after predecessor swap", (*moved).key)
	}
	return tree.removeAt(moved)
}

// the first step is the left link of the target, after that it is
// always the right link of the previous node
func predecessorSlot[K, V any](target **node[K, V], parent *node[K, V]) **node[K, V] {
	if nil == parent {
		return &(*target).left
	}
	return &parent.right
}

// swapNodes - exchange the tree positions of the nodes held in two
// slots, one node must be in the sub-tree of the other and when they
// are not adjacent the second node must be the lower one
//
// links and cached heights are exchanged, keys and values stay with
// their nodes.  Returns the slot that now holds the node that moved
// down.
func swapNodes[K, V any](pp1 **node[K, V], pp2 **node[K, V]) **node[K, V] {
	n1 := *pp1
	n2 := *pp2

	n1.height, n2.height = n2.height, n1.height

	switch {
	case n1.left == n2: // pp2 is &n1.left
		n1.right, n2.right = n2.right, n1.right
		n1.left = n2.left
		n2.left = n1
		*pp1 = n2
		return &n2.left

	case n1.right == n2: // pp2 is &n1.right
		n1.left, n2.left = n2.left, n1.left
		n1.right = n2.right
		n2.right = n1
		*pp1 = n2
		return &n2.right

	case n2.left == n1: // pp1 is &n2.left
		n1.right, n2.right = n2.right, n1.right
		n2.left = n1.left
		n1.left = n2
		*pp2 = n1
		return &n1.left

	case n2.right == n1: // pp1 is &n2.right
		n1.left, n2.left = n2.left, n1.left
		n2.right = n1.right
		n1.right = n2
		*pp2 = n1
		return &n1.right

	default: // not adjacent, neither slot belongs to n1 or n2
		n1.left, n2.left = n2.left, n1.left
		n1.right, n2.right = n2.right, n1.right
		*pp1, *pp2 = n2, n1
		return pp2
	}
}
