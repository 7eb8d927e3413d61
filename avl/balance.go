// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// cached height, -1 for an absent node
func height[K, V any](p *node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// right height - left height, 0 for an absent node
func balance[K, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

func updateHeight[K, V any](p *node[K, V]) {
	if nil == p {
		return
	}
	p.height = 1 + max(height(p.left), height(p.right))
}

// ensureBalance - restore the AVL condition at the node held in a slot
//
// the children must already be balanced and have correct heights
func ensureBalance[K, V any](pp **node[K, V]) {
	p := *pp
	if nil == p {
		return
	}

	initial := balance(p)
	switch initial {
	case -2: // left branch is too high
		if balance(p.left) <= 0 {
			rotateRight(pp)
		} else {
			rotateLeftRight(pp)
		}
	case -1, 0, +1:
	case +2: // right branch is too high
		if balance(p.right) >= 0 {
			rotateLeft(pp)
		} else {
			rotateRightLeft(pp)
		}
	default:
		fault.Panicf("avl: node: %v  invalid initial balance: %d", p.key, initial)
	}

	// heights below were refreshed by any rotation, this node may
	// have changed height without changing balance
	updateHeight(*pp)

	if final := balance(*pp); final < -1 || final > 1 {
		fault.Panicf("avl: node: %v  invalid final balance: %d", (*pp).key, final)
	}
}

// single left rotation
//
//	   x                y
//	  / \              / \
//	 a   y     →      x   c
//	    / \          / \
//	   z   c        a   z
func rotateLeft[K, V any](pp **node[K, V]) {
	x := *pp
	if nil == x {
		fault.Panicf("avl: rotate left of empty slot")
	}
	y := x.right
	if nil == y {
		fault.Panicf("avl: rotate left: node: %v has no right child", x.key)
	}
	z := y.left

	x.right = z
	y.left = x
	*pp = y

	// x is now below y
	updateHeight(x)
	updateHeight(y)
}

// single right rotation, mirror of rotateLeft
func rotateRight[K, V any](pp **node[K, V]) {
	x := *pp
	if nil == x {
		fault.Panicf("avl: rotate right of empty slot")
	}
	y := x.left
	if nil == y {
		fault.Panicf("avl: rotate right: node: %v has no left child", x.key)
	}
	z := y.right

	x.left = z
	y.right = x
	*pp = y

	updateHeight(x)
	updateHeight(y)
}

// double LR rotation: a left heavy node whose left child is right heavy
func rotateLeftRight[K, V any](pp **node[K, V]) {
	if nil == *pp {
		fault.Panicf("avl: rotate left-right of empty slot")
	}
	rotateLeft(&(*pp).left)
	rotateRight(pp)
}

// double RL rotation: a right heavy node whose right child is left heavy
func rotateRightLeft[K, V any](pp **node[K, V]) {
	if nil == *pp {
		fault.Panicf("avl: rotate right-left of empty slot")
	}
	rotateRight(&(*pp).right)
	rotateLeft(pp)
}
