// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the whole tree
//
// checks that every cached height is correct, every balance factor
// is in [-1, +1], the keys are in strictly ascending order and the
// number of nodes matches Count
func (tree *Tree[K, V]) Check() error {
	_, err := tree.check()
	return err
}

// run the checks, returning the first node that failed
func (tree *Tree[K, V]) check() (*node[K, V], error) {
	c := checker[K, V]{compare: tree.compare}
	if p, err := c.heights(tree.root); nil != err {
		return p, err
	}
	if p, err := c.order(tree.root); nil != err {
		return p, err
	}
	if c.count != tree.count {
		return nil, fault.ErrCountMismatch
	}
	return nil, nil
}

// called after each mutation when checks are enabled
func (tree *Tree[K, V]) verify(operation string) {
	if !tree.checks {
		return
	}
	if p, err := tree.check(); nil != err {
		if nil == p {
			fault.Panicf("avl: after %s: %s", operation, err)
		}
		fault.Panicf("avl: after %s: node: %v  %s", operation, p.key, err)
	}
}

type checker[K, V any] struct {
	compare func(a, b K) int
	count   int
	last    *node[K, V]
}

// post-order: children are checked before their parent
func (c *checker[K, V]) heights(p *node[K, V]) (*node[K, V], error) {
	if nil == p {
		return nil, nil
	}
	if q, err := c.heights(p.left); nil != err {
		return q, err
	}
	if q, err := c.heights(p.right); nil != err {
		return q, err
	}
	if p.height != 1+max(height(p.left), height(p.right)) {
		return p, fault.ErrInvalidHeight
	}
	if b := balance(p); b < -1 || b > 1 {
		return p, fault.ErrInvalidBalance
	}
	return nil, nil
}

// in-order: each key must be greater than the one before it
func (c *checker[K, V]) order(p *node[K, V]) (*node[K, V], error) {
	if nil == p {
		return nil, nil
	}
	if q, err := c.order(p.left); nil != err {
		return q, err
	}
	if nil != c.last && c.compare(c.last.key, p.key) >= 0 {
		return p, fault.ErrInvalidOrder
	}
	c.last = p
	c.count += 1
	return c.order(p.right)
}
