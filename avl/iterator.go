// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the lowest key and a handle to its value, ok is
// false for an empty tree
func (tree *Tree[K, V]) First() (key K, value *V, ok bool) {
	p := tree.root.first()
	if nil == p {
		return key, nil, false
	}
	return p.key, &p.value, true
}

// internal: lowest node in a sub-tree
func (tree *node[K, V]) first() *node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the highest key and a handle to its value, ok is
// false for an empty tree
func (tree *Tree[K, V]) Last() (key K, value *V, ok bool) {
	p := tree.root.last()
	if nil == p {
		return key, nil, false
	}
	return p.key, &p.value, true
}

// internal: highest node in a sub-tree
func (tree *node[K, V]) last() *node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// InOrder - iterate over all entries in ascending key order
//
// nodes are visited lazily using a stack of at most the tree height,
// each call of the returned function starts again from the lowest
// key.  The tree must not be modified while iterating.
func (tree *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, height(tree.root)+1)
		for p := tree.root; nil != p || len(stack) > 0; {
			for ; nil != p; p = p.left {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.right
		}
	}
}

// Backward - iterate over all entries in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, height(tree.root)+1)
		for p := tree.root; nil != p || len(stack) > 0; {
			for ; nil != p; p = p.right {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.left
		}
	}
}

// Keys - iterate over the keys in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range tree.InOrder() {
			if !yield(k) {
				return
			}
		}
	}
}
