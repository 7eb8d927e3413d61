// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	compare func(a, b K) int
	checks  bool
	alloc   allocator[K, V]
}

// Option - setting applied when a tree is created
type Option func(*options)

type options struct {
	checks bool
}

// WithChecks - run the full structural check after every Insert and
// Remove, panicking on the first failure
//
// this walks the whole tree, so it is only intended for tests and
// debug builds
func WithChecks() Option {
	return func(o *options) {
		o.checks = true
	}
}

// New - create an initially empty tree for a naturally ordered key
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number when a < b, zero when
// a == b and a positive number when a > b, and must be a total order
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		checks:  o.checks,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return (*Node[K, V])(tree.root)
}

// Clear - remove all entries, releasing all node storage
func (tree *Tree[K, V]) Clear() {
	releaseAll(tree.root)
	tree.root = nil
	tree.count = 0
	tree.alloc.drain()
}

// detach every link below p so no node keeps another one reachable
func releaseAll[K, V any](p *node[K, V]) {
	if nil == p {
		return
	}
	releaseAll(p.left)
	releaseAll(p.right)
	p.left = nil
	p.right = nil
}

// Node - read only view of a node, for inspecting the tree shape
type Node[K, V any] node[K, V]

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - handle to the value of a node item
func (p *Node[K, V]) Value() *V {
	return &p.value
}

// Height - cached height of the sub-tree, 0 for a leaf
func (p *Node[K, V]) Height() int {
	return p.height
}

// Balance - right height - left height
func (p *Node[K, V]) Balance() int {
	return balance((*node[K, V])(p))
}

// Left - left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return (*Node[K, V])(p.left)
}

// Right - right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return (*Node[K, V])(p.right)
}

// ChildrenAtDepth - returns all descendants at a specific depth
// below this node, left to right
func (p *Node[K, V]) ChildrenAtDepth(depth uint) []*Node[K, V] {
	if nil == p {
		return nil
	}
	if depth == 0 {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if left := p.Left(); left != nil {
		nodes = append(nodes, left.ChildrenAtDepth(depth-1)...)
	}
	if right := p.Right(); right != nil {
		nodes = append(nodes, right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}
