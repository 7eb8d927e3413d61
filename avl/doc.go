// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that stores a value with each
// unique key
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree and the balance
// factor is computed from the heights of the two children.  All of
// the structural edits are made through "slots": a **node that is
// either the root link of the tree or one of the child links of a
// parent node, so no parent pointers are needed.  Insert and Remove
// collect the slots of the ancestors on the way down and restore the
// balance on the way back up, innermost first.
//
// Inserting a key that is already present is an error, it does not
// overwrite the existing value.  Removing a node with two children
// moves the in-order predecessor node into the deleted node's place
// rather than copying data around, so a *V obtained from Find stays
// valid until that particular key is removed.
//
// Broken internal invariants (balance factor out of range, rotation
// without the required child, …) are reported by fault.Panicf.
package avl
