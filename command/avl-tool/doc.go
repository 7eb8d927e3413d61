// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-tool - exercise a string keyed AVL tree
//
// operations are read from a script, one per line:
//
//   insert KEY VALUE...   add a new key, the value is the rest of the line
//   remove KEY            delete a key and show its value
//   find KEY              show the value of a key
//   contains KEY          show whether a key is present
//   count                 show the number of keys
//   list                  show all keys in order
//   print                 draw the tree structure
//   check                 verify the structural invariants
//   clear                 remove all keys
//   # ...                 comment
//
// the script can come from a file or from the "script" list in the
// Lua configuration file.  The tree can be populated from a LevelDB
// database first.
package main
