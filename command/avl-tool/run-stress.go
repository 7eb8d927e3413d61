// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func runStress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	step := c.Int("step")
	every := c.Int("every")

	tree := avl.New[int, int](avl.WithChecks())

	start := time.Now()
	err := stress(tree, count, step, every, m.w)
	if nil != err {
		return err
	}
	m.log.Infof("stress count: %d  step: %d  every: %d  elapsed: %s", count, step, every, time.Since(start))

	stats := tree.Stats()
	fmt.Fprintf(m.w, "nodes created: %d  reused: %d  pooled: %d\n", stats.Created, stats.Reused, stats.Free)
	return nil
}

// maximum AVL height for n nodes where a leaf has height 0
func heightBound(n int) int {
	return int(1.4405*math.Log2(float64(n+2)) - 0.3277)
}

func gcd(a int, b int) int {
	for 0 != b {
		a, b = b, a%b
	}
	return a
}

// insert the keys 1..count in the order 1 + (i * step) mod count,
// remove every key that is a multiple of every, re-insert them and
// then remove everything
//
// the tree structure and height bound are verified after each phase
func stress(tree *avl.Tree[int, int], count int, step int, every int, w io.Writer) error {
	if count <= 0 || every <= 0 {
		return fault.ErrInvalidCount
	}
	if step <= 0 || 1 != gcd(step, count) {
		return ErrInvalidStep
	}

	phase := func(name string, expected int) error {
		if err := tree.Check(); nil != err {
			return fmt.Errorf("%s: %w", name, err)
		}
		if expected != tree.Count() {
			return fmt.Errorf("%s: count: %d  expected: %d: %w", name, tree.Count(), expected, ErrStressMismatch)
		}
		h := -1
		if root := tree.Root(); nil != root {
			h = root.Height()
		}
		if expected > 0 && h > heightBound(expected) {
			return fmt.Errorf("%s: height: %d exceeds: %d: %w", name, h, heightBound(expected), fault.ErrInvalidHeight)
		}
		fmt.Fprintf(w, "%-9s count: %6d  height: %3d\n", name+":", expected, h)
		return nil
	}

	key := func(i int) int {
		return 1 + (i*step)%count
	}

	for i := 0; i < count; i += 1 {
		k := key(i)
		if err := tree.Insert(k, k*k); nil != err {
			return fmt.Errorf("insert: %d: %w", k, err)
		}
	}
	if err := phase("insert", count); nil != err {
		return err
	}

	for i := 0; i < count; i += 1 {
		k := key(i)
		if 0 != k%every {
			continue
		}
		v, err := tree.Remove(k)
		if nil != err {
			return fmt.Errorf("remove: %d: %w", k, err)
		}
		if k*k != v {
			return fmt.Errorf("remove: %d: value: %d: %w", k, v, ErrStressMismatch)
		}
	}
	if err := phase("remove", count-count/every); nil != err {
		return err
	}

	// fill the gaps
	for k := 1; k <= count; k += 1 {
		if tree.Contains(k) {
			continue
		}
		if err := tree.Insert(k, k*k); nil != err {
			return fmt.Errorf("re-insert: %d: %w", k, err)
		}
	}
	if err := phase("re-insert", count); nil != err {
		return err
	}

	expected := 1
	for k, v := range tree.InOrder() {
		if k != expected || v != k*k {
			return fmt.Errorf("order: %d → %d  expected: %d: %w", k, v, expected, ErrStressMismatch)
		}
		expected += 1
	}

	for i := count - 1; i >= 0; i -= 1 {
		k := key(i)
		if _, err := tree.Remove(k); nil != err {
			return fmt.Errorf("drain: %d: %w", k, err)
		}
	}
	if !tree.IsEmpty() {
		return ErrStressMismatch
	}
	return phase("drain", 0)
}
