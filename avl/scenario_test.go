// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

var scenarioKeys = []int{37, 19, 51, 55, 4, 11, 20, 2, 3, 5, 6, 7}

func scenarioTree(t *testing.T) *avl.Tree[int, string] {
	tree := avl.New[int, string](avl.WithChecks())
	for _, k := range scenarioKeys {
		require.NoError(t, tree.Insert(k, fmt.Sprintf("value-%d", k)))
		require.NoError(t, tree.Check(), "after insert: %d", k)
	}
	return tree
}

func collectKeys[V any](tree *avl.Tree[int, V]) []int {
	keys := []int{}
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestScenarioInsertOrder(t *testing.T) {
	tree := scenarioTree(t)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 11, 19, 20, 37, 51, 55}, collectKeys(tree))
	assert.Equal(t, 12, tree.Count())
	assert.Equal(t, 11, tree.Root().Key())
	assert.Equal(t, 3, tree.Root().Height())
}

func TestScenarioRemoveSequence(t *testing.T) {
	tree := scenarioTree(t)

	// 7 is the in-order predecessor of the root, deep in the left
	// sub-tree, so removing 11 moves that node to the top
	h7, err := tree.Find(7)
	require.NoError(t, err)

	for _, k := range []int{11, 51, 19} {
		v, err := tree.Remove(k)
		require.NoError(t, err, "remove: %d", k)
		assert.Equal(t, fmt.Sprintf("value-%d", k), v)
		require.NoError(t, tree.Check(), "after remove: %d", k)
		assert.False(t, tree.Contains(k))
	}

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 20, 37, 55}, collectKeys(tree))
	assert.Equal(t, 7, tree.Root().Key())
	assert.Same(t, h7, tree.Root().Value())
	assert.Equal(t, "value-7", *h7)
}

func TestScenarioDuplicate(t *testing.T) {
	tree := avl.New[int, string]()
	require.NoError(t, tree.Insert(5, "x"))
	err := tree.Insert(5, "y")
	assert.Equal(t, fault.ErrDuplicateKey, err)

	v, err := tree.Find(5)
	require.NoError(t, err)
	assert.Equal(t, "x", *v)
	assert.Equal(t, 1, tree.Count())
}

func TestScenarioFindAbsent(t *testing.T) {
	for _, tree := range []*avl.Tree[int, string]{avl.New[int, string](), scenarioTree(t)} {
		_, err := tree.Find(999)
		assert.Equal(t, fault.ErrKeyNotFound, err)
	}
}

// ascending insert, remove every 7th, put the gaps back
func TestScenarioStress(t *testing.T) {
	const n = 1000
	tree := avl.New[int, int]()

	checkAll := func(stage string, count int) {
		require.NoError(t, tree.Check(), stage)
		require.Equal(t, count, tree.Count(), stage)
		limit := 1.45 * math.Log2(float64(count+2))
		require.LessOrEqual(t, float64(tree.Root().Height()), limit, stage)
	}

	for i := 1; i <= n; i += 1 {
		require.NoError(t, tree.Insert(i, -i))
		require.NoError(t, tree.Check())
	}
	checkAll("insert", n)

	removed := 0
	for i := 7; i <= n; i += 7 {
		v, err := tree.Remove(i)
		require.NoError(t, err)
		require.Equal(t, -i, v)
		require.NoError(t, tree.Check())
		removed += 1
	}
	checkAll("remove", n-removed)

	for i := 1; i <= n; i += 1 {
		if tree.Contains(i) {
			continue
		}
		require.NoError(t, tree.Insert(i, -i))
		require.NoError(t, tree.Check())
	}
	checkAll("re-insert", n)

	expected := 1
	for k, v := range tree.InOrder() {
		require.Equal(t, expected, k)
		require.Equal(t, -k, v)
		expected += 1
	}
}

// insert n keys in random order, remove all of them in a different
// random order
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial += 1 {
		tree := avl.New[int, int](avl.WithChecks())
		keys := r.Perm(300)
		for _, k := range keys {
			require.NoError(t, tree.Insert(k, k+1))
		}
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, k := range keys {
			v, err := tree.Remove(k)
			require.NoError(t, err)
			require.Equal(t, k+1, v)
		}
		assert.True(t, tree.IsEmpty())
		assert.Equal(t, 0, tree.Count())
	}
}

// the three removal cases on small trees where the shape is known
//
//	    20
//	   /  \
//	  10   30
//	 /    /  \
//	5    25   40
//	            \
//	             50
func TestRemoveCases(t *testing.T) {
	build := func() *avl.Tree[int, int] {
		tree := avl.New[int, int](avl.WithChecks())
		for _, k := range []int{20, 10, 30, 5, 25, 40, 50} {
			require.NoError(t, tree.Insert(k, k*10))
		}
		return tree
	}

	t.Run("leaf", func(t *testing.T) {
		tree := build()
		v, err := tree.Remove(5)
		require.NoError(t, err)
		assert.Equal(t, 50, v)
		assert.Equal(t, []int{10, 20, 25, 30, 40, 50}, collectKeys(tree))
	})

	t.Run("one child", func(t *testing.T) {
		tree := build()
		v, err := tree.Remove(40)
		require.NoError(t, err)
		assert.Equal(t, 400, v)
		assert.Equal(t, 50, tree.Root().Right().Right().Key())
	})

	t.Run("two children adjacent predecessor", func(t *testing.T) {
		tree := build()
		h25, err := tree.Find(25)
		require.NoError(t, err)
		v, err := tree.Remove(30)
		require.NoError(t, err)
		assert.Equal(t, 300, v)
		assert.Equal(t, 40, tree.Root().Right().Key())
		assert.Same(t, h25, tree.Root().Right().Left().Value())
		assert.Equal(t, []int{5, 10, 20, 25, 40, 50}, collectKeys(tree))
	})

	t.Run("two children root", func(t *testing.T) {
		tree := build()
		h10, err := tree.Find(10)
		require.NoError(t, err)
		v, err := tree.Remove(20)
		require.NoError(t, err)
		assert.Equal(t, 200, v)

		// 10 replaced 20 then the root rotated left
		assert.Equal(t, 30, tree.Root().Key())
		assert.Same(t, h10, tree.Root().Left().Value())
		assert.Equal(t, []int{5, 10, 25, 30, 40, 50}, collectKeys(tree))
	})

	// predecessor 15 is two levels down and has a left child
	t.Run("two children distant predecessor", func(t *testing.T) {
		tree := avl.New[int, int](avl.WithChecks())
		for _, k := range []int{20, 10, 30, 5, 15, 25, 40, 12} {
			require.NoError(t, tree.Insert(k, k*10))
		}
		h15, err := tree.Find(15)
		require.NoError(t, err)

		v, err := tree.Remove(20)
		require.NoError(t, err)
		assert.Equal(t, 200, v)
		assert.Same(t, h15, tree.Root().Value())
		assert.Equal(t, 10, tree.Root().Left().Key())
		assert.Equal(t, 12, tree.Root().Left().Right().Key())
		assert.Equal(t, 2, tree.Root().Height())
	})
}
