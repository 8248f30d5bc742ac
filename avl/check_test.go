// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRule(t *testing.T, err error, rule string) {
	t.Helper()
	var ie *InvariantError
	require.True(t, errors.As(err, &ie), "expected an InvariantError, got %v", err)
	assert.Equal(t, rule, ie.Rule)
}

func TestCheckDetectsCorruption(t *testing.T) {
	t.Run("height", func(t *testing.T) {
		tree := buildTree(t, 2, 1, 3)
		tree.Find(1).height = 5
		requireRule(t, tree.Check(), RuleHeight)
	})

	t.Run("parent", func(t *testing.T) {
		tree := buildTree(t, 2, 1, 3)
		tree.Find(1).parent = tree.Find(3)
		requireRule(t, tree.Check(), RuleParent)
	})

	t.Run("order", func(t *testing.T) {
		tree := buildTree(t, 2, 1, 3)
		tree.Find(1).key = 4
		requireRule(t, tree.Check(), RuleOrder)
	})

	t.Run("count", func(t *testing.T) {
		tree := buildTree(t, 2, 1, 3)
		tree.count = 7
		requireRule(t, tree.Check(), RuleCount)
	})

	t.Run("balance", func(t *testing.T) {
		// hang a chain 1 -> 2 -> 3 by hand, heights correct but unbalanced
		tree := New[int, int]()
		one, two, three := newNode(1, 1), newNode(2, 2), newNode(3, 3)
		tree.root = one
		one.setChild(rightSide, two)
		two.setChild(rightSide, three)
		three.recalculateHeights()
		tree.count = 3
		requireRule(t, tree.Check(), RuleBalance)
	})
}

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{Rule: RuleHeight, Key: 9, Msg: "cached height 1, actual 2"}
	assert.Equal(t, "avl: height cache at key 9: cached height 1, actual 2", err.Error())

	err = &InvariantError{Rule: RuleCount, Msg: "count is 2 but 1 nodes are reachable"}
	assert.Equal(t, "avl: count: count is 2 but 1 nodes are reachable", err.Error())
}

// random adds and removes mirrored against a map; every invariant and
// the count law must hold after every single operation
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := New[int, int]()
	mirror := make(map[int]int)

	for i := 0; i < 5000; i++ {
		key := rng.Intn(500)
		before := tree.Count()

		if rng.Intn(3) == 0 {
			_, present := mirror[key]
			tree.Remove(key)
			delete(mirror, key)
			if present {
				assert.Equal(t, before-1, tree.Count())
			} else {
				assert.Equal(t, before, tree.Count())
			}
		} else {
			err := tree.Add(key, i)
			if _, present := mirror[key]; present {
				require.True(t, errors.Is(err, ErrDuplicateKey))
				assert.Equal(t, before, tree.Count())
			} else {
				require.NoError(t, err)
				mirror[key] = i
				assert.Equal(t, before+1, tree.Count())
			}
		}
		require.NoError(t, tree.Check(), "after operation %d on key %d", i, key)
	}

	expected := make([]int, 0, len(mirror))
	for k := range mirror {
		expected = append(expected, k)
	}
	sort.Ints(expected)
	assert.Equal(t, expected, tree.Keys())
	for k, v := range mirror {
		got, err := tree.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDrainInRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(1000)
	tree := buildTree(t, keys...)

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		tree.Remove(k)
		require.NoError(t, tree.Check(), "after removing %d", k)
		require.Equal(t, len(keys)-i-1, tree.Count())
	}
	assert.True(t, tree.IsEmpty())
}
