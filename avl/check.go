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

import "fmt"

// Rules reported by Check
const (
	RuleParent  = "parent link"
	RuleHeight  = "height cache"
	RuleBalance = "balance"
	RuleOrder   = "ordering"
	RuleCount   = "count"
)

// Check walks the whole tree and verifies the parent links, the cached
// heights, the AVL balance, the key ordering and the entry count. It
// returns the first violation as an *InvariantError, or nil.
func (t *Tree[K, V]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return &InvariantError{Rule: RuleParent, Key: t.root.key, Msg: "root has a parent"}
	}
	c := checker[K, V]{compare: t.compare}
	if _, err := c.walk(t.root, nil); err != nil {
		return err
	}
	if c.nodes != t.count {
		return &InvariantError{
			Rule: RuleCount,
			Msg:  fmt.Sprintf("count is %d but %d nodes are reachable", t.count, c.nodes),
		}
	}
	return nil
}

type checker[K, V any] struct {
	compare func(a, b K) int
	prev    *Node[K, V] // last node visited in order
	nodes   int
}

// walk checks the subtree rooted at n, which must hang below up, and
// returns its true height.
func (c *checker[K, V]) walk(n, up *Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.parent != up {
		return 0, &InvariantError{Rule: RuleParent, Key: n.key, Msg: "parent does not hold this node"}
	}

	lh, err := c.walk(n.left, n)
	if err != nil {
		return 0, err
	}

	c.nodes++
	if c.prev != nil && c.compare(c.prev.key, n.key) >= 0 {
		return 0, &InvariantError{
			Rule: RuleOrder,
			Key:  n.key,
			Msg:  fmt.Sprintf("follows key %v in order", c.prev.key),
		}
	}
	c.prev = n

	rh, err := c.walk(n.right, n)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, &InvariantError{
			Rule: RuleHeight,
			Key:  n.key,
			Msg:  fmt.Sprintf("cached height %d, actual %d", n.height, h),
		}
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, &InvariantError{
			Rule: RuleBalance,
			Key:  n.key,
			Msg:  fmt.Sprintf("balance factor %+d", b),
		}
	}
	return h, nil
}
