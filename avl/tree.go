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

import "cmp"

// Tree holds the root node and the number of stored entries
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(a, b K) int
}

// New creates an empty tree ordered by the natural order of K
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithCompare[K, V](cmp.Compare[K])
}

// NewWithCompare creates an empty tree ordered by compare, which must
// return a negative number when a < b, zero when a == b and a positive
// number when a > b.
func NewWithCompare[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{compare: compare}
}

// Count returns the number of entries in the tree
func (t *Tree[K, V]) Count() int {
	return t.count
}

// Root returns the root node, or nil for an empty tree
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// IsEmpty reports whether the tree holds no entries
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the whole tree, 0 when empty
func (t *Tree[K, V]) Height() int {
	return t.root.Height()
}

// Clear drops every entry
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// replace puts n into the slot old occupies under its parent, or makes
// n the root when old has no parent.
func (t *Tree[K, V]) replace(old, n *Node[K, V]) {
	parent := old.parent
	if parent == nil {
		t.root = n
		if n != nil {
			n.parent = nil
		}
		return
	}
	parent.setChild(parent.sideOf(old), n)
}
