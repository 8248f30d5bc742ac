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

// side selects one of the two child slots of a node
type side int

const (
	leftSide side = iota
	rightSide
)

// Node holds one key-value pair and its position in the tree.
type Node[K, V any] struct {
	key    K
	value  V
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	parent *Node[K, V] // nil for the root
	height int         // 1 for a leaf
}

func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// Key returns the key stored in the node
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored in the node
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left child, or nil
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child, or nil
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the parent node, or nil for the root
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Height returns the cached height of the subtree rooted at n. A nil
// node has height 0.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor is the height of the left subtree minus the height of
// the right subtree.
func (n *Node[K, V]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// IsLeaf reports whether n has no children
func (n *Node[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Depth counts the edges between n and the root
func (n *Node[K, V]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (n *Node[K, V]) child(s side) *Node[K, V] {
	if s == leftSide {
		return n.left
	}
	return n.right
}

// setChild links c into slot s of n and points c back at n. It is the
// only place child slots are written, so the two directions of a link
// are always updated together.
func (n *Node[K, V]) setChild(s side, c *Node[K, V]) {
	if s == leftSide {
		n.left = c
	} else {
		n.right = c
	}
	if c != nil {
		c.parent = n
	}
}

// sideOf returns the slot of n that holds c
func (n *Node[K, V]) sideOf(c *Node[K, V]) side {
	if n.left == c {
		return leftSide
	}
	return rightSide
}

func (n *Node[K, V]) updateHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

// recalculateHeights repairs the cached height of n and of every
// ancestor up to the root.
func (n *Node[K, V]) recalculateHeights() {
	for current := n; current != nil; current = current.parent {
		current.updateHeight()
	}
}

// detach clears all links of a node that has left the tree
func (n *Node[K, V]) detach() {
	n.left = nil
	n.right = nil
	n.parent = nil
}

// first returns the lowest node in the subtree rooted at n
func (n *Node[K, V]) first() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the highest node in the subtree rooted at n
func (n *Node[K, V]) last() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
