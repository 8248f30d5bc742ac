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

// Remove deletes the entry stored under key. Removing a key that is not
// stored does nothing.
func (t *Tree[K, V]) Remove(key K) {
	t.Delete(key)
}

// Delete removes the entry stored under key and returns its value.
// The boolean is false, and the tree unchanged, when key is absent.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	n := t.Find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	value := n.value
	t.count--

	switch {
	case n.IsLeaf():
		t.removeLeaf(n)
	case n.left == nil || n.right == nil:
		t.removeWithOneChild(n)
	default:
		t.removeWithTwoChildren(n)
	}
	n.detach()
	return value, true
}

func (t *Tree[K, V]) removeLeaf(n *Node[K, V]) {
	parent := n.parent
	t.replace(n, nil)
	if parent == nil {
		return
	}
	parent.recalculateHeights()
	t.rebalance(parent)
}

func (t *Tree[K, V]) removeWithOneChild(n *Node[K, V]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	t.replace(n, child)
	child.recalculateHeights()
	t.rebalance(child)
}

func (t *Tree[K, V]) removeWithTwoChildren(n *Node[K, V]) {
	successor := n.right.first()

	// instant successor: the right child itself has no left subtree,
	// so it can take n's place and keep its own right subtree
	if successor == n.right {
		t.replace(n, successor)
		successor.setChild(leftSide, n.left)
		successor.recalculateHeights()
		t.rebalance(successor)
		return
	}

	// the successor sits deeper in the right subtree; unhook it, letting
	// its right child (if any) fill the vacated left slot
	successorParent := successor.parent
	successorParent.setChild(leftSide, successor.right)

	// a fresh node takes n's place so that the successor's own links
	// never alias n's subtrees while they are being rewired
	replacement := newNode(successor.key, successor.value)
	t.replace(n, replacement)
	replacement.setChild(leftSide, n.left)
	replacement.setChild(rightSide, n.right)
	successor.detach()

	successorParent.recalculateHeights()
	replacement.recalculateHeights()
	t.rebalance(successorParent)
	t.rebalance(replacement)
}
