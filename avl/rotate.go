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

// rotateRight lifts the left child of p into p's place and returns it.
//
//	      p            pivot
//	     / \           /   \
//	 pivot  c   =>    a     p
//	  / \                  / \
//	 a   b                b   c
func (t *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	pivot := p.left
	if pivot == nil {
		return p
	}
	t.replace(p, pivot)
	p.setChild(leftSide, pivot.right)
	pivot.setChild(rightSide, p)

	// p is now below pivot, so repairing from p covers both
	p.recalculateHeights()
	return pivot
}

// rotateLeft lifts the right child of p into p's place and returns it.
func (t *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	pivot := p.right
	if pivot == nil {
		return p
	}
	t.replace(p, pivot)
	p.setChild(rightSide, pivot.left)
	pivot.setChild(leftSide, p)

	p.recalculateHeights()
	return pivot
}

// rotateLeftRight fixes a left-heavy node whose left child leans right
func (t *Tree[K, V]) rotateLeftRight(p *Node[K, V]) *Node[K, V] {
	t.rotateLeft(p.left)
	return t.rotateRight(p)
}

// rotateRightLeft fixes a right-heavy node whose right child leans left
func (t *Tree[K, V]) rotateRightLeft(p *Node[K, V]) *Node[K, V] {
	t.rotateRight(p.right)
	return t.rotateLeft(p)
}

// rebalance walks from n to the root and rotates every node whose
// balance factor has left the range [-1, 1]. Deletion can unbalance
// several levels, so the walk always reaches the root.
func (t *Tree[K, V]) rebalance(n *Node[K, V]) {
	for current := n; current != nil; current = current.parent {
		switch balance := current.BalanceFactor(); {
		case balance > 1: // left heavy
			if current.left.BalanceFactor() >= 0 {
				current = t.rotateRight(current)
			} else {
				current = t.rotateLeftRight(current)
			}
		case balance < -1: // right heavy
			if current.right.BalanceFactor() <= 0 {
				current = t.rotateLeft(current)
			} else {
				current = t.rotateRightLeft(current)
			}
		}
	}
}
