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

import "iter"

// First returns the node with the lowest key, or nil for an empty tree
func (t *Tree[K, V]) First() *Node[K, V] {
	return t.root.first()
}

// Last returns the node with the highest key, or nil for an empty tree
func (t *Tree[K, V]) Last() *Node[K, V] {
	return t.root.last()
}

// Next returns the node with the next higher key, or nil when n holds
// the highest key.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.first()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// Prev returns the node with the next lower key, or nil when n holds
// the lowest key.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.last()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// All yields every entry in ascending key order. The tree must not be
// modified while the sequence is being consumed.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward yields every entry in descending key order
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.Last(); n != nil; n = n.Prev() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// PostOrder visits the left subtree, the right subtree and then the
// node itself, stopping early when fn returns false.
func (t *Tree[K, V]) PostOrder(fn func(*Node[K, V]) bool) {
	postOrder(t.root, fn)
}

func postOrder[K, V any](n *Node[K, V], fn func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, fn) && postOrder(n.right, fn) && fn(n)
}
