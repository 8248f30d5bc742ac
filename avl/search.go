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

// Find returns the node holding key, or nil when the key is not stored.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	current := t.root
	for current != nil {
		switch c := t.compare(key, current.key); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// ContainsKey reports whether key is stored in the tree
func (t *Tree[K, V]) ContainsKey(key K) bool {
	return t.Find(key) != nil
}

// Get returns the value stored under key. It fails with ErrKeyNotFound
// when the key is absent.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := t.Find(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}
