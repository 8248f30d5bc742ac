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

// Add inserts a new entry. Adding a key that is already stored fails
// with ErrDuplicateKey and leaves the tree untouched.
func (t *Tree[K, V]) Add(key K, value V) error {
	if t.root == nil {
		t.root = newNode(key, value)
		t.count++
		return nil
	}

	current := t.root
	var inserted *Node[K, V]
	for {
		var s side
		switch c := t.compare(key, current.key); {
		case c < 0:
			s = leftSide
		case c > 0:
			s = rightSide
		default:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}

		next := current.child(s)
		if next == nil {
			inserted = newNode(key, value)
			current.setChild(s, inserted)
			break
		}
		current = next
	}

	inserted.recalculateHeights()
	t.rebalance(inserted)
	t.count++
	return nil
}
