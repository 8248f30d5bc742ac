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
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Add when the key is already stored.
	// The tree is left unchanged.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrKeyNotFound is returned by Get when the key is not stored.
	ErrKeyNotFound = errors.New("avl: key not found")
)

// InvariantError describes the first structural violation found by Check
type InvariantError struct {
	Rule string // which invariant failed
	Key  any    // key of the offending node, nil when not tied to a node
	Msg  string
}

func (e *InvariantError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("avl: %s: %s", e.Rule, e.Msg)
	}
	return fmt.Sprintf("avl: %s at key %v: %s", e.Rule, e.Key, e.Msg)
}
