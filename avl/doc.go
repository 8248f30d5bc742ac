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

// Package avl is an ordered key-value container backed by an AVL
// (height-balanced) binary search tree.
//
// Every node keeps a parent pointer and a cached subtree height. After
// an insert or a delete the heights are repaired from the point of
// mutation up to the root and every ancestor on that path is
// rebalanced, so Add, Remove and Find are O(log n) in the worst case.
//
// Node handles returned by Find, Root, First and Last expose the shape
// of the tree (height, parent and children) for inspection. A handle to
// a node that has been removed no longer reaches into the tree.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard every call with a mutex.
package avl
