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

package main

import (
	"fmt"

	"github.com/NVIDIA/sortedmap"
	"github.com/cybrota/avlmap/avl"
	"github.com/google/btree"
)

// orderedIntMap is the surface the benchmark drives on every structure
type orderedIntMap interface {
	Name() string
	Insert(key int) error
	Remove(key int) error
	Contains(key int) (bool, error)
	Len() int
}

const (
	structureAVL   = "avl"
	structureBTree = "btree"
	structureLLRB  = "llrb"
)

// newStructures returns one empty map of each kind, the AVL tree first
func newStructures(degree int) []orderedIntMap {
	return []orderedIntMap{
		newAVLMap(),
		newBTreeMap(degree),
		newLLRBMap(),
	}
}

type avlMap struct {
	tree *avl.Tree[int, int]
}

func newAVLMap() *avlMap {
	return &avlMap{tree: avl.New[int, int]()}
}

func (m *avlMap) Name() string { return structureAVL }

func (m *avlMap) Insert(key int) error {
	return m.tree.Add(key, key)
}

func (m *avlMap) Remove(key int) error {
	m.tree.Remove(key)
	return nil
}

func (m *avlMap) Contains(key int) (bool, error) {
	return m.tree.ContainsKey(key), nil
}

func (m *avlMap) Len() int { return m.tree.Count() }

type btreeMap struct {
	tree *btree.BTree
}

func newBTreeMap(degree int) *btreeMap {
	return &btreeMap{tree: btree.New(degree)}
}

func (m *btreeMap) Name() string { return structureBTree }

func (m *btreeMap) Insert(key int) error {
	if m.tree.ReplaceOrInsert(btree.Int(key)) != nil {
		return fmt.Errorf("%w: %d", avl.ErrDuplicateKey, key)
	}
	return nil
}

func (m *btreeMap) Remove(key int) error {
	m.tree.Delete(btree.Int(key))
	return nil
}

func (m *btreeMap) Contains(key int) (bool, error) {
	return m.tree.Has(btree.Int(key)), nil
}

func (m *btreeMap) Len() int { return m.tree.Len() }

type llrbMap struct {
	tree sortedmap.LLRBTree
}

func newLLRBMap() *llrbMap {
	return &llrbMap{tree: sortedmap.NewLLRBTree(sortedmap.CompareInt, nil)}
}

func (m *llrbMap) Name() string { return structureLLRB }

func (m *llrbMap) Insert(key int) error {
	ok, err := m.tree.Put(key, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", avl.ErrDuplicateKey, key)
	}
	return nil
}

func (m *llrbMap) Remove(key int) error {
	_, err := m.tree.DeleteByKey(key)
	return err
}

func (m *llrbMap) Contains(key int) (bool, error) {
	_, ok, err := m.tree.GetByKey(key)
	return ok, err
}

func (m *llrbMap) Len() int {
	n, err := m.tree.Len()
	if err != nil {
		return 0
	}
	return n
}
