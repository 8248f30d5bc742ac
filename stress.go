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
	"errors"
	"fmt"
	"math/rand"

	"github.com/cybrota/avlmap/avl"
	log "github.com/sirupsen/logrus"
)

type stressConfig struct {
	Ops      int
	Seed     int64
	Keyspace int
}

type stressResult struct {
	Seed       int64
	Ops        int
	Adds       int
	Removes    int
	Duplicates int // adds rejected because the key was present
	Misses     int // removes of absent keys
	Final      int
	Height     int
}

// runStress applies random adds and removes to a tree and to a Go map in
// lockstep. After every operation the tree must pass Check and agree with
// the map on membership and size.
func runStress(cfg stressConfig, logger *log.Logger) (stressResult, error) {
	res := stressResult{Seed: resolveSeed(cfg.Seed)}
	if cfg.Keyspace <= 0 {
		return res, fmt.Errorf("keyspace must be positive, got %d", cfg.Keyspace)
	}

	rng := rand.New(rand.NewSource(res.Seed))
	tree := avl.New[int, int]()
	mirror := make(map[int]int)

	for i := 0; i < cfg.Ops; i++ {
		key := rng.Intn(cfg.Keyspace)
		_, present := mirror[key]

		if rng.Intn(2) == 0 {
			err := tree.Add(key, i)
			switch {
			case present && errors.Is(err, avl.ErrDuplicateKey):
				res.Duplicates++
			case !present && err == nil:
				mirror[key] = i
				res.Adds++
			default:
				return res, fmt.Errorf("op %d: add %d with present=%t returned %v", i, key, present, err)
			}
		} else {
			_, removed := tree.Delete(key)
			if removed != present {
				return res, fmt.Errorf("op %d: remove %d reported %t, want %t", i, key, removed, present)
			}
			if present {
				delete(mirror, key)
				res.Removes++
			} else {
				res.Misses++
			}
		}
		res.Ops++

		if err := tree.Check(); err != nil {
			return res, fmt.Errorf("op %d on key %d: %w", i, key, err)
		}
		if tree.Count() != len(mirror) {
			return res, fmt.Errorf("op %d: count %d, map holds %d", i, tree.Count(), len(mirror))
		}
		if tree.ContainsKey(key) != hasKey(mirror, key) {
			return res, fmt.Errorf("op %d: membership of %d disagrees with map", i, key)
		}

		if (i+1)%10000 == 0 {
			logger.WithFields(log.Fields{
				opsKey:   i + 1,
				"count":  tree.Count(),
				"height": tree.Height(),
			}).Debug("stress progress")
		}
	}

	for k, v := range mirror {
		got, err := tree.Get(k)
		if err != nil || got != v {
			return res, fmt.Errorf("final: key %d holds %d (%v), want %d", k, got, err, v)
		}
	}

	res.Final = tree.Count()
	res.Height = tree.Height()
	return res, nil
}

func hasKey(m map[int]int, k int) bool {
	_, ok := m[k]
	return ok
}
