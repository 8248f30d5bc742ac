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
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/willf/bloom"
)

// keyFalsePositiveRate bounds how often a fresh key is thrown away
const keyFalsePositiveRate = 0.001

// resolveSeed turns the configured seed into the one actually used
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// generateKeys returns count distinct integers drawn from
// [-2*count, 2*count). The bloom filter never misses a key it has seen, so
// any candidate it reports as present is dropped and redrawn; the false
// positives only cost a retry.
func generateKeys(count int, seed int64) []int {
	if count <= 0 {
		return []int{}
	}

	rng := rand.New(rand.NewSource(seed))
	filter := bloom.NewWithEstimates(uint(count), keyFalsePositiveRate)
	keys := make([]int, 0, count)
	buf := make([]byte, 8)

	for len(keys) < count {
		candidate := rng.Intn(4*count) - 2*count
		binary.BigEndian.PutUint64(buf, uint64(candidate))
		if filter.TestAndAdd(buf) {
			continue
		}
		keys = append(keys, candidate)
	}
	return keys
}

// removalWindow clamps [from, to) to the generated keys
func removalWindow(keys []int, from, to int) []int {
	from = max(0, min(from, len(keys)))
	to = max(from, min(to, len(keys)))
	return keys[from:to]
}
