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
	"testing"
)

func TestGenerateKeys(t *testing.T) {
	for _, count := range []int{1, 10, 5000} {
		keys := generateKeys(count, 99)
		if len(keys) != count {
			t.Fatalf("generateKeys(%d) returned %d keys", count, len(keys))
		}

		seen := make(map[int]bool, count)
		for _, k := range keys {
			if k < -2*count || k >= 2*count {
				t.Errorf("key %d outside [%d, %d)", k, -2*count, 2*count)
			}
			if seen[k] {
				t.Errorf("duplicate key %d for count %d", k, count)
			}
			seen[k] = true
		}
	}
}

func TestGenerateKeysIsDeterministic(t *testing.T) {
	a := generateKeys(200, 7)
	b := generateKeys(200, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave different keys at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGenerateKeysEmpty(t *testing.T) {
	if keys := generateKeys(0, 1); len(keys) != 0 {
		t.Errorf("generateKeys(0) = %v; want empty", keys)
	}
}

func TestRemovalWindow(t *testing.T) {
	keys := []int{10, 11, 12, 13, 14}
	tests := []struct {
		from, to int
		want     []int
	}{
		{1, 3, []int{11, 12}},
		{0, 5, keys},
		{3, 100, []int{13, 14}},
		{-2, 1, []int{10}},
		{4, 2, []int{}},
		{7, 9, []int{}},
	}
	for _, tc := range tests {
		got := removalWindow(keys, tc.from, tc.to)
		if len(got) != len(tc.want) {
			t.Errorf("removalWindow(%d, %d) = %v; want %v", tc.from, tc.to, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("removalWindow(%d, %d) = %v; want %v", tc.from, tc.to, got, tc.want)
				break
			}
		}
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(12); got != 12 {
		t.Errorf("resolveSeed(12) = %d", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("resolveSeed(0) should pick a time based seed")
	}
}
