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
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewOptimizedHelpCache()
	cmd := "add"
	helpText := "Inserts the entry and rebalances the tree."

	if got := GetHelpPage(c, cmd); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", cmd, got)
	}

	CacheHelpPage(c, cmd, helpText)

	if got := GetHelpPage(c, cmd); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", cmd, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	cmd := "remove"
	helpText := "This help text should expire soon."

	c.Set(cmd, helpText, 100*time.Millisecond)
	if got := GetHelpPage(c, cmd); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", cmd, got, helpText)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, cmd); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", cmd, got)
	}
}

func TestGetOrFillHelpPage(t *testing.T) {
	c := NewOptimizedHelpCache()

	page, err := GetOrFillHelpPage(c, "find")
	if err != nil {
		t.Fatalf("GetOrFillHelpPage(find) returned error: %v", err)
	}
	if !strings.Contains(page, "balance") {
		t.Errorf("help page for find does not describe the node: %q", page)
	}
	if cached := GetHelpPage(c, "find"); cached != page {
		t.Errorf("rendered page was not cached")
	}

	// a cached page is served as is
	CacheHelpPage(c, "find", "stale")
	if page, _ := GetOrFillHelpPage(c, "find"); page != "stale" {
		t.Errorf("GetOrFillHelpPage ignored the cache, got %q", page)
	}

	if _, err := GetOrFillHelpPage(c, "rotate"); !errors.Is(err, errUnknownCommand) {
		t.Errorf("expected errUnknownCommand, got %v", err)
	}
	if got := GetHelpPage(c, "rotate"); got != "" {
		t.Errorf("unknown command was cached: %q", got)
	}
}
