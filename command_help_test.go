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

	"github.com/cybrota/avlmap/avl"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a command string.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"add k v", []string{"add", "k", "v"}},
		{`add "new york" "big apple"`, []string{"add", "new york", "big apple"}},
		{"remove   spaced", []string{"remove", "spaced"}},
		{`get 'single quoted'`, []string{"get", "single quoted"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}

func TestSplitCommandUnterminatedQuote(t *testing.T) {
	if _, err := splitCommand(`add "open key`); err == nil {
		t.Error("Expected error for an unterminated quote, got nil")
	}
}

func TestSessionExecute(t *testing.T) {
	s := newSession(false, NewOptimizedHelpCache())

	steps := []struct {
		line    string
		want    string
		wantErr error
	}{
		{line: "add b 2", want: "added b"},
		{line: "add a 1", want: "added a"},
		{line: `add "c d" "three four"`, want: "added c d"},
		{line: "add a 9", wantErr: avl.ErrDuplicateKey},
		{line: "get a", want: "1"},
		{line: `get "c d"`, want: "three four"},
		{line: "get zz", wantErr: avl.ErrKeyNotFound},
		{line: "has b", want: "true"},
		{line: "has zz", want: "false"},
		{line: "count", want: "3"},
		{line: "height", want: "2"},
		{line: "keys", want: "a\nb\nc d"},
		{line: "remove zz", want: "zz not present"},
		{line: "rm b", want: "removed b"},
		{line: "count", want: "2"},
		{line: "check", want: "ok: 2 entries, height 2"},
		{line: "add", wantErr: errUsage},
		{line: "rotate a", wantErr: errUnknownCommand},
		{line: "   ", want: ""},
		{line: "clear", want: "cleared"},
		{line: "keys", want: "(empty)"},
		{line: "print", want: "(empty)"},
		{line: "quit", wantErr: errQuit},
	}

	for _, step := range steps {
		got, err := s.execute(step.line)
		if step.wantErr != nil {
			if !errors.Is(err, step.wantErr) {
				t.Errorf("execute(%q) error = %v; want %v", step.line, err, step.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("execute(%q) returned error: %v", step.line, err)
			continue
		}
		if got != step.want {
			t.Errorf("execute(%q) = %q; want %q", step.line, got, step.want)
		}
	}
}

func TestFindDescribesNode(t *testing.T) {
	s := newSession(false, NewOptimizedHelpCache())
	for _, line := range []string{"add m 1", "add f 2", "add t 3", "add a 4"} {
		if _, err := s.execute(line); err != nil {
			t.Fatalf("execute(%q): %v", line, err)
		}
	}

	got, err := s.execute("find f")
	if err != nil {
		t.Fatalf("find f: %v", err)
	}
	for _, want := range []string{"key:     f", "value:   2", "height:  2", "balance: +1", "depth:   1", "parent:  m", "left:    a", "right:   -"} {
		if !strings.Contains(got, want) {
			t.Errorf("find f output missing %q:\n%s", want, got)
		}
	}

	if _, err := s.execute("find zz"); !errors.Is(err, avl.ErrKeyNotFound) {
		t.Errorf("find zz error = %v; want ErrKeyNotFound", err)
	}
}

func TestPrintShowsValues(t *testing.T) {
	s := newSession(true, NewOptimizedHelpCache())
	if _, err := s.execute("add k v"); err != nil {
		t.Fatal(err)
	}
	got, err := s.execute("print")
	if err != nil {
		t.Fatal(err)
	}
	if want := "|------+ k → v ^- h=1 +0"; got != want {
		t.Errorf("print = %q; want %q", got, want)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	s := newSession(false, NewOptimizedHelpCache())
	got, err := s.execute("help")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range shellCommands {
		if !strings.Contains(got, c.usage()) {
			t.Errorf("help output is missing %q", c.usage())
		}
	}
}

func TestLookupCommandAliases(t *testing.T) {
	tests := map[string]string{
		"rm":     "remove",
		"del":    "remove",
		"exit":   "quit",
		"ADD":    "add",
		"height": "height",
	}
	for alias, want := range tests {
		c, ok := lookupCommand(alias)
		if !ok || c.name != want {
			t.Errorf("lookupCommand(%q) = %q, %t; want %q", alias, c.name, ok, want)
		}
	}
	if _, ok := lookupCommand("nonexistent_command"); ok {
		t.Error("Expected lookup of a nonexistent command to fail")
	}
}
