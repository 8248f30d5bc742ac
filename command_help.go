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
	"strings"

	"github.com/cybrota/avlmap/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

var (
	errQuit           = errors.New("quit")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

// session is the state shared by the shell and the explorer
type session struct {
	tree       *avl.Tree[string, string]
	showValues bool
	helpCache  *cache.Cache
}

func newSession(showValues bool, hc *cache.Cache) *session {
	return &session{
		tree:       avl.New[string, string](),
		showValues: showValues,
		helpCache:  hc,
	}
}

type shellCommand struct {
	name    string
	aliases []string
	args    string
	minArgs int
	maxArgs int
	brief   string
	help    string
	run     func(s *session, args []string) (string, error)
}

func (c shellCommand) usage() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

var shellCommands []shellCommand

func init() {
	shellCommands = []shellCommand{
		{
			name: "add", args: "<key> <value>", minArgs: 2, maxArgs: 2,
			brief: "insert a new entry",
			help:  "Inserts the entry and rebalances the tree. Adding a key that is already present is an error and leaves the tree untouched. Quote keys or values that contain spaces.",
			run:   runAdd,
		},
		{
			name: "remove", aliases: []string{"rm", "del"}, args: "<key>", minArgs: 1, maxArgs: 1,
			brief: "delete an entry",
			help:  "Deletes the entry and rebalances the tree. Removing a key that is not present does nothing.",
			run:   runRemove,
		},
		{
			name: "get", args: "<key>", minArgs: 1, maxArgs: 1,
			brief: "print the value stored under a key",
			help:  "Prints the value of the key, or an error when the key is absent.",
			run:   runGet,
		},
		{
			name: "has", args: "<key>", minArgs: 1, maxArgs: 1,
			brief: "report whether a key is present",
			help:  "Prints true or false.",
			run:   runHas,
		},
		{
			name: "find", args: "<key>", minArgs: 1, maxArgs: 1,
			brief: "show the node holding a key",
			help:  "Prints the node's value, height, balance factor, depth, parent and children.",
			run:   runFind,
		},
		{
			name:  "count",
			brief: "number of entries",
			help:  "Prints the number of entries in the tree.",
			run:   runCount,
		},
		{
			name:  "height",
			brief: "height of the tree",
			help:  "Prints the height of the root. An empty tree has height 0 and a single entry height 1.",
			run:   runHeight,
		},
		{
			name:  "keys",
			brief: "list keys in ascending order",
			help:  "Prints every key in ascending order, one per line.",
			run:   runKeys,
		},
		{
			name:  "print",
			brief: "draw the tree",
			help:  "Draws the tree sideways, the right subtree above each node. Every node shows its parent after `^`, its height after `h=` and its balance factor.",
			run:   runPrint,
		},
		{
			name:  "check",
			brief: "verify every tree invariant",
			help:  "Walks the whole tree and verifies parent links, cached heights, balance, key order and the entry count.",
			run:   runCheck,
		},
		{
			name:  "clear",
			brief: "remove every entry",
			help:  "Drops every entry at once.",
			run:   runClear,
		},
		{
			name: "help", args: "[command]", maxArgs: 1,
			brief: "list commands or describe one",
			help:  "Without an argument lists every command. With a command name prints its full description.",
			run:   runHelp,
		},
		{
			name: "quit", aliases: []string{"exit"},
			brief: "leave",
			help:  "Ends the session.",
			run:   func(*session, []string) (string, error) { return "", errQuit },
		},
	}
}

func lookupCommand(name string) (shellCommand, bool) {
	name = strings.ToLower(name)
	for _, c := range shellCommands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return shellCommand{}, false
}

// execute parses and runs one line. An empty line yields no output.
func (s *session) execute(line string) (string, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(parts) == 0 {
		return "", nil
	}

	c, ok := lookupCommand(parts[0])
	if !ok {
		return "", fmt.Errorf("%w %q, try help", errUnknownCommand, parts[0])
	}
	args := parts[1:]
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return "", fmt.Errorf("%w: %s", errUsage, c.usage())
	}
	return c.run(s, args)
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

func runAdd(s *session, args []string) (string, error) {
	if err := s.tree.Add(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("added %s", args[0]), nil
}

func runRemove(s *session, args []string) (string, error) {
	if _, ok := s.tree.Delete(args[0]); !ok {
		return fmt.Sprintf("%s not present", args[0]), nil
	}
	return fmt.Sprintf("removed %s", args[0]), nil
}

func runGet(s *session, args []string) (string, error) {
	return s.tree.Get(args[0])
}

func runHas(s *session, args []string) (string, error) {
	return fmt.Sprint(s.tree.ContainsKey(args[0])), nil
}

func runFind(s *session, args []string) (string, error) {
	n := s.tree.Find(args[0])
	if n == nil {
		return "", fmt.Errorf("%w: %s", avl.ErrKeyNotFound, args[0])
	}
	return describeNode(n), nil
}

func keyOrDash(n *avl.Node[string, string]) string {
	if n == nil {
		return "-"
	}
	return n.Key()
}

func describeNode(n *avl.Node[string, string]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "key:     %s\n", n.Key())
	fmt.Fprintf(&sb, "value:   %s\n", n.Value())
	fmt.Fprintf(&sb, "height:  %d\n", n.Height())
	fmt.Fprintf(&sb, "balance: %+d\n", n.BalanceFactor())
	fmt.Fprintf(&sb, "depth:   %d\n", n.Depth())
	fmt.Fprintf(&sb, "parent:  %s\n", keyOrDash(n.Parent()))
	fmt.Fprintf(&sb, "left:    %s\n", keyOrDash(n.Left()))
	fmt.Fprintf(&sb, "right:   %s", keyOrDash(n.Right()))
	return sb.String()
}

func runCount(s *session, _ []string) (string, error) {
	return fmt.Sprint(s.tree.Count()), nil
}

func runHeight(s *session, _ []string) (string, error) {
	return fmt.Sprint(s.tree.Height()), nil
}

func runKeys(s *session, _ []string) (string, error) {
	if s.tree.IsEmpty() {
		return "(empty)", nil
	}
	return strings.Join(s.tree.Keys(), "\n"), nil
}

func runPrint(s *session, _ []string) (string, error) {
	if s.tree.IsEmpty() {
		return "(empty)", nil
	}
	var sb strings.Builder
	s.tree.Fprint(&sb, s.showValues)
	return strings.TrimRight(sb.String(), "\n"), nil
}

func runCheck(s *session, _ []string) (string, error) {
	if err := s.tree.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok: %d entries, height %d", s.tree.Count(), s.tree.Height()), nil
}

func runClear(s *session, _ []string) (string, error) {
	s.tree.Clear()
	return "cleared", nil
}

func runHelp(s *session, args []string) (string, error) {
	if len(args) == 1 {
		return GetOrFillHelpPage(s.helpCache, args[0])
	}

	var sb strings.Builder
	for _, c := range shellCommands {
		fmt.Fprintf(&sb, "  %-22s %s\n", c.usage(), c.brief)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
