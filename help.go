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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const helpWidth = 80

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlmap %s**

A self-balancing ordered map for Go, plus a command line to exercise it.
Every add and remove keeps the tree within one level of perfect balance, so
lookups, inserts and deletes stay logarithmic.

Built with Go %s

# 1. Commands
* **bench**: time add, remove and contains on the AVL tree against a B-tree and a left-leaning red-black tree
* **check**: run random adds and removes against a Go map and verify every invariant after each one
* **shell**: line based session over a string keyed tree
* **explore**: full screen explorer that redraws the tree after every command
* **settings**: show (and create) ~/.avlmap.yaml

# 2. Shell commands
%s

# Please be aware
* Copy to clipboard in the explorer on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), shellCommandList())
	result := markdown.Render(message, helpWidth, 3)
	return string(result)
}

// shellCommandList is a markdown bullet list of the shell commands
func shellCommandList() string {
	var list string
	for _, c := range shellCommands {
		list += fmt.Sprintf("* **%s** %s\n", c.usage(), c.brief)
	}
	return list
}

// renderCommandHelp renders the long help of one shell command
func renderCommandHelp(name string) (string, error) {
	c, ok := lookupCommand(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownCommand, name)
	}

	page := fmt.Sprintf("# %s\n\n`%s`\n\n%s\n", c.name, c.usage(), c.help)
	return string(markdown.Render(page, helpWidth, 2)), nil
}
