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
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint draws the tree sideways on w: the right subtree above a node,
// the left subtree below it. Each node shows its key, its parent's key,
// its height and its balance factor. Returns the depth drawn.
func (t *Tree[K, V]) Fprint(w io.Writer, showValues bool) int {
	return printTree(w, t.root, "", rootBranch, showValues)
}

// String renders the tree without values
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.Fprint(&sb, false)
	return sb.String()
}

func printTree[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch, showValues bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printTree(w, n.right, prefix+pad, rightBranch, showValues)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if n.parent != nil {
		up = fmt.Sprint(n.parent.key)
	}
	if showValues {
		fmt.Fprintf(w, "%v → %v ^%s h=%d %+d\n", n.key, n.value, up, n.height, n.BalanceFactor())
	} else {
		fmt.Fprintf(w, "%v ^%s h=%d %+d\n", n.key, up, n.height, n.BalanceFactor())
	}

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printTree(w, n.left, prefix+pad, leftBranch, showValues)
	}
	return 1 + max(ld, rd)
}
