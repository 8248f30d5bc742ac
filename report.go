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
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

func millis(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Microseconds())/1000)
}

// renderReport writes the benchmark table to w
func renderReport(w io.Writer, report *benchReport, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if colored {
		t.SetStyle(table.StyleColoredBright)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.SetTitle(fmt.Sprintf("%d keys, %d removed, seed %d", report.Keys, report.Removed, report.Seed))

	t.AppendHeader(table.Row{"Structure", "Add (ms)", "Remove (ms)", "Contains (ms)", "Found", "Count", "Height"})
	for _, res := range report.Results {
		height := "-"
		if res.Height > 0 {
			height = fmt.Sprint(res.Height)
		}
		t.AppendRow(table.Row{
			res.Structure,
			millis(res.Add),
			millis(res.Remove),
			millis(res.Contains),
			res.Found,
			res.Count,
			height,
		})
	}
	t.Render()
}
