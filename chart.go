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
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// phaseBars builds one bar chart for a phase, one bar per structure
func phaseBars(title string, report *benchReport, pick func(benchResult) time.Duration) *widgets.BarChart {
	scheme := GetColorScheme()

	bc := widgets.NewBarChart()
	bc.Title = fmt.Sprintf(" %s (ms) ", title)
	bc.TitleStyle = ui.NewStyle(scheme.Title)
	bc.BorderStyle = StyleBorder(false)
	bc.BarWidth = 9
	bc.BarGap = 3
	bc.BarColors = scheme.Bars
	bc.LabelStyles = []ui.Style{ui.NewStyle(scheme.Text)}
	bc.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	bc.NumFormatter = func(v float64) string { return fmt.Sprintf("%.1f", v) }

	for _, res := range report.Results {
		bc.Labels = append(bc.Labels, res.Structure)
		bc.Data = append(bc.Data, float64(pick(res).Microseconds())/1000)
	}
	return bc
}

// showChart draws the phase timings side by side and waits for a key
func showChart(report *benchReport) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	addChart := phaseBars(phaseAdd, report, func(r benchResult) time.Duration { return r.Add })
	removeChart := phaseBars(phaseRemove, report, func(r benchResult) time.Duration { return r.Remove })
	containsChart := phaseBars(phaseContains, report, func(r benchResult) time.Duration { return r.Contains })

	footer := widgets.NewParagraph()
	footer.Title = " Benchmark "
	footer.Text = fmt.Sprintf("%d keys, %d removed, seed %d. [Press any key to close](fg:green)",
		report.Keys, report.Removed, report.Seed)
	footer.BorderStyle = StyleBorder(true)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.85,
			ui.NewCol(1.0/3, addChart),
			ui.NewCol(1.0/3, removeChart),
			ui.NewCol(1.0/3, containsChart),
		),
		ui.NewRow(0.15, footer),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.Type {
		case ui.KeyboardEvent:
			return nil
		case ui.ResizeEvent:
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
