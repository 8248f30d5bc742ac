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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the termui colors used by the benchmark chart
type ColorScheme struct {
	Bars        []ui.Color // one per compared structure
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	Title       ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI escapes for plain terminal output, set by InitializeColors
var Green, Info, Warning, Error, Reset string

// detectTerminalMode guesses light or dark from the environment
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Bars:        []ui.Color{ui.Color(4), ui.Color(2), ui.ColorMagenta},
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		Title:       ui.Color(4),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Bars:        []ui.Color{ui.Color(14), ui.Color(2), ui.ColorMagenta},
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		Title:       ui.Color(14),
	}
}

// InitializeColors detects the terminal mode and sets both the termui
// scheme and the ANSI escapes
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns darker escapes for light terminals and bright ones
// otherwise
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}
