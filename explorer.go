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

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// historyItem is one executed command in the history list
type historyItem struct {
	line   string
	result string
	failed bool
}

func (i historyItem) FilterValue() string { return i.line }
func (i historyItem) Title() string       { return i.line }
func (i historyItem) Description() string {
	first, _, _ := strings.Cut(i.result, "\n")
	if i.failed {
		return "✗ " + first
	}
	return "✓ " + first
}

// explorerModel is the bubbletea state of the explore command
type explorerModel struct {
	ready bool

	input    textinput.Model
	history  list.Model
	treeView viewport.Model
	helpView viewport.Model

	session        *session
	showHelp       bool
	focusOnHistory bool

	status    string
	statusErr bool
	quitting  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newExplorerModel(s *session) explorerModel {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "add <key> <value>, remove <key>, find <key> ..."
	ti.Prompt = "avl> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	history := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	history.SetShowTitle(false)
	history.SetShowHelp(false)
	history.SetFilteringEnabled(false)
	history.DisableQuitKeybindings()

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := explorerModel{
		input:           ti,
		history:         history,
		treeView:        treeView,
		helpView:        helpView,
		session:         s,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          "Type a command and press enter",
	}
	m.refreshTree()
	m.refreshHelp()
	return m
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "ctrl+y":
			if err := copyToClipboard(m.rendering()); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("📋 Copied tree rendering to clipboard", false)
			}
			return m, nil
		case "tab":
			m.focusOnHistory = !m.focusOnHistory
			if m.focusOnHistory {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		case "pgup", "pgdown":
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		case "enter":
			if m.focusOnHistory {
				// load the selected command back into the input
				if item, ok := m.history.SelectedItem().(historyItem); ok {
					m.input.SetValue(item.line)
					m.input.CursorEnd()
				}
				m.focusOnHistory = false
				m.input.Focus()
				return m, nil
			}
			return m.submit()
		}

		if m.focusOnHistory {
			m.history, cmd = m.history.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// submit runs the input line against the session
func (m explorerModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")

	result, err := m.session.execute(line)
	if errors.Is(err, errQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	item := historyItem{line: line, result: result}
	if err != nil {
		item.result = err.Error()
		item.failed = true
		m.setStatus(err.Error(), true)
	} else {
		first, _, _ := strings.Cut(result, "\n")
		m.setStatus(first, false)
	}

	cmd := m.history.InsertItem(0, item)
	m.history.Select(0)
	m.refreshTree()
	return m, cmd
}

func (m *explorerModel) setStatus(text string, failed bool) {
	m.status = text
	m.statusErr = failed
}

// rendering is the current drawing of the tree
func (m explorerModel) rendering() string {
	if m.session.tree.IsEmpty() {
		return "(empty)"
	}
	var sb strings.Builder
	m.session.tree.Fprint(&sb, m.session.showValues)
	return sb.String()
}

func (m *explorerModel) refreshTree() {
	m.treeView.SetContent(m.rendering())
}

// refreshHelp renders the command reference with glamour, falling back to
// plain text
func (m *explorerModel) refreshHelp() {
	var md strings.Builder
	md.WriteString("# Commands\n\n| Command | Description |\n|---|---|\n")
	for _, c := range shellCommands {
		fmt.Fprintf(&md, "| `%s` | %s |\n", c.usage(), c.brief)
	}
	md.WriteString("\nEach node in the drawing shows its key, `^parent`, `h=height` and balance factor. ")
	md.WriteString("The right subtree is drawn above a node and the left one below it.\n")

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md.String()); err == nil {
			m.helpView.SetContent(rendered)
			return
		}
	}
	m.helpView.SetContent(md.String())
}

func (m *explorerModel) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 10
	m.history.SetSize(leftWidth-2, bodyHeight-2)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = bodyHeight + inputHeight
	m.helpView.Width = rightWidth - 2
	m.helpView.Height = bodyHeight + inputHeight
}

func (m explorerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBorder, historyBorder := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnHistory {
		inputBorder, historyBorder = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputBorder.
		Width(leftWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render("Command"),
			m.input.View(),
		))

	historyBox := historyBorder.
		Width(leftWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render("History"),
			m.history.View(),
		))

	rightTitle := fmt.Sprintf("Tree (%d entries, height %d)", m.session.tree.Count(), m.session.tree.Height())
	rightContent := m.treeView.View()
	if m.showHelp {
		rightTitle = "Help"
		rightContent = m.helpView.View()
	}
	rightBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(rightTitle),
			rightContent,
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, historyBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightBox)

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(lipgloss.Left, main, status, m.renderKeyHelp())
}

// renderKeyHelp renders the key binding footer
func (m explorerModel) renderKeyHelp() string {
	keys := []string{"enter", "tab", "pgup/pgdown", "f1", "ctrl+y", "esc"}
	descs := []string{"run command", "switch focus", "scroll", "toggle help", "copy tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func runExplorer(s *session) error {
	program := tea.NewProgram(
		newExplorerModel(s),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
