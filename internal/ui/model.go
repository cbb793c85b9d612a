// Package ui provides the Bubbletea terminal browser for a converted chain
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/ee2pw/internal/logging"
	"github.com/linuxmatters/ee2pw/internal/pipewire"
	"github.com/linuxmatters/ee2pw/internal/plugin"
)

// Model is the Bubbletea model for browsing a generated filter graph
type Model struct {
	// Chain being shown
	ChainName string
	Nodes     []plugin.Node
	Links     int
	Inputs    []string
	Outputs   []string

	// Selected node
	Cursor int

	// Debug log, nil unless --logs was given
	Log *logging.DebugLog

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a model for doc's filter graph.
func NewModel(chainName string, doc *pipewire.Document) Model {
	m := Model{ChainName: chainName}
	if graph := doc.Graph(); graph != nil {
		m.Nodes = graph.Nodes
		m.Links = len(graph.Links)
		m.Inputs = graph.Inputs
		m.Outputs = graph.Outputs
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.Cursor = m.clamp(m.Cursor - 1)
		case "down", "j":
			m.Cursor = m.clamp(m.Cursor + 1)
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = m.clamp(len(m.Nodes) - 1)
		}
		m.Log.Printf("[UI] key %q, cursor %d", msg.String(), m.Cursor)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Log.Printf("[UI] window size: %dx%d", m.Width, m.Height)
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if len(m.Nodes) == 0 {
		return fmt.Sprintf("%s: no nodes\n", m.ChainName)
	}
	return renderInspector(m)
}

// Selected returns the node under the cursor.
func (m Model) Selected() (plugin.Node, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Nodes) {
		return plugin.Node{}, false
	}
	return m.Nodes[m.Cursor], true
}

func (m Model) clamp(i int) int {
	if i >= len(m.Nodes) {
		i = len(m.Nodes) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Inspect runs the browser until the user quits.
func Inspect(chainName string, doc *pipewire.Document, log *logging.DebugLog) error {
	m := NewModel(chainName, doc)
	m.Log = log

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
