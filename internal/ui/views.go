package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/ee2pw/internal/logging"
	"github.com/linuxmatters/ee2pw/internal/plugin"
)

const paneWidth = 72

// renderInspector renders the header, node list and selected node's controls
func renderInspector(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderNodeList(m))
	b.WriteString("\n")

	if node, ok := m.Selected(); ok {
		b.WriteString(renderNodeDetails(node))
		b.WriteString("\n")
	}

	b.WriteString(renderFooter())
	return b.String()
}

// renderHeader renders the chain name and graph summary
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B6EA8")).
		Render(fmt.Sprintf("ee2pw 🔊 - %s", m.ChainName))

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("%d node(s), %d link(s) | in: %s | out: %s",
			len(m.Nodes), m.Links, strings.Join(m.Inputs, " "), strings.Join(m.Outputs, " ")))

	return title + "\n" + subtitle
}

// renderNodeList renders the chain in order with the cursor marked
func renderNodeList(m Model) string {
	var b strings.Builder

	for i, node := range m.Nodes {
		b.WriteString(renderNodeEntry(node, i == m.Cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// renderNodeEntry renders a single line of the node list
func renderNodeEntry(node plugin.Node, selected bool) string {
	pointer := " "
	if selected {
		pointer = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("▶")
	}

	if !node.Known() {
		// ✗ unknown plugin, name only
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf("%s %s %s (unknown)", pointer, icon, node.Name)
	}

	icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
	return fmt.Sprintf("%s %s %s (%s, %d controls)", pointer, icon, node.Name, node.Kind, len(node.Control))
}

// renderNodeDetails renders the control table of the selected node
func renderNodeDetails(node plugin.Node) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B6EA8")).
		Padding(0, 1).
		Width(paneWidth)

	var content strings.Builder
	if !node.Known() {
		content.WriteString("No mapping for this plugin type; node carries its name only.")
	} else {
		content.WriteString(node.Plugin)
		content.WriteString("\n\n")
		content.WriteString(strings.TrimSuffix(logging.NodeTable(node).String(), "\n"))
	}

	return box.Render(content.String())
}

// renderFooter renders the key help line
func renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("↑/k up • ↓/j down • g/G first/last • q quit")
}
