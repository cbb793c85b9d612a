package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/ee2pw/internal/pipewire"
	"github.com/linuxmatters/ee2pw/internal/plugin"
)

// DefaultReportName is used when the output goes to stdout.
const DefaultReportName = "ee2pw-report.txt"

// ReportData contains everything needed to describe one conversion
type ReportData struct {
	InputPath   string
	OutputPath  string
	Section     string
	ChainName   string
	SmartTarget string
	StartTime   time.Time
	EndTime     time.Time
	Document    *pipewire.Document
	Unknown     []string // plugin keys that had no mapping
}

// ReportPath derives the report file name from the output path:
// speakers.conf → speakers-report.txt
func ReportPath(outputPath string) string {
	if outputPath == "" || outputPath == "-" {
		return DefaultReportName
	}
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "-report.txt"
}

// GenerateReport writes the conversion report next to the output.
func GenerateReport(data ReportData) (string, error) {
	path := ReportPath(data.OutputPath)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	WriteReport(f, data)
	return path, nil
}

// WriteReport renders the report to w.
func WriteReport(w io.Writer, data ReportData) {
	writeReportHeader(w, data)

	if data.Document == nil {
		return
	}
	graph := data.Document.Graph()
	if graph == nil {
		return
	}

	writeChainSummary(w, graph, data.Unknown)
	for _, node := range graph.Nodes {
		writeNode(w, node)
	}
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func writeReportHeader(w io.Writer, data ReportData) {
	fmt.Fprintln(w, "ee2pw Conversion Report")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintf(w, "Preset:    %s (%s)\n", filepath.Base(data.InputPath), data.Section)
	fmt.Fprintf(w, "Output:    %s\n", displayOutput(data.OutputPath))
	fmt.Fprintf(w, "Chain:     %s\n", data.ChainName)
	if data.SmartTarget != "" {
		fmt.Fprintf(w, "Target:    %s\n", data.SmartTarget)
	}
	if !data.EndTime.IsZero() {
		fmt.Fprintf(w, "Converted: %s in %s\n",
			data.EndTime.Format("2006-01-02 15:04:05 MST"), data.EndTime.Sub(data.StartTime).Round(time.Microsecond))
	}
	fmt.Fprintln(w, "")
}

func writeChainSummary(w io.Writer, graph *pipewire.Graph, unknown []string) {
	writeSection(w, "Chain")

	names := make([]string, len(graph.Nodes))
	for i, n := range graph.Nodes {
		names[i] = n.Name
	}
	fmt.Fprintf(w, "Nodes:   %s\n", strings.Join(names, " → "))
	fmt.Fprintf(w, "Links:   %d\n", len(graph.Links))
	fmt.Fprintf(w, "Inputs:  %s\n", strings.Join(graph.Inputs, ", "))
	fmt.Fprintf(w, "Outputs: %s\n", strings.Join(graph.Outputs, ", "))
	if len(unknown) > 0 {
		fmt.Fprintf(w, "Unknown: %s (no controls emitted)\n", strings.Join(unknown, ", "))
	}
	fmt.Fprintln(w, "")
}

func writeNode(w io.Writer, node plugin.Node) {
	writeSection(w, node.Name)

	if !node.Known() {
		fmt.Fprintln(w, "unknown plugin type, node left empty")
		fmt.Fprintln(w, "")
		return
	}
	fmt.Fprintf(w, "Plugin: %s\n\n", node.Plugin)
	fmt.Fprint(w, NodeTable(node).String())
	fmt.Fprintln(w, "")
}

// NodeTable lists a node's controls in name order, with the preset key
// each one came from. Gains are also shown in dB.
func NodeTable(node plugin.Node) *ControlTable {
	table := NewControlTable()
	schema, ok := plugin.SchemaFor(node.Kind)

	for _, name := range node.ControlNames() {
		value := node.Control[name]
		db, source := "", ""
		if ok {
			if f, found := schema.Describe(name); found {
				source = f.Source
				if f.Transform == plugin.TransformDecibel {
					db = formatGainDB(value)
				}
			}
		}
		table.AddRow(name, []string{formatControl(value), db}, source)
	}
	return table
}

func displayOutput(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
