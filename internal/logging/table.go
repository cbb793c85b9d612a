// This file contains the aligned table used to list a node's controls.

package logging

import (
	"fmt"
	"math"
	"strings"

	"github.com/linuxmatters/ee2pw/internal/control"
)

// MissingValue is the placeholder for cells with no value
const MissingValue = "-"

// ControlRow is one control of a node.
// Values are pre-formatted strings, one per header.
type ControlRow struct {
	Label  string   // control name, e.g. "g_in"
	Values []string // one value per column
	Source string   // preset key the control was derived from
}

// ControlTable formats aligned columns of control values.
type ControlTable struct {
	Headers []string
	Rows    []ControlRow
}

// NewControlTable creates a table with Value and dB columns.
func NewControlTable() *ControlTable {
	return &ControlTable{
		Headers: []string{"Value", "dB"},
		Rows:    make([]ControlRow, 0),
	}
}

// AddRow adds a row with pre-formatted values.
func (t *ControlTable) AddRow(label string, values []string, source string) {
	t.Rows = append(t.Rows, ControlRow{Label: label, Values: values, Source: source})
}

// String renders the table. Labels are left-aligned, values right-aligned
// within their column, and the source column is only shown when some row
// has one.
func (t *ControlTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	hasSource := false
	labelWidth := 0
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		labelWidth = max(labelWidth, len(row.Label))
		hasSource = hasSource || row.Source != ""
		for i, v := range row.Values {
			if i < len(widths) {
				widths[i] = max(widths[i], len(v))
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, h := range t.Headers {
		fmt.Fprintf(&sb, "%*s  ", widths[i], h)
	}
	if hasSource {
		sb.WriteString("Source")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "%-*s  ", labelWidth, row.Label)
		for i := range t.Headers {
			v := MissingValue
			if i < len(row.Values) && row.Values[i] != "" {
				v = row.Values[i]
			}
			fmt.Fprintf(&sb, "%*s  ", widths[i], v)
		}
		if hasSource {
			sb.WriteString(row.Source)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatControl prints a control value with up to six decimals and no
// trailing zeros.
func formatControl(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	s := fmt.Sprintf("%.*f", control.Precision, value)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// formatGainDB prints a linear gain in dB. Zero gain is shown as silence.
func formatGainDB(linear float64) string {
	if math.IsNaN(linear) {
		return MissingValue
	}
	if linear <= 0 {
		return fmt.Sprintf("<= %.0f", control.SilenceFloorDB)
	}
	return fmt.Sprintf("%+.2f", control.LinearToDb(linear))
}
