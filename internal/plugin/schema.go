package plugin

import (
	"fmt"

	"github.com/linuxmatters/ee2pw/internal/control"
)

// PluginType is the filter-chain node type for every mapped plugin.
const PluginType = "lv2"

// bypassKey is the preset flag every EasyEffects plugin carries.
const bypassKey = "bypass"

// Transform selects which control conversion a field uses.
type Transform int

const (
	TransformFloat   Transform = iota // plain number, rounded
	TransformDecibel                  // dB in, rounded linear gain out
	TransformBool                     // flag in, 1.0/0.0 out
	TransformEnum                     // option name in, table value out
)

// Field declares how one LV2 control is derived from one preset key.
type Field struct {
	Control   string
	Source    string
	Transform Transform

	// Defaults used when Source is absent. Only the one matching
	// Transform is consulted.
	Number float64
	Flag   bool
	Option string

	// Enum lookup, with Fallback for options the table does not name
	Table    control.EnumTable
	Fallback float64
}

func floatField(ctl, src string, def float64) Field {
	return Field{Control: ctl, Source: src, Transform: TransformFloat, Number: def}
}

func decibelField(ctl, src string, def float64) Field {
	return Field{Control: ctl, Source: src, Transform: TransformDecibel, Number: def}
}

func boolField(ctl, src string, def bool) Field {
	return Field{Control: ctl, Source: src, Transform: TransformBool, Flag: def}
}

func enumField(ctl, src, def string, table control.EnumTable, fallback float64) Field {
	return Field{Control: ctl, Source: src, Transform: TransformEnum, Option: def, Table: table, Fallback: fallback}
}

// Value maps the field from p.
func (f Field) Value(p Params) float64 {
	switch f.Transform {
	case TransformDecibel:
		return control.Decibel(p.Float(f.Source, f.Number))
	case TransformBool:
		return control.Bool(p.Bool(f.Source, f.Flag), false)
	case TransformEnum:
		option, present, ok := p.Option(f.Source)
		if !present {
			option, ok = f.Option, true
		}
		if !ok {
			return f.Fallback
		}
		return control.Enum(option, f.Table, f.Fallback)
	default:
		return control.Float(p.Float(f.Source, f.Number))
	}
}

// Bypass declares how the preset's bypass flag reaches the plugin.
// LSP plugins expose "enabled" (inverted); Calf plugins expose "bypass".
type Bypass struct {
	Control  string
	Inverted bool
}

// Schema is the complete mapping for one plugin type.
type Schema struct {
	Kind   Kind
	URI    string
	Bypass Bypass
	Fields []Field

	// extend emits controls that do not fit a flat field list, and
	// describe resolves them back to their fields
	extend   func(p Params, controls map[string]float64)
	describe func(ctl string) (Field, bool)
}

// Map converts one plugin instance into a graph node named name.
func (s *Schema) Map(p Params, name string) Node {
	controls := make(map[string]float64, len(s.Fields)+1)
	controls[s.Bypass.Control] = control.Bool(p.Bool(bypassKey, false), s.Bypass.Inverted)
	applyFields(controls, s.Fields, p, "")
	if s.extend != nil {
		s.extend(p, controls)
	}

	return Node{
		Kind:    s.Kind,
		Type:    PluginType,
		Name:    name,
		Plugin:  s.URI,
		Control: controls,
	}
}

// applyFields writes every field into controls, appending suffix to the
// control names.
func applyFields(controls map[string]float64, fields []Field, p Params, suffix string) {
	for _, f := range fields {
		controls[f.Control+suffix] = f.Value(p)
	}
}

// validate checks the schema is internally consistent.
func (s *Schema) validate() error {
	if s.URI == "" {
		return fmt.Errorf("plugin %q: empty URI", s.Kind)
	}
	if s.Bypass.Control == "" {
		return fmt.Errorf("plugin %q: no bypass control", s.Kind)
	}

	seen := map[string]bool{s.Bypass.Control: true}
	for _, f := range s.Fields {
		if f.Control == "" || f.Source == "" {
			return fmt.Errorf("plugin %q: field with empty control or source", s.Kind)
		}
		if seen[f.Control] {
			return fmt.Errorf("plugin %q: control %q declared twice", s.Kind, f.Control)
		}
		seen[f.Control] = true

		if f.Transform == TransformEnum {
			if len(f.Table) == 0 {
				return fmt.Errorf("plugin %q: enum %q has no table", s.Kind, f.Control)
			}
			if _, ok := f.Table[f.Option]; !ok {
				return fmt.Errorf("plugin %q: enum %q default %q not in table", s.Kind, f.Control, f.Option)
			}
		}
	}
	return nil
}

// Describe returns the field that produces ctl, including the bypass
// control and per-band controls of extended schemas.
func (s *Schema) Describe(ctl string) (Field, bool) {
	if ctl == s.Bypass.Control {
		return Field{Control: ctl, Source: bypassKey, Transform: TransformBool}, true
	}
	for _, f := range s.Fields {
		if f.Control == ctl {
			return f, true
		}
	}
	if s.describe != nil {
		return s.describe(ctl)
	}
	return Field{}, false
}
