package plugin

import (
	"testing"

	"github.com/linuxmatters/ee2pw/internal/control"
)

func TestFieldValue(t *testing.T) {
	table := control.EnumTable{"A": 0.0, "B": 5.0}

	tests := []struct {
		name   string
		field  Field
		params Params
		want   float64
	}{
		{"float default", floatField("w", "width", 4.0), Params{}, 4.0},
		{"float value rounded", floatField("w", "width", 4.0), Params{"width": 1.23456789}, 1.234568},
		{"decibel default", decibelField("g", "gain", 0.0), Params{}, 1.0},
		{"decibel value", decibelField("g", "gain", 0.0), Params{"gain": -6.0}, 0.501187},
		{"decibel silence", decibelField("g", "gain", 0.0), Params{"gain": -120.0}, 0.0},
		{"bool default true", boolField("ce", "enable", true), Params{}, 1.0},
		{"bool value false", boolField("ce", "enable", true), Params{"enable": false}, 0.0},
		{"enum default", enumField("m", "mode", "B", table, 9.0), Params{}, 5.0},
		{"enum value", enumField("m", "mode", "B", table, 9.0), Params{"mode": "A"}, 0.0},
		{"enum unknown value", enumField("m", "mode", "B", table, 9.0), Params{"mode": "C"}, 9.0},
		{"enum non-string value", enumField("m", "mode", "B", table, 9.0), Params{"mode": 1.0}, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Value(tt.params); got != tt.want {
				t.Errorf("Value(%v) = %v, want %v", tt.params, got, tt.want)
			}
		})
	}
}

func TestSchemaValidate(t *testing.T) {
	valid := Schema{
		Kind:   "test",
		URI:    "urn:test",
		Bypass: Bypass{Control: "enabled", Inverted: true},
		Fields: []Field{floatField("a", "a", 0)},
	}
	if err := valid.validate(); err != nil {
		t.Errorf("valid schema rejected: %v", err)
	}

	tests := []struct {
		name   string
		schema Schema
	}{
		{"empty URI", Schema{Kind: "t", Bypass: Bypass{Control: "enabled"}}},
		{"no bypass", Schema{Kind: "t", URI: "urn:t"}},
		{"duplicate control", Schema{Kind: "t", URI: "urn:t", Bypass: Bypass{Control: "enabled"},
			Fields: []Field{floatField("a", "a", 0), floatField("a", "b", 0)}}},
		{"field shadows bypass", Schema{Kind: "t", URI: "urn:t", Bypass: Bypass{Control: "enabled"},
			Fields: []Field{boolField("enabled", "on", true)}}},
		{"enum default missing", Schema{Kind: "t", URI: "urn:t", Bypass: Bypass{Control: "enabled"},
			Fields: []Field{enumField("m", "mode", "Z", control.EnumTable{"A": 0}, 0)}}},
		{"enum without table", Schema{Kind: "t", URI: "urn:t", Bypass: Bypass{Control: "enabled"},
			Fields: []Field{enumField("m", "mode", "Z", nil, 0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.schema.validate(); err == nil {
				t.Error("validate() = nil, want error")
			}
		})
	}
}

func TestBypassPolarity(t *testing.T) {
	tests := []struct {
		kind     Kind
		control  string
		inverted bool
	}{
		{KindFilter, "enabled", true},
		{KindLimiter, "enabled", true},
		{KindMultibandCompressor, "enabled", true},
		{KindBassEnhancer, "bypass", false},
		{KindStereoTools, "bypass", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, ok := SchemaFor(tt.kind)
			if !ok {
				t.Fatalf("no schema for %q", tt.kind)
			}
			if s.Bypass.Control != tt.control || s.Bypass.Inverted != tt.inverted {
				t.Errorf("Bypass = %+v, want {%s %v}", s.Bypass, tt.control, tt.inverted)
			}

			active := s.Map(Params{"bypass": false}, "n")
			bypassed := s.Map(Params{"bypass": true}, "n")
			wantActive, wantBypassed := 1.0, 0.0
			if !tt.inverted {
				wantActive, wantBypassed = 0.0, 1.0
			}
			if got := active.Control[tt.control]; got != wantActive {
				t.Errorf("active %s = %v, want %v", tt.control, got, wantActive)
			}
			if got := bypassed.Control[tt.control]; got != wantBypassed {
				t.Errorf("bypassed %s = %v, want %v", tt.control, got, wantBypassed)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		kind      Kind
		control   string
		source    string
		transform Transform
		ok        bool
	}{
		{KindFilter, "enabled", "bypass", TransformBool, true},
		{KindFilter, "g_in", "input-gain", TransformDecibel, true},
		{KindFilter, "ft", "type", TransformEnum, true},
		{KindFilter, "nope", "", 0, false},
		{KindLimiter, "th", "threshold", TransformDecibel, true},
		{KindMultibandCompressor, "mode", "compressor-mode", TransformEnum, true},
		{KindMultibandCompressor, "al_0", "band0.attack-threshold", TransformDecibel, true},
		{KindMultibandCompressor, "sf_3", "band3.split-frequency", TransformFloat, true},
		{KindMultibandCompressor, "cbe_7", "band7.enable-band", TransformBool, true},
		{KindMultibandCompressor, "cbe_0", "", 0, false},
		{KindMultibandCompressor, "al_8", "", 0, false},
		{KindStereoTools, "al_0", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.control, func(t *testing.T) {
			s, _ := SchemaFor(tt.kind)
			f, ok := s.Describe(tt.control)
			if ok != tt.ok {
				t.Fatalf("Describe(%q) ok = %v, want %v", tt.control, ok, tt.ok)
			}
			if !ok {
				return
			}
			if f.Source != tt.source || f.Transform != tt.transform || f.Control != tt.control {
				t.Errorf("Describe(%q) = %+v, want source %q transform %v", tt.control, f, tt.source, tt.transform)
			}
		})
	}
}

func TestDescribeCoversEveryControl(t *testing.T) {
	all := Params{}
	for i := 0; i < Bands; i++ {
		all[BandSection(i)] = map[string]any{"enable-band": true}
	}

	for _, k := range Kinds {
		s, _ := SchemaFor(k)
		node := s.Map(all, "n")
		for ctl := range node.Control {
			if _, ok := s.Describe(ctl); !ok {
				t.Errorf("%s: control %q has no field", k, ctl)
			}
		}
	}
}
