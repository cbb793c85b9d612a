package plugin

import "github.com/linuxmatters/ee2pw/internal/control"

// FilterURI is the LSP stereo filter.
const FilterURI = "http://lsp-plug.in/plugins/lv2/filter_stereo"

// filterTypes maps the filter type to the "ft" port.
var filterTypes = control.EnumTable{
	"Lo-pass":     0.0,
	"Hi-pass":     1.0,
	"Lo-shelf":    2.0,
	"Hi-shelf":    3.0,
	"Bell":        4.0,
	"Bandpass":    5.0,
	"Notch":       6.0,
	"Resonance":   7.0,
	"Ladder-pass": 8.0,
	"Ladder-rej":  9.0,
	"Allpass":     10.0,
}

// filterModes maps the filter topology to the "fm" port.
var filterModes = control.EnumTable{
	"RLC (BT)": 0.0,
	"RLC (MT)": 1.0,
	"BWC (BT)": 2.0,
	"BWC (MT)": 3.0,
	"LRX (BT)": 4.0,
	"LRX (MT)": 5.0,
	"APO (DR)": 6.0,
}

// filterEqualizerModes maps the processing mode to the "mode" port.
var filterEqualizerModes = control.EnumTable{
	"IIR": 0.0,
	"FIR": 1.0,
	"FFT": 2.0,
	"SPM": 3.0,
}

// filterSlopes maps the slope multiplier to the "s" port.
var filterSlopes = control.EnumTable{
	"x1":  0.0,
	"x2":  1.0,
	"x3":  2.0,
	"x4":  3.0,
	"x6":  4.0,
	"x8":  5.0,
	"x12": 6.0,
	"x16": 7.0,
}

var filterSchema = Schema{
	Kind:   KindFilter,
	URI:    FilterURI,
	Bypass: Bypass{Control: "enabled", Inverted: true},
	Fields: []Field{
		decibelField("g_in", "input-gain", 0.0),
		decibelField("g_out", "output-gain", 0.0),
		floatField("bal", "balance", 0.0),
		enumField("mode", "equal-mode", "IIR", filterEqualizerModes, 0.0),
		enumField("ft", "type", "Lo-pass", filterTypes, 0.0),
		enumField("fm", "mode", "RLC (BT)", filterModes, 0.0),
		enumField("s", "slope", "x1", filterSlopes, 0.0),
		floatField("f", "frequency", 0.0),
		floatField("w", "width", 4.0),
		floatField("q", "quality", 0.0),
	},
}
