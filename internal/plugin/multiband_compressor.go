package plugin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linuxmatters/ee2pw/internal/control"
)

// MultibandCompressorURI is the LSP sidechain stereo multiband compressor.
const MultibandCompressorURI = "http://lsp-plug.in/plugins/lv2/sc_mb_compressor_stereo"

// Bands is the number of compressor bands. Band 0 is always active.
const Bands = 8

var multibandCompressorModes = control.EnumTable{
	"Classic":      0.0,
	"Modern":       1.0,
	"Linear Phase": 2.0,
}

var multibandEnvelopeBoosts = control.EnumTable{
	"None":     0.0,
	"Pink BT":  1.0,
	"Pink MT":  2.0,
	"Brown BT": 3.0,
	"Brown MT": 4.0,
}

var multibandCompressionModes = control.EnumTable{
	"Downward": 0.0,
	"Upward":   1.0,
	"Boosting": 2.0,
}

// bandEnableField and bandSplitField only apply to bands 1 and up.
var (
	bandEnableField = boolField("cbe", "enable-band", false)
	bandSplitField  = floatField("sf", "split-frequency", 0.0)
)

// bandFields are emitted for band 0 and for every enabled band.
var bandFields = []Field{
	boolField("ce", "compressor-enable", true),
	boolField("bs", "solo", false),
	boolField("bm", "mute", false),
	decibelField("al", "attack-threshold", -12.0),
	floatField("at", "attack-time", 0.0),
	decibelField("rrl", "release-threshold", 0.0),
	floatField("rt", "release-time", 100.0),
	decibelField("cr", "ratio", 0.0),
	decibelField("kn", "knee", -6.0),
	decibelField("mk", "makeup", 0.0),
	enumField("cm", "compression-mode", "Downward", multibandCompressionModes, 0.0),
	decibelField("bth", "boost-threshold", -72.0),
	decibelField("bsa", "boost-amount", 0.0),
}

var multibandCompressorSchema = Schema{
	Kind:   KindMultibandCompressor,
	URI:    MultibandCompressorURI,
	Bypass: Bypass{Control: "enabled", Inverted: true},
	Fields: []Field{
		decibelField("g_in", "input-gain", 0.0),
		decibelField("g_out", "output-gain", 0.0),
		decibelField("g_dry", "dry", 0.0),
		decibelField("g_wet", "wet", 0.0),
		enumField("mode", "compressor-mode", "Modern", multibandCompressorModes, 1.0),
		enumField("envb", "envelope-boost", "Pink BT", multibandEnvelopeBoosts, 1.0),
		boolField("ssplit", "stereo-split", false),
	},
	extend:   mapBands,
	describe: describeBandControl,
}

// BandSection returns the preset key holding band i's settings.
func BandSection(i int) string {
	return fmt.Sprintf("band%d", i)
}

// mapBands emits per-band controls. Band 0 is always fully emitted. Bands
// 1-7 always emit their enable flag, and the rest only when enabled; an
// absent key tells the plugin to keep its own default.
func mapBands(p Params, controls map[string]float64) {
	for i := 0; i < Bands; i++ {
		band := p.Section(BandSection(i))
		suffix := fmt.Sprintf("_%d", i)

		if i != 0 {
			enabled := bandEnableField.Value(band)
			controls[bandEnableField.Control+suffix] = enabled
			if enabled == 0 {
				continue
			}
			controls[bandSplitField.Control+suffix] = bandSplitField.Value(band)
		}

		applyFields(controls, bandFields, band, suffix)
	}
}

// describeBandControl resolves a suffixed band control such as "sf_3".
// The returned field's Source is qualified with the band section.
func describeBandControl(ctl string) (Field, bool) {
	base, index, ok := strings.Cut(ctl, "_")
	if !ok {
		return Field{}, false
	}
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= Bands {
		return Field{}, false
	}

	candidates := bandFields
	if i != 0 {
		candidates = append([]Field{bandEnableField, bandSplitField}, bandFields...)
	}
	for _, f := range candidates {
		if f.Control == base {
			f.Control = ctl
			f.Source = BandSection(i) + "." + f.Source
			return f, true
		}
	}
	return Field{}, false
}
