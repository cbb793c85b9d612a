package plugin

import "github.com/linuxmatters/ee2pw/internal/control"

// LimiterURI is the LSP sidechain stereo limiter.
const LimiterURI = "http://lsp-plug.in/plugins/lv2/sc_limiter_stereo"

var limiterModes = control.EnumTable{
	"Herm Thin": 0.0,
	"Herm Wide": 1.0,
	"Herm Tail": 2.0,
	"Herm Duck": 3.0,
	"Exp Thin":  4.0,
	"Exp Wide":  5.0,
	"Exp Tail":  6.0,
	"Exp Duck":  7.0,
	"Line Thin": 8.0,
	"Line Wide": 9.0,
	"Line Tail": 10.0,
	"Line Duck": 11.0,
}

var limiterOversampling = control.EnumTable{
	"None":             0.0,
	"Half x2/16 bit":   1.0,
	"Half x2/24 bit":   2.0,
	"Half x3/16 bit":   3.0,
	"Half x3/24 bit":   4.0,
	"Half x4/16 bit":   5.0,
	"Half x4/24 bit":   6.0,
	"Half x6/16 bit":   7.0,
	"Half x6/24 bit":   8.0,
	"Half x8/16 bit":   9.0,
	"Half x8/24 bit":   10.0,
	"Full x2/16 bit":   11.0,
	"Full x2/24 bit":   12.0,
	"Full x3/16 bit":   13.0,
	"Full x3/24 bit":   14.0,
	"Full x4/16 bit":   15.0,
	"Full x4/24 bit":   16.0,
	"Full x6/16 bit":   17.0,
	"Full x6/24 bit":   18.0,
	"Full x8/16 bit":   19.0,
	"Full x8/24 bit":   20.0,
	"True Peak/16 bit": 21.0,
	"True Peak/24 bit": 22.0,
}

var limiterDithering = control.EnumTable{
	"None":  0.0,
	"7bit":  1.0,
	"8bit":  2.0,
	"11bit": 3.0,
	"12bit": 4.0,
	"15bit": 5.0,
	"16bit": 6.0,
	"23bit": 7.0,
	"24bit": 8.0,
}

var limiterSchema = Schema{
	Kind:   KindLimiter,
	URI:    LimiterURI,
	Bypass: Bypass{Control: "enabled", Inverted: true},
	Fields: []Field{
		enumField("mode", "mode", "Herm Thin", limiterModes, 0.0),
		enumField("ovs", "oversampling", "None", limiterOversampling, 0.0),
		enumField("dith", "dithering", "None", limiterDithering, 0.0),
		decibelField("g_in", "input-gain", 0.0),
		decibelField("g_out", "output-gain", 0.0),
		floatField("lk", "lookahead", 5.0),
		floatField("at", "attack", 0.0),
		floatField("rt", "release", 5.0),
		decibelField("th", "threshold", 0.0),
		floatField("slink", "stereo-link", 100.0),
		floatField("alr_at", "alr-attack", 5.0),
		floatField("alr_rt", "alr-release", 50.0),
		decibelField("knee", "alr-knee", 0.0),
		boolField("alr", "alr", false),
		boolField("boost", "gain-boost", false),
	},
}
