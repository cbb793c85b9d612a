package plugin

import "github.com/linuxmatters/ee2pw/internal/control"

// StereoToolsURI is the Calf stereo tools.
const StereoToolsURI = "http://calf.sourceforge.net/plugins/StereoTools"

// stereoToolsModes maps the channel routing mode to the "mode" port.
var stereoToolsModes = control.EnumTable{
	"LR > LR (Stereo Default)":       0.0,
	"LR > MS (Stereo to Mid-Side)":   1.0,
	"MS > LR (Mid-Side to Stereo)":   2.0,
	"LR > LL (Mono Left Channel)":    3.0,
	"LR > RR (Mono Right Channel)":   4.0,
	"LR > L+R (Mono Sum L+R)":        5.0,
	"LR > RL (Stereo Flip Channels)": 6.0,
}

var stereoToolsSchema = Schema{
	Kind:   KindStereoTools,
	URI:    StereoToolsURI,
	Bypass: Bypass{Control: "bypass", Inverted: false},
	Fields: []Field{
		decibelField("level_in", "input-gain", 0.0),
		decibelField("level_out", "output-gain", 0.0),
		floatField("balance_in", "balance-in", 0.0),
		floatField("balance_out", "balance-out", 0.0),
		boolField("softclip", "softclip", false),
		boolField("mutel", "mutel", false),
		boolField("muter", "muter", false),
		boolField("phasel", "phasel", false),
		boolField("phaser", "phaser", false),
		enumField("mode", "mode", "LR > LR (Stereo Default)", stereoToolsModes, 0.0),
		decibelField("slev", "side-level", 0.0),
		floatField("sbal", "side-balance", 0.0),
		decibelField("mlev", "middle-level", 0.0),
		floatField("mpan", "middle-panorama", 0.0),
		floatField("stereo_base", "stereo-base", 0.0),
		floatField("delay", "delay", 0.0),
		floatField("sc_level", "sc-level", 1.0),
		floatField("stereo_phase", "stereo-phase", 0.0),
	},
}
