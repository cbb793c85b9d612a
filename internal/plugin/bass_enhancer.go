package plugin

// BassEnhancerURI is the Calf bass enhancer.
const BassEnhancerURI = "http://calf.sourceforge.net/plugins/BassEnhancer"

// Calf plugins take the bypass flag as is.
var bassEnhancerSchema = Schema{
	Kind:   KindBassEnhancer,
	URI:    BassEnhancerURI,
	Bypass: Bypass{Control: "bypass", Inverted: false},
	Fields: []Field{
		decibelField("level_in", "input-gain", 0.0),
		decibelField("level_out", "output-gain", 0.0),
		decibelField("amount", "amount", 0.0),
		floatField("drive", "harmonics", 8.5),
		floatField("freq", "scope", 100.0),
		floatField("floor", "floor", 20.0),
		floatField("blend", "blend", 0.0),
		boolField("floor_active", "floor-active", false),
		boolField("listen", "listen", false),
	},
}
