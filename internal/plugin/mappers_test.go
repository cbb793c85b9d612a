package plugin

import (
	"reflect"
	"testing"
)

func TestFilterDefaults(t *testing.T) {
	node := filterSchema.Map(Params{}, "filter_0")

	want := map[string]float64{
		"enabled": 1.0,
		"g_in":    1.0,
		"g_out":   1.0,
		"bal":     0.0,
		"mode":    0.0,
		"ft":      0.0,
		"fm":      0.0,
		"s":       0.0,
		"f":       0.0,
		"w":       4.0,
		"q":       0.0,
	}
	if !reflect.DeepEqual(node.Control, want) {
		t.Errorf("filter defaults = %v, want %v", node.Control, want)
	}
}

func TestFilterSettings(t *testing.T) {
	node := filterSchema.Map(Params{
		"bypass":      true,
		"input-gain":  -6.0,
		"output-gain": -120.0,
		"balance":     -0.5,
		"equal-mode":  "FFT",
		"type":        "Hi-pass",
		"mode":        "APO (DR)",
		"slope":       "x16",
		"frequency":   80.0,
		"width":       2.0,
		"quality":     0.707,
	}, "filter_0")

	want := map[string]float64{
		"enabled": 0.0,
		"g_in":    0.501187,
		"g_out":   0.0,
		"bal":     -0.5,
		"mode":    2.0,
		"ft":      1.0,
		"fm":      6.0,
		"s":       7.0,
		"f":       80.0,
		"w":       2.0,
		"q":       0.707,
	}
	if !reflect.DeepEqual(node.Control, want) {
		t.Errorf("filter controls = %v, want %v", node.Control, want)
	}
}

func TestLimiterDefaults(t *testing.T) {
	node := limiterSchema.Map(Params{}, "limiter_0")

	want := map[string]float64{
		"enabled": 1.0,
		"mode":    0.0,
		"ovs":     0.0,
		"dith":    0.0,
		"g_in":    1.0,
		"g_out":   1.0,
		"lk":      5.0,
		"at":      0.0,
		"rt":      5.0,
		"th":      1.0,
		"slink":   100.0,
		"alr_at":  5.0,
		"alr_rt":  50.0,
		"knee":    1.0,
		"alr":     0.0,
		"boost":   0.0,
	}
	if !reflect.DeepEqual(node.Control, want) {
		t.Errorf("limiter defaults = %v, want %v", node.Control, want)
	}
}

func TestLimiterEnums(t *testing.T) {
	tests := []struct {
		params  Params
		control string
		want    float64
	}{
		{Params{"mode": "Line Duck"}, "mode", 11.0},
		{Params{"mode": "Unknown"}, "mode", 0.0},
		{Params{"oversampling": "True Peak/24 bit"}, "ovs", 22.0},
		{Params{"oversampling": "Half x8/16 bit"}, "ovs", 9.0},
		{Params{"dithering": "24bit"}, "dith", 8.0},
		{Params{"dithering": "24 bit"}, "dith", 0.0},
	}

	for _, tt := range tests {
		node := limiterSchema.Map(tt.params, "limiter_0")
		if got := node.Control[tt.control]; got != tt.want {
			t.Errorf("limiter %v: %s = %v, want %v", tt.params, tt.control, got, tt.want)
		}
	}
}

func TestBassEnhancerDefaults(t *testing.T) {
	node := bassEnhancerSchema.Map(Params{}, "bass_enhancer_0")

	want := map[string]float64{
		"bypass":       0.0,
		"level_in":     1.0,
		"level_out":    1.0,
		"amount":       1.0,
		"drive":        8.5,
		"freq":         100.0,
		"floor":        20.0,
		"blend":        0.0,
		"floor_active": 0.0,
		"listen":       0.0,
	}
	if !reflect.DeepEqual(node.Control, want) {
		t.Errorf("bass enhancer defaults = %v, want %v", node.Control, want)
	}
}

func TestStereoToolsSettings(t *testing.T) {
	node := stereoToolsSchema.Map(Params{
		"mode":        "LR > RL (Stereo Flip Channels)",
		"delay":       1.5,
		"stereo-base": 0.25,
		"side-level":  -100.0,
	}, "stereo_tools_0")

	checks := map[string]float64{
		"bypass":      0.0,
		"mode":        6.0,
		"delay":       1.5,
		"stereo_base": 0.25,
		"slev":        0.0,
		"mlev":        1.0,
		"sc_level":    1.0,
	}
	for ctl, want := range checks {
		if got, ok := node.Control[ctl]; !ok || got != want {
			t.Errorf("stereo tools %s = %v (present %v), want %v", ctl, got, ok, want)
		}
	}

	defaults := stereoToolsSchema.Map(Params{}, "stereo_tools_0")
	if defaults.Control["mode"] != 0.0 || defaults.Control["delay"] != 0.0 {
		t.Errorf("stereo tools defaults mode=%v delay=%v, want 0 0", defaults.Control["mode"], defaults.Control["delay"])
	}
	if len(defaults.Control) != len(stereoToolsSchema.Fields)+1 {
		t.Errorf("stereo tools emitted %d controls, want %d", len(defaults.Control), len(stereoToolsSchema.Fields)+1)
	}
}

func TestMappersAreDeterministic(t *testing.T) {
	params := Params{"input-gain": -3.3, "band1": map[string]any{"enable-band": true}}
	for _, k := range Kinds {
		s, _ := SchemaFor(k)
		first := s.Map(params, "n")
		second := s.Map(params, "n")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s mapping differs between runs", k)
		}
	}
}
