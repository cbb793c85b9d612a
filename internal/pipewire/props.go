package pipewire

// SmartTarget names the node a smart filter attaches to.
type SmartTarget struct {
	NodeName string `json:"node.name"`
}

// CaptureProps describe the sink side of the filter chain.
type CaptureProps struct {
	NodeName          string       `json:"node.name"`
	MediaClass        string       `json:"media.class"`
	FilterSmart       bool         `json:"filter.smart,omitempty"`
	FilterSmartName   string       `json:"filter.smart.name,omitempty"`
	FilterSmartTarget *SmartTarget `json:"filter.smart.target,omitempty"`
}

// PlaybackProps describe the output side of the filter chain.
type PlaybackProps struct {
	NodeName     string `json:"node.name"`
	NodePassive  bool   `json:"node.passive"`
	DontFallback bool   `json:"node.dont-fallback,omitempty"`
	Linger       bool   `json:"node.linger,omitempty"`
}

// NewCaptureProps builds the capture side. With a target the chain is
// registered as a smart filter in front of that node.
func NewCaptureProps(chainName, target string) CaptureProps {
	props := CaptureProps{
		NodeName:   "input." + SnakeCase(chainName),
		MediaClass: MediaClassSink,
	}
	if target != "" {
		props.FilterSmart = true
		props.FilterSmartName = chainName
		props.FilterSmartTarget = &SmartTarget{NodeName: target}
	}
	return props
}

// NewPlaybackProps builds the playback side. With a target the output node
// stays linked to it even when no stream is playing.
func NewPlaybackProps(chainName, target string) PlaybackProps {
	props := PlaybackProps{
		NodeName:    "output." + SnakeCase(chainName),
		NodePassive: true,
	}
	if target != "" {
		props.DontFallback = true
		props.Linger = true
	}
	return props
}
