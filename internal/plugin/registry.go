// Package plugin maps EasyEffects plugin settings to LV2 filter-chain nodes.
package plugin

import (
	"fmt"
	"strings"
)

// Kind identifies a supported plugin type. The value is the type tag used
// in EasyEffects plugin keys ("limiter#0").
type Kind string

// Supported plugin kinds
const (
	KindUnknown             Kind = ""
	KindFilter              Kind = "filter"
	KindBassEnhancer        Kind = "bass_enhancer"
	KindLimiter             Kind = "limiter"
	KindStereoTools         Kind = "stereo_tools"
	KindMultibandCompressor Kind = "multiband_compressor"
)

// KeySeparator splits a plugin key into type tag and instance index.
const KeySeparator = "#"

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{
	KindFilter,
	KindBassEnhancer,
	KindLimiter,
	KindStereoTools,
	KindMultibandCompressor,
}

// schemas maps each Kind to its mapping schema.
// This registry centralises plugin dispatch; it is read-only after init.
var schemas = map[Kind]*Schema{
	KindFilter:              &filterSchema,
	KindBassEnhancer:        &bassEnhancerSchema,
	KindLimiter:             &limiterSchema,
	KindStereoTools:         &stereoToolsSchema,
	KindMultibandCompressor: &multibandCompressorSchema,
}

func init() {
	if err := validateRegistry(); err != nil {
		panic(err)
	}
}

// validateRegistry checks that every kind has exactly one consistent schema.
func validateRegistry() error {
	if len(schemas) != len(Kinds) {
		return fmt.Errorf("plugin registry has %d schemas for %d kinds", len(schemas), len(Kinds))
	}
	for _, k := range Kinds {
		s, ok := schemas[k]
		if !ok {
			return fmt.Errorf("plugin %q has no schema", k)
		}
		if s.Kind != k {
			return fmt.Errorf("plugin %q registered with schema for %q", k, s.Kind)
		}
		if strings.Contains(string(k), KeySeparator) {
			return fmt.Errorf("plugin %q: tag contains %q", k, KeySeparator)
		}
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

// TagOf returns the type tag of a plugin key: everything before the
// first separator, or the whole key.
func TagOf(key string) string {
	tag, _, _ := strings.Cut(key, KeySeparator)
	return tag
}

// KindForTag resolves a type tag. Matching is exact and case-sensitive.
func KindForTag(tag string) Kind {
	k := Kind(tag)
	if _, ok := schemas[k]; ok {
		return k
	}
	return KindUnknown
}

// SchemaFor returns the schema registered for k.
func SchemaFor(k Kind) (*Schema, bool) {
	s, ok := schemas[k]
	return s, ok
}

// Map converts one preset plugin, identified by its key, into a node.
//
// Unknown plugin types are not an error: they produce a node carrying only
// its name, and known is false so the caller can decide how to react.
func Map(key string, p Params, name string) (node Node, known bool) {
	s, ok := SchemaFor(KindForTag(TagOf(key)))
	if !ok {
		return Node{Kind: KindUnknown, Name: name}, false
	}
	return s.Map(p, name), true
}
