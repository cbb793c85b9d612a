// Package config loads flag defaults from a YAML file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched for a config file when --config is not given.
var DefaultPaths = []string{
	"~/.config/ee2pw/config.yaml",
}

// YAML is a kong.ConfigurationLoader for YAML files. Keys are flag names,
// with dashes or underscores:
//
//	filter-chain-name: Speakers
//	smart_filter_target: alsa_output.pci-0000_00_1f.3.analog-stereo
//	strict: true
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		return Lookup(values, flag.Name), nil
	}
	return f, nil
}

// Lookup finds name in values, trying the flag name as written and with
// dashes turned into underscores. Returns nil when absent.
func Lookup(values map[string]any, name string) any {
	if v, ok := values[name]; ok {
		return v
	}
	if v, ok := values[strings.ReplaceAll(name, "-", "_")]; ok {
		return v
	}
	return nil
}
