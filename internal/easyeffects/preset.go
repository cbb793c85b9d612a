// Package easyeffects reads EasyEffects preset files.
package easyeffects

import (
	"fmt"
	"os"
	"strings"

	ee2pwerrors "github.com/linuxmatters/ee2pw/internal/errors"
	"github.com/linuxmatters/ee2pw/internal/plugin"
	"github.com/tidwall/gjson"
)

// Preset sections. Output presets process playback, input presets capture.
const (
	SectionOutput = "output"
	SectionInput  = "input"
)

// Preset key holding the ordered plugin list
const orderKey = "plugins_order"

// Entry is one element of the preset's plugin order.
type Entry struct {
	Key   string // "limiter#0"
	Tag   string // "limiter"
	Index string // "0"
}

// ParseEntry splits a plugin key into its type tag and index.
func ParseEntry(key string) Entry {
	tag, index, _ := strings.Cut(key, plugin.KeySeparator)
	return Entry{Key: key, Tag: tag, Index: index}
}

// NodeName is the entry's name in the filter graph: the key with every
// separator replaced by an underscore.
func (e Entry) NodeName() string {
	return strings.ReplaceAll(e.Key, plugin.KeySeparator, "_")
}

// Preset is the parsed plugin chain of one preset section.
type Preset struct {
	Path    string
	Section string
	Order   []Entry
	Plugins map[string]plugin.Params
}

// Params returns the settings of e, or empty Params if the preset has none.
func (p *Preset) Params(e Entry) plugin.Params {
	if params, ok := p.Plugins[e.Key]; ok {
		return params
	}
	return plugin.Params{}
}

// NodeNames returns the graph names of every entry in chain order.
func (p *Preset) NodeNames() []string {
	names := make([]string, len(p.Order))
	for i, e := range p.Order {
		names[i] = e.NodeName()
	}
	return names
}

// Load reads and parses the preset at path.
func Load(path, section string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ee2pwerrors.NewStageError("load", path, fmt.Errorf("%w: %w", ee2pwerrors.ErrSourceRead, err))
	}

	preset, err := Parse(data, section)
	if err != nil {
		return nil, ee2pwerrors.NewStageError("load", path, err)
	}
	preset.Path = path
	return preset, nil
}

// Parse reads the given section of a preset document. A missing section or
// plugin list yields an empty chain; malformed JSON is an error.
func Parse(data []byte, section string) (*Preset, error) {
	if section == "" {
		section = SectionOutput
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ee2pwerrors.ErrSourceRead)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: document is not an object", ee2pwerrors.ErrSourceRead)
	}

	preset := &Preset{
		Section: section,
		Order:   []Entry{},
		Plugins: map[string]plugin.Params{},
	}

	sec := root.Get(section)
	if !sec.Exists() {
		return preset, nil
	}
	if !sec.IsObject() {
		return nil, fmt.Errorf("%w: %q is not an object", ee2pwerrors.ErrSourceRead, section)
	}

	order := sec.Get(orderKey)
	if order.Exists() && !order.IsArray() {
		return nil, fmt.Errorf("%w: %s.%s is not a list", ee2pwerrors.ErrSourceRead, section, orderKey)
	}
	order.ForEach(func(_, v gjson.Result) bool {
		preset.Order = append(preset.Order, ParseEntry(v.String()))
		return true
	})

	sec.ForEach(func(k, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		if m, ok := v.Value().(map[string]any); ok {
			preset.Plugins[k.String()] = plugin.Params(m)
		}
		return true
	})

	return preset, nil
}
