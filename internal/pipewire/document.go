// Package pipewire assembles a PipeWire filter-chain module from a preset.
package pipewire

import (
	"fmt"
	"strings"

	"github.com/linuxmatters/ee2pw/internal/chain"
	"github.com/linuxmatters/ee2pw/internal/easyeffects"
	ee2pwerrors "github.com/linuxmatters/ee2pw/internal/errors"
	"github.com/linuxmatters/ee2pw/internal/plugin"
)

// ModuleName is the PipeWire module that hosts the filter graph.
const ModuleName = "libpipewire-module-filter-chain"

// Session layout. Every chain is stereo.
const (
	AudioChannels  = 2
	MediaClassSink = "Audio/Sink"
)

// DefaultChainName is used when no chain name is given.
const DefaultChainName = "EasyEffects"

// Document is a PipeWire configuration fragment holding one module.
type Document struct {
	ContextModules []Module `json:"context.modules"`
}

// Module is a single context.modules entry.
type Module struct {
	Name string `json:"name"`
	Args Args   `json:"args"`
}

// Args are the filter-chain module arguments.
type Args struct {
	NodeDescription string        `json:"node.description"`
	MediaName       string        `json:"media.name"`
	FilterGraph     Graph         `json:"filter.graph"`
	AudioChannels   int           `json:"audio.channels"`
	AudioPosition   []string      `json:"audio.position"`
	CaptureProps    CaptureProps  `json:"capture.props"`
	PlaybackProps   PlaybackProps `json:"playback.props"`
}

// Graph is the filter.graph section: nodes, their wiring and endpoints.
type Graph struct {
	Nodes   []plugin.Node `json:"nodes"`
	Links   []chain.Link  `json:"links"`
	Inputs  []string      `json:"inputs"`
	Outputs []string      `json:"outputs"`
}

// Options control session-level properties of the generated module.
type Options struct {
	// ChainName is the display name; node names derive from it.
	ChainName string

	// SmartTarget, when set, attaches the chain to this node automatically.
	SmartTarget string

	// Strict turns unknown plugin types into an error.
	Strict bool

	// OnUnknown is called for each unknown plugin when not Strict.
	OnUnknown func(e easyeffects.Entry)
}

// Build maps every plugin in the preset and assembles the module.
func Build(preset *easyeffects.Preset, opts Options) (*Document, error) {
	names := preset.NodeNames()

	topology, err := chain.Build(names)
	if err != nil {
		return nil, ee2pwerrors.NewStageError("build", preset.Path, err)
	}
	if err := checkUnique(names); err != nil {
		return nil, ee2pwerrors.NewStageError("build", preset.Path, err)
	}

	nodes := make([]plugin.Node, 0, len(preset.Order))
	for _, e := range preset.Order {
		node, known := plugin.Map(e.Key, preset.Params(e), e.NodeName())
		if !known {
			if opts.Strict {
				return nil, ee2pwerrors.NewStageError("build", e.Key, ee2pwerrors.ErrUnknownPlugin)
			}
			if opts.OnUnknown != nil {
				opts.OnUnknown(e)
			}
		}
		nodes = append(nodes, node)
	}

	chainName := opts.ChainName
	if chainName == "" {
		chainName = DefaultChainName
	}

	return &Document{
		ContextModules: []Module{{
			Name: ModuleName,
			Args: Args{
				NodeDescription: chainName,
				MediaName:       chainName,
				FilterGraph: Graph{
					Nodes:   nodes,
					Links:   topology.Links,
					Inputs:  topology.Inputs,
					Outputs: topology.Outputs,
				},
				AudioChannels: AudioChannels,
				AudioPosition: []string{"FL", "FR"},
				CaptureProps:  NewCaptureProps(chainName, opts.SmartTarget),
				PlaybackProps: NewPlaybackProps(chainName, opts.SmartTarget),
			},
		}},
	}, nil
}

// Graph returns the filter graph of the document's module.
func (d *Document) Graph() *Graph {
	if len(d.ContextModules) == 0 {
		return nil
	}
	return &d.ContextModules[0].Args.FilterGraph
}

// checkUnique rejects chains where two entries map to the same node name.
func checkUnique(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: %s", ee2pwerrors.ErrDuplicateNode, name)
		}
		seen[name] = true
	}
	return nil
}

// SnakeCase lowercases name and replaces spaces with underscores.
func SnakeCase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
