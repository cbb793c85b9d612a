// Package chain wires an ordered list of stereo nodes into a filter graph.
package chain

import (
	"fmt"

	ee2pwerrors "github.com/linuxmatters/ee2pw/internal/errors"
)

// Channel port tags exposed by every stereo node
const (
	PortInLeft   = "in_l"
	PortInRight  = "in_r"
	PortOutLeft  = "out_l"
	PortOutRight = "out_r"
)

// Link connects an output port of one node to an input port of the next.
type Link struct {
	Output string `json:"output"`
	Input  string `json:"input"`
}

// Topology is the wiring of a chain: internal links plus the external
// endpoints the filter-chain module exposes.
type Topology struct {
	Links   []Link
	Inputs  []string
	Outputs []string
}

// Port formats a "<node>:<channel>" port reference.
func Port(node, channel string) string {
	return fmt.Sprintf("%s:%s", node, channel)
}

// Build derives the full topology for names in chain order.
// An empty chain has no endpoints and is an error.
func Build(names []string) (Topology, error) {
	if len(names) == 0 {
		return Topology{}, ee2pwerrors.ErrEmptyChain
	}
	return Topology{
		Links:   Links(names),
		Inputs:  Inputs(names),
		Outputs: Outputs(names),
	}, nil
}

// Links connects each adjacent pair of nodes. All left-channel links come
// first, followed by all right-channel links, each in chain order.
func Links(names []string) []Link {
	if len(names) < 2 {
		return []Link{}
	}

	links := make([]Link, 0, 2*(len(names)-1))
	for _, ch := range [][2]string{{PortOutLeft, PortInLeft}, {PortOutRight, PortInRight}} {
		for i := 0; i+1 < len(names); i++ {
			links = append(links, Link{
				Output: Port(names[i], ch[0]),
				Input:  Port(names[i+1], ch[1]),
			})
		}
	}
	return links
}

// Inputs returns the stereo inputs of the first node.
func Inputs(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	return []string{Port(names[0], PortInLeft), Port(names[0], PortInRight)}
}

// Outputs returns the stereo outputs of the last node.
func Outputs(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	last := names[len(names)-1]
	return []string{Port(last, PortOutLeft), Port(last, PortOutRight)}
}
