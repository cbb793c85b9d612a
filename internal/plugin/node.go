package plugin

import "sort"

// Node is one mapped plugin in the filter graph.
//
// A node for an unknown plugin type carries only its name; the empty
// fields are omitted when encoded.
type Node struct {
	Kind    Kind               `json:"-"`
	Type    string             `json:"type,omitempty"`
	Name    string             `json:"name"`
	Plugin  string             `json:"plugin,omitempty"`
	Control map[string]float64 `json:"control,omitempty"`
}

// Known reports whether the node was produced by a registered schema.
func (n Node) Known() bool {
	return n.Kind != KindUnknown
}

// ControlNames returns the node's control names in sorted order.
func (n Node) ControlNames() []string {
	names := make([]string, 0, len(n.Control))
	for name := range n.Control {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
