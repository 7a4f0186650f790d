package breadcrumb

import (
	"github.com/pkg/errors"
)

const (
	// CollapseThreshold is the trail length up to which the narrow and
	// wide plans are identical.
	CollapseThreshold = 2

	// DefaultHomeHref is the home anchor target when none is configured.
	DefaultHomeHref = "/"

	// DefaultHomeLabel is the home anchor label when none is configured.
	DefaultHomeLabel = "Home"

	// Ellipsis marks hidden intermediate items in the narrow plan.
	Ellipsis = "…"
)

// NodeKind discriminates the nodes of a render plan.
type NodeKind int

// Node kinds.
const (
	NodeHome NodeKind = iota + 1
	NodeLink
	NodeText
	NodeCurrent
	NodeEllipsis
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case NodeHome:
		return "home"
	case NodeLink:
		return "link"
	case NodeText:
		return "text"
	case NodeCurrent:
		return "current"
	case NodeEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind encoded by MarshalText.
func (k *NodeKind) UnmarshalText(text []byte) error {
	for kind := NodeHome; kind <= NodeEllipsis; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}

	return errors.Wrapf(ErrUnknownNodeKind, "%q", text)
}

// Node is one rendered element of a breadcrumb bar.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Label string   `json:"label,omitempty"`
	Href  string   `json:"href,omitempty"`
}

// Plan holds both render trees of a trail. The display environment picks
// which one is visible; nothing is recomputed on resize.
type Plan struct {
	Items  []Item `json:"items"`
	Wide   []Node `json:"wide"`
	Narrow []Node `json:"narrow"`
}

// Empty reports whether there is nothing to render.
func (p Plan) Empty() bool {
	return len(p.Items) == 0
}

// Collapsed reports whether the narrow plan elides intermediate items.
func (p Plan) Collapsed() bool {
	return len(p.Items) > CollapseThreshold
}

// NewPlan builds the render plan of items. Trails longer than
// CollapseThreshold get a leading home anchor; their narrow plan shows only
// home, an ellipsis and the final two items.
func NewPlan(items []Item, homeHref, homeLabel string) Plan {
	p := Plan{
		Items:  items,
		Wide:   []Node{},
		Narrow: []Node{},
	}

	if len(items) == 0 {
		return p
	}

	if homeHref == "" {
		homeHref = DefaultHomeHref
	}

	if homeLabel == "" {
		homeLabel = DefaultHomeLabel
	}

	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, nodeFor(item))
	}

	if len(items) <= CollapseThreshold {
		p.Wide = nodes
		p.Narrow = append([]Node(nil), nodes...)

		return p
	}

	home := Node{Kind: NodeHome, Label: homeLabel, Href: homeHref}

	p.Wide = append([]Node{home}, nodes...)
	p.Narrow = append([]Node{home, {Kind: NodeEllipsis, Label: Ellipsis}}, nodes[len(nodes)-CollapseThreshold:]...)

	return p
}

func nodeFor(item Item) Node {
	switch {
	case item.IsCurrent:
		return Node{Kind: NodeCurrent, Label: item.Label}
	case item.Href != "":
		return Node{Kind: NodeLink, Label: item.Label, Href: item.Href}
	default:
		return Node{Kind: NodeText, Label: item.Label}
	}
}
