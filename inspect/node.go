package inspect

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"payments-charts/pie"
)

// Node represents one placed element of the chart in the inspection tree.
type Node struct {
	// Type is the element type (e.g., "Chart", "Segment", "Label").
	Type string `json:"type"`

	// ID is an optional identifier for the element.
	ID string `json:"id,omitempty"`

	// Bounds contains the element position and size in pixels.
	Bounds Bounds `json:"bounds"`

	// Visible indicates if the element is drawn.
	Visible bool `json:"visible"`

	// State contains element-specific values.
	State map[string]interface{} `json:"state,omitempty"`

	// Styles contains styling information.
	Styles *StyleInfo `json:"styles,omitempty"`

	// Children contains child elements.
	Children []*Node `json:"children,omitempty"`

	// Content is the text content if applicable.
	Content string `json:"content,omitempty"`

	// Truncated contains truncation information if text was cut.
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds represents element position and dimensions.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StyleInfo contains styling information for a terminal element.
type StyleInfo struct {
	// Colors
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	// Text decorations
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	// Box model
	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	// Reference to named styles being used
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo contains information about text truncation.
type TruncationInfo struct {
	// OriginalLength is the display width before truncation.
	OriginalLength int `json:"original_length"`

	// DisplayLength is the display width after truncation.
	DisplayLength int `json:"display_length"`

	// Ellipsis indicates if an ellipsis was added.
	Ellipsis bool `json:"ellipsis"`

	// OriginalText is the full original text.
	OriginalText string `json:"original_text,omitempty"`
}

// NewNode creates a new Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height float64) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

// WithStyles sets the node styles and returns the node for chaining.
func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records that original was shortened to displayed.
func (n *Node) WithTruncation(original, displayed string, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		OriginalLength: runewidth.StringWidth(original),
		DisplayLength:  runewidth.StringWidth(displayed),
		Ellipsis:       hasEllipsis,
		OriginalText:   original,
	}
	return n
}

// SegmentNode describes one pie segment and its label.
func SegmentNode(l pie.Label) *Node {
	n := NewNode("Segment").
		WithID(fmt.Sprintf("segment-%d", l.Index)).
		WithContent(l.Segment.Name).
		WithState("value", l.Segment.Value).
		WithState("color", l.Segment.Color()).
		WithState("start_angle", l.StartAngle).
		WithState("end_angle", l.EndAngle)

	label := NewNode("Label").WithID(fmt.Sprintf("label-%d", l.Index))
	if l.Omitted {
		label.Visible = false
		n.AddChild(label)
		return n
	}

	g := l.Geometry
	label.WithBounds(g.Anchor.X, g.Anchor.Y, 0, 0).
		WithContent(g.NameText+" "+g.ValueText).
		WithState("mid_angle", g.MidAngle).
		WithState("percent", g.Percent).
		WithState("text_anchor", string(g.TextAnchor)).
		WithState("connector", g.Connector)
	if g.NameText != l.Segment.Name {
		label.WithTruncation(l.Segment.Name, g.NameText, true)
	}
	return n.AddChild(label)
}
