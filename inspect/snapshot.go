package inspect

import (
	"fmt"
	"strings"
	"time"

	"payments-charts/layout"
	"payments-charts/pie"
	"payments-charts/render"
)

// Snapshot represents a resolved chart layout at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions when taken from the preview.
	Terminal *TerminalInfo `json:"terminal,omitempty"`

	// Viewport is the pixel viewport the layout was resolved for.
	Viewport layout.Viewport `json:"viewport"`

	// Profile is the resolved layout profile.
	Profile layout.LayoutProfile `json:"profile"`

	// Display contains the presentation switches.
	Display DisplayInfo `json:"display"`

	// Breakpoints lists every band and marks the active one.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Components is the root of the chart element tree.
	Components *Node `json:"components"`

	// Styles holds the terminal styles in use, keyed by name.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions in cells.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DisplayInfo contains the presentation switches of a layout.
type DisplayInfo struct {
	StackLegend   bool   `json:"stack_legend"`
	StackFooter   bool   `json:"stack_footer"`
	ShortSubtitle bool   `json:"short_subtitle"`
	CompactModal  bool   `json:"compact_modal"`
	Subtitle      string `json:"subtitle"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// MinWidth is the inclusive lower width bound.
	MinWidth float64 `json:"min_width"`

	// Active indicates if this breakpoint is currently selected.
	Active bool `json:"active"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// FromPlan builds a snapshot from a planned widget.
func FromPlan(p render.Plan) *Snapshot {
	return NewSnapshot().WithLayout(p.Viewport, p.Profile).WithComponents(PlanTree(p))
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = &TerminalInfo{Width: width, Height: height}
	return s
}

// WithLayout sets the viewport, profile and breakpoint table.
func (s *Snapshot) WithLayout(v layout.Viewport, p layout.LayoutProfile) *Snapshot {
	d := layout.ComputeDisplay(p)
	s.Viewport = v
	s.Profile = p
	s.Display = DisplayInfo{
		StackLegend:   d.StackLegend,
		StackFooter:   d.StackFooter,
		ShortSubtitle: d.ShortSubtitle,
		CompactModal:  d.CompactModal,
		Subtitle:      d.Subtitle(),
	}

	s.Breakpoints = make([]BreakpointInfo, 0, len(layout.Breakpoints))
	for _, bp := range layout.Breakpoints {
		s.Breakpoints = append(s.Breakpoints, BreakpointInfo{
			Name:     bp.String(),
			MinWidth: bp.LowerBound(),
			Active:   bp == p.Breakpoint,
		})
	}
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithStyle records a named terminal style.
func (s *Snapshot) WithStyle(name string, info *StyleInfo) *Snapshot {
	if s.Styles == nil {
		s.Styles = make(map[string]*StyleInfo)
	}
	s.Styles[name] = info
	return s
}

// PlanTree builds the element tree of a planned widget.
func PlanTree(p render.Plan) *Node {
	root := NewNode("Widget").
		WithBounds(0, 0, p.Width, p.Height).
		WithState("breakpoint", p.Profile.Breakpoint.String())

	root.AddChild(NewNode("Header").WithBounds(0, 0, p.Width, p.HeaderHeight))

	chart := NewNode("Chart").
		WithBounds(p.Center.X-p.Outer, p.Center.Y-p.Outer, 2*p.Outer, 2*p.Outer).
		WithState("inner_radius", p.Inner).
		WithState("outer_radius", p.Outer).
		WithState("visible_labels", len(pie.Visible(p.Labels)))
	for _, l := range p.Labels {
		chart.AddChild(SegmentNode(l))
	}
	root.AddChild(chart)

	legend := NewNode("Legend").WithBounds(0, p.LegendTop, p.Width, p.FooterTop-p.LegendTop)
	legend.Visible = len(p.Legend) > 0
	legend.WithState("stacked", p.Display.StackLegend)
	for i, item := range p.Legend {
		legend.AddChild(NewNode("LegendItem").
			WithID(fmt.Sprintf("legend-%d", i)).
			WithBounds(item.X, item.Y, 0, 0).
			WithContent(item.Text))
	}
	root.AddChild(legend)

	root.AddChild(NewNode("Footer").WithBounds(0, p.FooterTop, p.Width, p.Height-p.FooterTop))
	return root
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Layout Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	if s.Terminal != nil {
		b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	}
	b.WriteString(fmt.Sprintf("Viewport: %gx%g\n", s.Viewport.Width, s.Viewport.Height))

	p := s.Profile
	b.WriteString("\n--- Profile ---\n")
	b.WriteString(fmt.Sprintf("Breakpoint: %s\n", p.Breakpoint))
	b.WriteString(fmt.Sprintf("Padding: %g\n", p.ContainerPadding))
	b.WriteString(fmt.Sprintf("Fonts: title %g, subtitle %g, label %g, value %g\n",
		p.TitleFontSize, p.SubtitleFontSize, p.LabelFontSize, p.LabelValueFontSize))
	b.WriteString(fmt.Sprintf("Logo: %g\n", p.LogoSize))
	b.WriteString(fmt.Sprintf("Chart height: %g\n", p.ChartHeight))
	b.WriteString(fmt.Sprintf("Margins: %g %g %g %g\n",
		p.ChartMargins.Top, p.ChartMargins.Right, p.ChartMargins.Bottom, p.ChartMargins.Left))
	b.WriteString(fmt.Sprintf("Outer radius multiplier: %g\n", p.OuterRadiusMultiplier))
	b.WriteString(fmt.Sprintf("Labels: min %g%%, distance %g, name budget %d\n",
		p.Labels.MinPercent*100, p.Labels.LabelDistance, p.Labels.NameBudget))
	b.WriteString(fmt.Sprintf("Subtitle: %s\n", s.Display.Subtitle))

	b.WriteString("\n--- Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (min width: %g)\n", status, bp.Name, bp.MinWidth))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	if node.Content != "" {
		b.WriteString(fmt.Sprintf(" %q", node.Content))
	}
	b.WriteString(fmt.Sprintf(" @(%.1f,%.1f)", node.Bounds.X, node.Bounds.Y))
	if !node.Visible {
		b.WriteString(" HIDDEN")
	}

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
