package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"payments-charts/dataset"
	"payments-charts/pie"
	"payments-charts/render"
)

// ChartPane shows what the widget resolved to for the current viewport:
// the active breakpoint, the profile constants and each segment's label.
type ChartPane struct {
	width, height int

	plan      render.Plan
	opts      render.Options
	simulated bool
	showNotes bool
}

func NewChartPane() *ChartPane {
	return &ChartPane{}
}

// SetSize sets the outer size of the pane in cells.
func (c *ChartPane) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetPlan replaces the plan being shown. simulated reports whether the
// viewport width was chosen by the user rather than the terminal.
func (c *ChartPane) SetPlan(p render.Plan, opts render.Options, simulated bool) {
	c.plan = p
	c.opts = opts
	c.simulated = simulated
}

func (c *ChartPane) SetShowNotes(show bool) {
	c.showNotes = show
}

func (c *ChartPane) ShowingNotes() bool {
	return c.showNotes
}

func (c *ChartPane) String() string {
	if c.width <= 0 {
		return ""
	}
	inner := c.width - 4 // border and horizontal padding
	if inner < 1 {
		inner = 1
	}

	p := c.plan.Profile
	title := c.opts.Title
	if title == "" {
		title = "Payments"
	}
	mode := "fits terminal"
	if c.simulated {
		mode = "simulated"
	}

	lines := []string{
		TextStyles.Title.Render(title) + " " + BreakpointBadge(p.Breakpoint),
		TextStyles.Muted.Render(c.plan.Display.Subtitle()),
		TextStyles.Muted.Render(fmt.Sprintf("viewport %s×%s px (%s)",
			num(c.plan.Viewport.Width), num(c.plan.Viewport.Height), mode)),
		"",
		fmt.Sprintf("padding %s · title %s/%s · logo %s",
			num(p.ContainerPadding), num(p.TitleFontSize), num(p.SubtitleFontSize), num(p.LogoSize)),
		fmt.Sprintf("chart height %s · outer radius %s · inner radius %s",
			num(p.ChartHeight), num(c.plan.Outer), num(c.plan.Inner)),
		fmt.Sprintf("labels from %s%% · distance %s · names %d cols",
			num(p.Labels.MinPercent*100), num(p.Labels.LabelDistance), p.Labels.NameBudget),
		"",
	}

	if len(c.plan.Labels) == 0 {
		lines = append(lines, TextStyles.Muted.Render("no data"))
	}
	nameWidth := 0
	segments := make([]dataset.Segment, 0, len(c.plan.Labels))
	for _, l := range c.plan.Labels {
		segments = append(segments, l.Segment)
		nameWidth = max(nameWidth, runewidth.StringWidth(l.Segment.Name))
	}
	total := dataset.Total(segments)
	for _, l := range c.plan.Labels {
		lines = append(lines, c.segmentLine(l, total, nameWidth))
	}

	if c.showNotes {
		lines = append(lines, "", TextStyles.Title.Render("ⓘ Notes"))
		if c.opts.Notes == "" {
			lines = append(lines, TextStyles.Muted.Render("no notes"))
		} else {
			lines = append(lines, strings.Split(wordwrap.String(c.opts.Notes, inner), "\n")...)
		}
	}

	for i := range lines {
		lines[i] = truncate.StringWithTail(lines[i], uint(inner), "…")
	}

	return CardStyle().Width(c.width - 2).Render(strings.Join(lines, "\n"))
}

func (c *ChartPane) segmentLine(l pie.Label, total float64, nameWidth int) string {
	share := 0.0
	if total > 0 {
		share = l.Segment.Value / total * 100
	}

	var b strings.Builder
	b.WriteString(SwatchStyle(l.Segment.Color()).Render("■"))
	b.WriteString(" ")
	b.WriteString(TextStyles.Primary.Render(runewidth.FillRight(l.Segment.Name, nameWidth)))
	b.WriteString(fmt.Sprintf(" %s %5.1f%%", pie.FormatGrouped(l.Segment.Value), share))

	if !c.opts.ShowLabels {
		return b.String()
	}
	if l.Omitted {
		b.WriteString(" ")
		b.WriteString(TextStyles.Warning.Render("label omitted"))
		return b.String()
	}
	g := l.Geometry
	b.WriteString(TextStyles.Muted.Render(fmt.Sprintf(" → %s %s @ %s,%s %s",
		g.NameText, g.ValueText, num(g.Anchor.X), num(g.Anchor.Y), g.TextAnchor)))
	return b.String()
}

// num formats a pixel value with at most one decimal.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
