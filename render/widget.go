// Package render draws the branded pie chart widget as SVG.
package render

import (
	"math"

	"github.com/mattn/go-runewidth"

	"payments-charts/config"
	"payments-charts/dataset"
	"payments-charts/layout"
	"payments-charts/pie"
)

// Options are the host's display toggles and texts.
type Options struct {
	Title        string
	Notes        string
	SourceText   string
	SourceURL    string
	Credit       string
	LogoURL      string
	TargetHeight float64

	ShowLogo        bool
	ShowLabels      bool
	ShowLegend      bool
	ShowInnerRadius bool
	GroupedValues   bool
}

// OptionsFromConfig builds widget options from the saved defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SourceText:      cfg.SourceText,
		SourceURL:       cfg.SourceURL,
		Credit:          config.DefaultCredit,
		LogoURL:         cfg.LogoURL,
		TargetHeight:    cfg.TargetHeight,
		ShowLogo:        cfg.ShowLogo,
		ShowLabels:      cfg.ShowLabels,
		ShowLegend:      cfg.ShowLegend,
		ShowInnerRadius: cfg.ShowInnerRadius,
		GroupedValues:   cfg.GroupedValues,
	}
}

// Widget is a pie chart bound to its data and options.
type Widget struct {
	Options  Options
	Segments []dataset.Segment
}

// New returns a widget for segments.
func New(opts Options, segments []dataset.Segment) *Widget {
	return &Widget{Options: opts, Segments: segments}
}

// Sizing constants shared by the planner and the SVG writer.
const (
	// LogoAspect is the logo width divided by its height.
	LogoAspect = 3.2

	// PaddingAngle separates neighbouring slices, in degrees.
	PaddingAngle = 1.0

	legendSwatch    = 10
	legendGap       = 6
	legendItemGap   = 16
	legendRowHeight = 20
	legendTopGap    = 16
	footerLineGap   = 6

	// charWidthRatio estimates average glyph width relative to font size.
	charWidthRatio = 0.6
)

// LegendItem is one placed legend entry.
type LegendItem struct {
	Segment dataset.Segment
	Text    string
	X, Y    float64
}

// Plan is the fully resolved layout of one render.
type Plan struct {
	Viewport layout.Viewport
	Profile  layout.LayoutProfile
	Display  layout.Display

	Width  float64
	Height float64

	HeaderHeight float64
	ChartTop     float64
	LegendTop    float64
	FooterTop    float64

	Center pie.Point
	Inner  float64
	Outer  float64
	Labels []pie.Label
	Legend []LegendItem

	// ValueText formats values in labels.
	ValueText func(float64) string
}

// Plan resolves the layout for a viewport and places every part of the
// widget. It does no I/O.
func (w *Widget) Plan(v layout.Viewport) Plan {
	target := w.Options.TargetHeight
	if !(target > 0) {
		target = layout.DefaultTargetHeight
	}

	profile := layout.Resolve(v, target)
	display := layout.ComputeDisplay(profile)
	width := math.Max(1, math.Round(math.Max(0, v.Width)))
	pad := profile.ContainerPadding

	p := Plan{
		Viewport:  v,
		Profile:   profile,
		Display:   display,
		Width:     width,
		ValueText: pie.ValueFormatter(profile, w.Options.GroupedValues),
	}

	p.HeaderHeight = pad + profile.TitleFontSize + 2 + profile.SubtitleFontSize + pad/2
	if w.Options.ShowLogo {
		p.HeaderHeight = math.Max(p.HeaderHeight, pad+profile.LogoSize+pad/2)
	}

	p.ChartTop = p.HeaderHeight + pad
	chartHeight := math.Max(0, profile.ChartHeight)
	p.Inner, p.Outer = layout.Radii(profile, width, w.Options.ShowInnerRadius)
	p.Center = pie.Point{
		X: width / 2,
		Y: p.ChartTop + profile.ChartMargins.Top + (chartHeight-profile.ChartMargins.Top-profile.ChartMargins.Bottom)/2,
	}
	p.Labels = pie.Layout(w.Segments, p.Center, p.Inner, p.Outer, profile)

	p.LegendTop = p.ChartTop + chartHeight
	legendBottom := p.LegendTop
	if w.Options.ShowLegend && len(w.Segments) > 0 {
		p.Legend, legendBottom = placeLegend(w.Segments, p.LegendTop+legendTopGap, width, pad, display.StackLegend)
	}

	p.FooterTop = legendBottom + pad
	footerFont := display.FooterFontSize()
	footerLines := 1.0
	if display.StackFooter {
		footerLines = 2
		if w.Options.Notes != "" {
			footerLines = 3
		}
	}
	p.Height = p.FooterTop + pad/2 + footerLines*(footerFont+footerLineGap) + pad
	return p
}

// placeLegend lays legend entries out left to right, wrapping at the
// container edge, or one per row when stacked.
func placeLegend(segments []dataset.Segment, top, width, pad float64, stacked bool) ([]LegendItem, float64) {
	items := make([]LegendItem, 0, len(segments))
	x, y := pad, top
	for _, seg := range segments {
		text := seg.Name + ": " + pie.FormatGrouped(seg.Value)
		itemWidth := legendSwatch + legendGap + TextWidth(text, legendFontSize(stacked))

		if stacked {
			if len(items) > 0 {
				y += legendRowHeight
			}
			x = pad
		} else if x > pad && x+itemWidth > width-pad {
			x = pad
			y += legendRowHeight
		}

		items = append(items, LegendItem{Segment: seg, Text: text, X: x, Y: y})
		if !stacked {
			x += itemWidth + legendItemGap
		}
	}
	return items, y + legendRowHeight
}

func legendFontSize(stacked bool) float64 {
	if stacked {
		return 11
	}
	return 13
}

// TextWidth estimates the rendered width of text at a font size.
func TextWidth(text string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(text)) * fontSize * charWidthRatio
}
