package layout

import "math"

// Viewport is the host-reported drawing area in CSS pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Margins holds the chart margins on each side.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// LayoutProfile holds the resolved size and spacing constants for a viewport.
type LayoutProfile struct {
	Breakpoint Breakpoint `json:"breakpoint"`

	// Container and header
	ContainerPadding float64 `json:"container_padding"`
	TitleFontSize    float64 `json:"title_font_size"`
	SubtitleFontSize float64 `json:"subtitle_font_size"`
	LogoSize         float64 `json:"logo_size"`

	// Chart area
	ChartHeight           float64 `json:"chart_height"`
	ChartMargins          Margins `json:"chart_margins"`
	OuterRadiusMultiplier float64 `json:"outer_radius_multiplier"`

	// Segment labels
	LabelFontSize      float64     `json:"label_font_size"`
	LabelValueFontSize float64     `json:"label_value_font_size"`
	Labels             LabelPolicy `json:"labels"`
}

// Resolve computes the layout profile for a viewport. targetHeight is the
// chart height the host asked for; it is used unchanged at tablet and
// desktop widths. Resolve never fails: degenerate dimensions are clamped to
// zero and resolve to the small-mobile profile.
func Resolve(v Viewport, targetHeight float64) LayoutProfile {
	width := sanitize(v.Width)
	height := sanitize(v.Height)

	bp := ForWidth(width)
	p := profiles[bp]
	p.Breakpoint = bp
	p.Labels = labelPolicies[bp]

	switch bp {
	case SmallMobile:
		p.ChartHeight = math.Min(height*SmallMobileHeightRatio, SmallMobileHeightCap)
	case Mobile:
		p.ChartHeight = math.Min(height*MobileHeightRatio, MobileHeightCap)
	default:
		p.ChartHeight = targetHeight
	}
	return p
}

// ChartSize returns the square box the pie is drawn in for a viewport width.
func ChartSize(width float64) float64 {
	width = sanitize(width)
	if ForWidth(width).IsNarrow() {
		return math.Max(0, math.Min(width-ChartInsetNarrow, ChartSizeNarrowMax))
	}
	return math.Max(0, math.Min(ChartSizeWideMax, width-ChartInsetWide))
}

// Radii returns the inner and outer pie radius for a profile and viewport
// width. The inner radius is zero unless donut is set.
func Radii(p LayoutProfile, width float64, donut bool) (inner, outer float64) {
	size := ChartSize(width)
	outer = size * p.OuterRadiusMultiplier
	if donut {
		inner = size * InnerRadiusRatio
	}
	return inner, outer
}
