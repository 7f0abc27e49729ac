package layout

// Width breakpoints. Band membership is lo <= width < hi.
const (
	// MobileWidth is the lower bound of the mobile band.
	MobileWidth = 480

	// TabletWidth is the lower bound of the tablet band.
	TabletWidth = 768

	// DesktopWidth is the lower bound of the desktop band.
	DesktopWidth = 1024
)

// Chart height rules for the narrow bands. Tablet and desktop use the
// caller's target height as-is.
const (
	SmallMobileHeightRatio = 0.5
	SmallMobileHeightCap   = 350

	MobileHeightRatio = 0.6
	MobileHeightCap   = 400
)

// Radius rules
const (
	// ChartInsetNarrow is subtracted from the viewport width below tablet.
	ChartInsetNarrow = 80

	// ChartInsetWide is subtracted from the viewport width at tablet and up.
	ChartInsetWide = 100

	// ChartSizeNarrowMax caps the chart box below tablet.
	ChartSizeNarrowMax = 300

	// ChartSizeWideMax caps the chart box at tablet and up.
	ChartSizeWideMax = 400

	// InnerRadiusRatio is the donut hole as a share of the chart box.
	InnerRadiusRatio = 0.15
)

// DefaultTargetHeight is the chart height used when the host gives none.
const DefaultTargetHeight = 400

// LabelPolicy controls per-segment label density for a breakpoint.
type LabelPolicy struct {
	// MinPercent is the share of the total below which a segment gets no label.
	MinPercent float64 `json:"min_percent"`

	// LabelDistance is how far outside the outer radius the label sits.
	LabelDistance float64 `json:"label_distance"`

	// NameBudget is the display width a category name may use before "...".
	NameBudget int `json:"name_budget"`

	// ThousandsDecimals is the number of decimals kept in "K" values.
	ThousandsDecimals int `json:"thousands_decimals"`
}

var labelPolicies = [...]LabelPolicy{
	SmallMobile: {MinPercent: 0.05, LabelDistance: 25, NameBudget: 6, ThousandsDecimals: 0},
	Mobile:      {MinPercent: 0.03, LabelDistance: 30, NameBudget: 8, ThousandsDecimals: 1},
	Tablet:      {MinPercent: 0.02, LabelDistance: 35, NameBudget: 12, ThousandsDecimals: 1},
	Desktop:     {MinPercent: 0.02, LabelDistance: 35, NameBudget: 12, ThousandsDecimals: 1},
}

// PolicyFor returns the label policy of a breakpoint. Unknown values get the
// small-mobile policy.
func PolicyFor(bp Breakpoint) LabelPolicy {
	if bp < SmallMobile || bp > Desktop {
		return labelPolicies[SmallMobile]
	}
	return labelPolicies[bp]
}

// profiles holds the literal constants of each band. ChartHeight and
// Breakpoint are filled in by Resolve.
var profiles = [...]LayoutProfile{
	SmallMobile: {
		ContainerPadding:      12,
		TitleFontSize:         14,
		SubtitleFontSize:      11,
		LogoSize:              24,
		ChartMargins:          Margins{Top: 8, Right: 8, Bottom: 8, Left: 8},
		OuterRadiusMultiplier: 0.30,
		LabelFontSize:         9,
		LabelValueFontSize:    8,
	},
	Mobile: {
		ContainerPadding:      16,
		TitleFontSize:         16,
		SubtitleFontSize:      12,
		LogoSize:              30,
		ChartMargins:          Margins{Top: 12, Right: 12, Bottom: 12, Left: 12},
		OuterRadiusMultiplier: 0.32,
		LabelFontSize:         10,
		LabelValueFontSize:    9,
	},
	Tablet: {
		ContainerPadding:      24,
		TitleFontSize:         18,
		SubtitleFontSize:      14,
		LogoSize:              40,
		ChartMargins:          Margins{Top: 20, Right: 30, Bottom: 20, Left: 30},
		OuterRadiusMultiplier: 0.35,
		LabelFontSize:         12,
		LabelValueFontSize:    11,
	},
	Desktop: {
		ContainerPadding:      24,
		TitleFontSize:         18,
		SubtitleFontSize:      14,
		LogoSize:              40,
		ChartMargins:          Margins{Top: 20, Right: 30, Bottom: 20, Left: 30},
		OuterRadiusMultiplier: 0.35,
		LabelFontSize:         12,
		LabelValueFontSize:    12,
	},
}
