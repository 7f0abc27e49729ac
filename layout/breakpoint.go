// Package layout resolves viewport dimensions into the sizing constants used
// to draw a pie chart widget.
package layout

import "math"

// Breakpoint is a named viewport-width band.
type Breakpoint int

const (
	// SmallMobile is for widths below 480.
	SmallMobile Breakpoint = iota

	// Mobile is for widths in [480, 768).
	Mobile

	// Tablet is for widths in [768, 1024).
	Tablet

	// Desktop is for widths of 1024 and above.
	Desktop
)

// Breakpoints lists every band in ascending width order.
var Breakpoints = []Breakpoint{SmallMobile, Mobile, Tablet, Desktop}

// String returns the string representation of the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case SmallMobile:
		return "small-mobile"
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// MarshalText lets breakpoints serialise by name.
func (b Breakpoint) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// IsNarrow reports whether the band is below tablet.
func (b Breakpoint) IsNarrow() bool {
	return b < Tablet
}

// LowerBound returns the smallest width that belongs to the band.
func (b Breakpoint) LowerBound() float64 {
	switch b {
	case Mobile:
		return MobileWidth
	case Tablet:
		return TabletWidth
	case Desktop:
		return DesktopWidth
	default:
		return 0
	}
}

// ForWidth returns the band containing width. NaN and negative widths fall
// into small-mobile.
func ForWidth(width float64) Breakpoint {
	width = sanitize(width)
	switch {
	case width >= DesktopWidth:
		return Desktop
	case width >= TabletWidth:
		return Tablet
	case width >= MobileWidth:
		return Mobile
	default:
		return SmallMobile
	}
}

// sanitize maps NaN and negative dimensions to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
