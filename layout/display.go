package layout

// Display holds presentation switches derived from a profile. Hosts read
// these instead of re-testing breakpoints themselves.
type Display struct {
	StackLegend   bool // Legend goes below the pie instead of beside it
	StackFooter   bool // Source text and chart credit on separate lines
	ShortSubtitle bool
	CompactModal  bool // Notes modal fills the width with tighter padding
}

// Subtitle texts
const (
	SubtitleLong  = "Payment transaction distribution"
	SubtitleShort = "Payment distribution"
)

// Footer and modal sizing
const (
	FooterFontSizeNarrow = 10
	FooterFontSizeWide   = 12
	ModalPaddingNarrow   = 16
	ModalPaddingWide     = 24
	ModalMaxWidth        = 500
)

// ComputeDisplay derives the presentation switches for a profile.
func ComputeDisplay(p LayoutProfile) Display {
	narrow := p.Breakpoint.IsNarrow()
	return Display{
		StackLegend:   narrow,
		StackFooter:   narrow,
		ShortSubtitle: narrow,
		CompactModal:  narrow,
	}
}

// Subtitle returns the subtitle text for the display.
func (d Display) Subtitle() string {
	if d.ShortSubtitle {
		return SubtitleShort
	}
	return SubtitleLong
}

// FooterFontSize returns the footer text size.
func (d Display) FooterFontSize() float64 {
	if d.StackFooter {
		return FooterFontSizeNarrow
	}
	return FooterFontSizeWide
}

// ModalPadding returns the notes modal padding.
func (d Display) ModalPadding() float64 {
	if d.CompactModal {
		return ModalPaddingNarrow
	}
	return ModalPaddingWide
}
