package dataset

// Brand colours
const (
	ColorPrimary    = "#00dfb8"
	ColorSecondary  = "#00573B"
	ColorTertiary   = "#00C29D"
	ColorQuaternary = "#007152"
	ColorQuinary    = "#00A783"

	ColorBackground      = "#ffffff"
	ColorCard            = "#fdfffe"
	ColorCardTint        = "#f9fffe"
	ColorBorder          = "#e2e8f0"
	ColorForeground      = "#0f172a"
	ColorMuted           = "#f8fafc"
	ColorMutedForeground = "#64748b"
)

// Palette is the slice colour cycle. Segment i uses Palette[i%len(Palette)].
var Palette = []string{
	ColorPrimary,
	ColorSecondary,
	ColorTertiary,
	ColorQuaternary,
	ColorQuinary,
	"#38bdf8", // sky
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#10b981", // emerald
	"#f97316", // orange
	"#ec4899", // pink
}

// Color returns the palette colour for a segment.
func (s Segment) Color() string {
	i := s.ColorIndex % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}
