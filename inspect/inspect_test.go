package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-charts/dataset"
	"payments-charts/layout"
	"payments-charts/render"
)

func samplePlan(width float64) render.Plan {
	opts := render.Options{ShowLabels: true, ShowLegend: true}
	return render.New(opts, dataset.Segments(dataset.Sample())).Plan(layout.Viewport{Width: width, Height: 800})
}

func TestFromPlan(t *testing.T) {
	s := FromPlan(samplePlan(1280))

	assert.Equal(t, layout.Desktop, s.Profile.Breakpoint)
	assert.Equal(t, layout.SubtitleLong, s.Display.Subtitle)
	require.Len(t, s.Breakpoints, 4)
	active := 0
	for _, bp := range s.Breakpoints {
		if bp.Active {
			active++
			assert.Equal(t, "desktop", bp.Name)
			assert.Equal(t, float64(layout.DesktopWidth), bp.MinWidth)
		}
	}
	assert.Equal(t, 1, active)

	root := s.Components
	require.NotNil(t, root)
	require.Len(t, root.Children, 4)
	assert.Equal(t, []string{"Header", "Chart", "Legend", "Footer"},
		[]string{root.Children[0].Type, root.Children[1].Type, root.Children[2].Type, root.Children[3].Type})

	chart := root.Children[1]
	require.Len(t, chart.Children, 6)
	assert.Equal(t, 5, chart.State["visible_labels"])

	cheques := chart.Children[5]
	assert.Equal(t, "segment-5", cheques.ID)
	require.Len(t, cheques.Children, 1)
	assert.False(t, cheques.Children[0].Visible)

	card := chart.Children[0].Children[0]
	assert.True(t, card.Visible)
	assert.Equal(t, "start", card.State["text_anchor"])

	legend := root.Children[2]
	assert.True(t, legend.Visible)
	assert.Len(t, legend.Children, 6)
}

func TestSegmentNodeTruncation(t *testing.T) {
	s := FromPlan(samplePlan(360))
	label := s.Components.Children[1].Children[0].Children[0]

	require.NotNil(t, label.Truncated)
	assert.Equal(t, 13, label.Truncated.OriginalLength)
	assert.Equal(t, 9, label.Truncated.DisplayLength)
	assert.True(t, label.Truncated.Ellipsis)
	assert.Equal(t, "Card payments", label.Truncated.OriginalText)
}

func TestToText(t *testing.T) {
	text := FromPlan(samplePlan(1280)).WithTerminal(160, 40).ToText()

	assert.Contains(t, text, "=== Layout Snapshot ===")
	assert.Contains(t, text, "Terminal: 160x40")
	assert.Contains(t, text, "Viewport: 1280x800")
	assert.Contains(t, text, "Breakpoint: desktop")
	assert.Contains(t, text, "[X] desktop (min width: 1024)")
	assert.Contains(t, text, "[ ] mobile (min width: 480)")
	assert.Contains(t, text, `Segment [segment-0] "Card payments"`)
	assert.Contains(t, text, "HIDDEN")
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(FromPlan(samplePlan(600)))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	profile, ok := decoded["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mobile", profile["breakpoint"])
	assert.NotContains(t, decoded, "terminal")
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteSnapshotToPath(FromPlan(samplePlan(900)), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"breakpoint": "tablet"`)
}

func TestWriteSnapshotDisabled(t *testing.T) {
	if IsEnabled() {
		t.Skip("inspection enabled in environment")
	}
	assert.NoError(t, WriteSnapshot(NewSnapshot()))
	assert.Empty(t, GetInspectFile())
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00dfb8")).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#e2e8f0"))

	info := ExtractStyleInfo(style, "card")
	assert.True(t, info.Bold)
	assert.Equal(t, "#00dfb8", info.Foreground)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, "#e2e8f0", info.BorderColor)
	assert.Equal(t, []string{"card"}, info.AppliedStyles)

	plain := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Empty(t, plain.Border)
	assert.Nil(t, plain.Padding)
}
