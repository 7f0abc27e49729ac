package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-charts/config"
	"payments-charts/dataset"
	"payments-charts/layout"
	"payments-charts/render"
	"payments-charts/testing/harness"
	"payments-charts/testing/snapshot"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newTestHome builds a preview over the sample data. The context is
// already cancelled so timed commands return at once.
func newTestHome(t *testing.T) *home {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := render.OptionsFromConfig(config.DefaultConfig())
	opts.Title = "Payment methods"
	opts.Notes = "Figures exclude refunds."
	return newHome(ctx, render.New(opts, dataset.Segments(dataset.Sample())))
}

func TestViewportFollowsTerminal(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		m := newTestHome(t)
		h := harness.New(t, m, size.Width, size.Height)

		wantWidth := float64(size.Width * CellWidth)
		assert.Equal(t, wantWidth, m.plan.Viewport.Width)
		assert.Equal(t, float64(size.Height*CellHeight), m.plan.Viewport.Height)
		assert.Equal(t, layout.ForWidth(wantWidth), m.plan.Profile.Breakpoint)

		out := h.View()
		snap := snapshot.New(t)
		snap.AssertContains(out, m.plan.Profile.Breakpoint.String())
		snap.AssertContains(out, "q quit")
		snap.AssertMaxWidth(out, size.Width)
	})
}

func TestResizeReresolves(t *testing.T) {
	m := newTestHome(t)
	h := harness.New(t, m, 80, 24)
	assert.Equal(t, layout.Mobile, m.plan.Profile.Breakpoint)
	assert.InDelta(t, 384*layout.MobileHeightRatio, m.plan.Profile.ChartHeight, 1e-9)

	h.Resize(200, 50)
	assert.Equal(t, layout.Desktop, m.plan.Profile.Breakpoint)
	assert.Equal(t, float64(layout.DefaultTargetHeight), m.plan.Profile.ChartHeight)
	snapshot.New(t).AssertContains(h.View(), layout.SubtitleLong)
}

func TestStepSimulatedWidth(t *testing.T) {
	m := newTestHome(t)
	h := harness.New(t, m, 80, 24)

	h.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, SimulatedWidths[layout.Tablet], m.plan.Viewport.Width)
	assert.Equal(t, layout.Tablet, m.plan.Profile.Breakpoint)
	snapshot.New(t).AssertContains(h.View(), "(simulated)")

	h.SendSpecialKey(tea.KeyRight)
	h.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, layout.Desktop, m.plan.Profile.Breakpoint)

	for i := 0; i < 5; i++ {
		h.SendSpecialKey(tea.KeyLeft)
	}
	assert.Equal(t, layout.SmallMobile, m.plan.Profile.Breakpoint)

	// The simulated width survives a resize until the user goes back.
	h.Resize(200, 50)
	assert.Equal(t, layout.SmallMobile, m.plan.Profile.Breakpoint)

	h.SendKey("0")
	assert.Equal(t, layout.Desktop, m.plan.Profile.Breakpoint)
	snapshot.New(t).AssertContains(h.View(), "(fits terminal)")
}

func TestToggles(t *testing.T) {
	m := newTestHome(t)
	h := harness.New(t, m, 160, 40)
	snap := snapshot.New(t)

	require.Zero(t, m.plan.Inner)
	h.SendKey("i")
	assert.Greater(t, m.plan.Inner, 0.0)
	h.SendKey("i")
	assert.Zero(t, m.plan.Inner)

	snap.AssertContains(h.View(), "label omitted")
	h.SendKey("l")
	assert.False(t, m.widget.Options.ShowLabels)
	snap.AssertNotContains(h.View(), "label omitted")
	h.SendKey("l")
	snap.AssertContains(h.View(), "label omitted")

	snap.AssertNotContains(h.View(), "Figures exclude refunds.")
	h.SendKey("n")
	snap.AssertContains(h.View(), "Figures exclude refunds.")
	h.SendKey("n")
	snap.AssertNotContains(h.View(), "Figures exclude refunds.")
}

func TestCopySVG(t *testing.T) {
	m := newTestHome(t)
	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	h := harness.New(t, m, 160, 40)

	h.RunCmd(h.SendKey("c"))
	assert.True(t, strings.HasPrefix(copied, "<?xml"))
	assert.Contains(t, copied, `data-breakpoint="desktop"`)
	snapshot.New(t).AssertContains(h.View(), "Copied SVG to clipboard")
}

func TestCopySVGFailure(t *testing.T) {
	m := newTestHome(t)
	m.writeClipboard = func(string) error {
		return errors.New("no clipboard utility")
	}
	h := harness.New(t, m, 160, 40)

	h.RunCmd(h.SendKey("c"))
	snapshot.New(t).AssertContains(h.View(), "failed to copy SVG: no clipboard utility")
}

func TestQuit(t *testing.T) {
	for _, send := range []func(h *harness.Harness) tea.Cmd{
		func(h *harness.Harness) tea.Cmd { return h.SendKey("q") },
		func(h *harness.Harness) tea.Cmd { return h.SendSpecialKey(tea.KeyCtrlC) },
	} {
		h := harness.New(t, newTestHome(t), 80, 24)
		cmd := send(h)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	m := newTestHome(t)
	h := harness.New(t, m, 80, 24)
	before := m.plan

	assert.Nil(t, h.SendKey("z"))
	assert.Equal(t, before.Viewport, m.plan.Viewport)
	assert.Equal(t, before.Profile, m.plan.Profile)
	assert.Equal(t, before.Labels, m.plan.Labels)
}

func TestMenuHighlightClears(t *testing.T) {
	m := newTestHome(t)
	h := harness.New(t, m, 120, 30)

	cmd := h.SendKey("i")
	require.NotNil(t, cmd)
	assert.IsType(t, keyupMsg{}, cmd())
}

func TestSnapshotDescribesPlan(t *testing.T) {
	m := newTestHome(t)
	harness.New(t, m, 160, 40)

	s := m.snapshot()
	require.NotNil(t, s.Terminal)
	assert.Equal(t, 160, s.Terminal.Width)
	assert.Equal(t, layout.Desktop, s.Profile.Breakpoint)
	assert.Contains(t, s.Styles, "card")
	assert.Equal(t, "rounded", s.Styles["card"].Border)
}
