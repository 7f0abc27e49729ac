package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"payments-charts/dataset"
	"payments-charts/layout"
	"payments-charts/render"
	"payments-charts/testing/snapshot"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func planFor(width float64, opts render.Options, segments []dataset.Segment) render.Plan {
	return render.New(opts, segments).Plan(layout.Viewport{Width: width, Height: 800})
}

func TestChartPaneDesktop(t *testing.T) {
	opts := render.Options{Title: "Payments by method", ShowLabels: true}
	pane := NewChartPane()
	pane.SetSize(120, 40)
	pane.SetPlan(planFor(1280, opts, dataset.Segments(dataset.Sample())), opts, false)

	out := pane.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "Payments by method")
	snap.AssertContains(out, "desktop")
	snap.AssertContains(out, layout.SubtitleLong)
	snap.AssertContains(out, "viewport 1280×800 px (fits terminal)")
	snap.AssertContains(out, "chart height 400")
	snap.AssertContains(out, "names 12 cols")
	snap.AssertContains(out, "Card payments")
	snap.AssertContains(out, "145,000")
	snap.AssertContains(out, "41.4%")
	snap.AssertContains(out, "145.0K")
	snap.AssertCount(out, "label omitted", 1)
	snap.AssertMaxWidth(out, 120)
}

func TestChartPaneNarrowPlan(t *testing.T) {
	opts := render.Options{ShowLabels: true}
	pane := NewChartPane()
	pane.SetSize(100, 40)
	pane.SetPlan(planFor(360, opts, dataset.Segments(dataset.Sample())), opts, true)

	out := pane.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "small-mobile")
	snap.AssertContains(out, layout.SubtitleShort)
	snap.AssertContains(out, "(simulated)")
	snap.AssertContains(out, "Card p...")
	snap.AssertContains(out, "145K")
	// Cash and Cheques fall under the 5 percent threshold.
	snap.AssertCount(out, "label omitted", 2)
}

func TestChartPaneLabelsOff(t *testing.T) {
	opts := render.Options{}
	pane := NewChartPane()
	pane.SetSize(120, 40)
	pane.SetPlan(planFor(1280, opts, dataset.Segments(dataset.Sample())), opts, false)

	out := pane.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "Cheques")
	snap.AssertNotContains(out, "→")
	snap.AssertNotContains(out, "label omitted")
}

func TestChartPaneNotes(t *testing.T) {
	opts := render.Options{Notes: "Figures exclude refunds and chargebacks."}
	pane := NewChartPane()
	pane.SetSize(120, 40)
	pane.SetPlan(planFor(1280, opts, dataset.Segments(dataset.Sample())), opts, false)

	snap := snapshot.New(t)
	snap.AssertNotContains(pane.String(), "Figures exclude")

	pane.SetShowNotes(true)
	assert.True(t, pane.ShowingNotes())
	out := pane.String()
	snap.AssertContains(out, "ⓘ Notes")
	snap.AssertContains(out, "Figures exclude refunds")
}

func TestChartPaneNoData(t *testing.T) {
	pane := NewChartPane()
	pane.SetSize(80, 20)
	pane.SetPlan(planFor(800, render.Options{}, nil), render.Options{}, false)

	snapshot.New(t).AssertContains(pane.String(), "no data")
}

func TestChartPaneFitsWidth(t *testing.T) {
	opts := render.Options{
		Title:      "Payment methods by transaction volume, United Kingdom",
		Notes:      strings.Repeat("Source figures are rounded. ", 10),
		ShowLabels: true,
	}
	plan := planFor(1280, opts, dataset.Segments(dataset.Sample()))

	for _, width := range []int{20, 40, 80, 120, 200} {
		pane := NewChartPane()
		pane.SetSize(width, 30)
		pane.SetShowNotes(true)
		pane.SetPlan(plan, opts, false)

		out := pane.String()
		assert.Equal(t, width, snapshot.Width(out), "width %d", width)
	}
}

func TestChartPaneZeroWidth(t *testing.T) {
	assert.Empty(t, NewChartPane().String())
}

func TestMenu(t *testing.T) {
	menu := NewMenu()
	menu.SetSize(200, 1)

	out := menu.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "q quit")
	snap.AssertContains(out, "← narrower")
	snap.AssertContains(out, "i donut")
	snap.AssertContains(out, "c copy svg")
	snap.AssertMaxWidth(out, 200)

	menu.SetSize(30, 1)
	snap.AssertMaxWidth(menu.String(), 30)
}

func TestErrBox(t *testing.T) {
	box := NewErrBox()
	box.SetSize(60, 1)
	snap := snapshot.New(t)

	box.SetError(errors.New("failed to copy SVG: no clipboard"))
	snap.AssertContains(box.String(), "failed to copy SVG")

	box.SetInfo("Copied SVG to clipboard")
	snap.AssertContains(box.String(), "Copied SVG")
	snap.AssertNotContains(box.String(), "failed")

	box.Clear()
	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(box.String())))
}
