package app

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"payments-charts/inspect"
	"payments-charts/keys"
	"payments-charts/layout"
	"payments-charts/log"
	"payments-charts/render"
	"payments-charts/ui"
)

// Terminal cells are mapped to pixels at this size when the preview
// follows the terminal.
const (
	CellWidth  = 8
	CellHeight = 16
)

// SimulatedWidths are the viewport widths the preview steps through, one
// per breakpoint in ascending order.
var SimulatedWidths = []float64{360, 600, 900, 1280}

// Run is the main entrypoint into the preview.
func Run(ctx context.Context, widget *render.Widget) error {
	p := tea.NewProgram(
		newHome(ctx, widget),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	widget *render.Widget

	// width and height are the terminal size in cells
	width, height int
	// simulated indexes SimulatedWidths; -1 follows the terminal
	simulated int
	// plan is the layout for the current viewport
	plan render.Plan

	// writeClipboard is replaced in tests
	writeClipboard func(string) error

	// -- UI Components --

	chart  *ui.ChartPane
	menu   *ui.Menu
	errBox *ui.ErrBox
}

type keyupMsg struct{}

type hideErrMsg struct{}

type svgCopiedMsg struct {
	bytes int
	err   error
}

func newHome(ctx context.Context, widget *render.Widget) *home {
	return &home{
		ctx:            ctx,
		widget:         widget,
		simulated:      -1,
		writeClipboard: clipboard.WriteAll,
		chart:          ui.NewChartPane(),
		menu:           ui.NewMenu(),
		errBox:         ui.NewErrBox(),
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case svgCopiedMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.errBox.SetInfo(fmt.Sprintf("Copied SVG to clipboard (%d bytes)", msg.bytes))
		return m, m.hideErrAfter(3 * time.Second)
	}
	return m, nil
}

// updateHandleWindowSizeEvent sets the sizes of the components and
// resolves the layout again.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	menuHeight := 1
	m.chart.SetSize(msg.Width, msg.Height-menuHeight-1)
	m.menu.SetSize(msg.Width, menuHeight)
	m.errBox.SetSize(msg.Width, 1)

	m.relayout()
}

// viewport is the pixel viewport the widget is resolved for.
func (m *home) viewport() layout.Viewport {
	v := layout.Viewport{
		Width:  float64(m.width * CellWidth),
		Height: float64(m.height * CellHeight),
	}
	if m.simulated >= 0 {
		v.Width = SimulatedWidths[m.simulated]
	}
	return v
}

func (m *home) relayout() {
	defer log.GetProfiler().StartRender("preview")()

	v := m.viewport()
	m.plan = m.widget.Plan(v)
	m.chart.SetPlan(m.plan, m.widget.Options, m.simulated >= 0)
	log.LayoutTrace("viewport %gx%g -> %s, %d/%d labels",
		v.Width, v.Height, m.plan.Profile.Breakpoint, len(m.plan.Labels)-countOmitted(m.plan), len(m.plan.Labels))

	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
			log.WarningLog.Printf("could not write inspect snapshot: %v", err)
		}
	}
}

func (m *home) snapshot() *inspect.Snapshot {
	return inspect.FromPlan(m.plan).
		WithTerminal(m.width, m.height).
		WithStyle("card", inspect.ExtractStyleInfo(ui.CardStyle(), "card")).
		WithStyle("title", inspect.ExtractStyleInfo(ui.TextStyles.Title, "title"))
}

func countOmitted(p render.Plan) int {
	n := 0
	for _, l := range p.Labels {
		if l.Omitted {
			n++
		}
	}
	return n
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	log.InputTrace("key %q", msg.String())

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	if name == keys.KeyQuit {
		return m, tea.Quit
	}
	highlightCmd := m.keydownCallback(name)

	switch name {
	case keys.KeyNarrower:
		m.step(-1)
	case keys.KeyWider:
		m.step(1)
	case keys.KeyFollow:
		m.simulated = -1
	case keys.KeyDonut:
		m.widget.Options.ShowInnerRadius = !m.widget.Options.ShowInnerRadius
	case keys.KeyLabels:
		m.widget.Options.ShowLabels = !m.widget.Options.ShowLabels
	case keys.KeyNotes:
		m.chart.SetShowNotes(!m.chart.ShowingNotes())
		return m, highlightCmd
	case keys.KeyCopy:
		return m, tea.Batch(highlightCmd, m.copySVG())
	}

	m.relayout()
	return m, highlightCmd
}

// step moves the simulated width one breakpoint narrower or wider. When
// following the terminal it starts from the terminal's breakpoint.
func (m *home) step(delta int) {
	current := m.simulated
	if current < 0 {
		current = int(m.plan.Profile.Breakpoint)
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next >= len(SimulatedWidths) {
		next = len(SimulatedWidths) - 1
	}
	m.simulated = next
}

// copySVG renders the widget at the current viewport and puts the SVG on
// the system clipboard.
func (m *home) copySVG() tea.Cmd {
	v := m.viewport()
	widget := *m.widget
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := widget.Render(&buf, v); err != nil {
			return svgCopiedMsg{err: err}
		}
		if err := m.writeClipboard(buf.String()); err != nil {
			return svgCopiedMsg{err: fmt.Errorf("failed to copy SVG: %w", err)}
		}
		return svgCopiedMsg{bytes: buf.Len()}
	}
}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) hideErrAfter(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.chart.String(),
		m.menu.String(),
		m.errBox.String(),
	)
}
