package harness

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// recorder counts what it receives and answers "p" with a batch of pings.
type recorder struct {
	width, height int
	keys          []string
	pings         int
}

func (r *recorder) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
	case tea.KeyMsg:
		r.keys = append(r.keys, msg.String())
		if msg.String() == "p" {
			ping := func() tea.Msg { return pingMsg{} }
			return r, tea.Batch(ping, ping, tea.Quit)
		}
	case pingMsg:
		r.pings++
	}
	return r, nil
}

func (r *recorder) View() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}

func TestHarness(t *testing.T) {
	r := &recorder{}
	h := New(t, r, 80, 24)

	assert.Equal(t, 1, r.pings, "Init command should run")
	assert.Equal(t, "80x24", h.View())

	h.Resize(120, 40)
	assert.Equal(t, 120, h.Width())
	assert.Equal(t, 40, h.Height())
	assert.Equal(t, "120x40", h.View())

	h.SendSpecialKey(tea.KeyLeft)
	NewKeySequence("a", "b").Play(h)
	assert.Equal(t, []string{"left", "a", "b"}, r.keys)

	h.RunCmd(h.SendKey("p"))
	assert.Equal(t, 3, r.pings)
	assert.Same(t, r, h.Model())
}

func TestCommonSizesHaveUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	RunWithCommonSizes(t, func(t *testing.T, size TerminalSize) {
		assert.False(t, seen[size.Name])
		seen[size.Name] = true
		assert.Positive(t, size.Width)
		assert.Positive(t, size.Height)
	})
	assert.Len(t, seen, len(CommonSizes))
}
