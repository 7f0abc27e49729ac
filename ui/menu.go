package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"payments-charts/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(Primary)

var separator = " • "
var verticalSeparator = " │ "

// Menu groups: viewport stepping, chart toggles, system.
var menuGroups = [][]keys.KeyName{
	{keys.KeyNarrower, keys.KeyWider, keys.KeyFollow},
	{keys.KeyDonut, keys.KeyLabels, keys.KeyNotes, keys.KeyCopy},
	{keys.KeyQuit},
}

// Menu renders the key bindings along the bottom of the preview.
type Menu struct {
	height, width int

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	return &Menu{keyDown: -1}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for g, group := range menuGroups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if g == 1 {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(menuGroups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	text := s.String()
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}
