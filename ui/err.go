package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#FF0000",
	Dark:  "#FF0000",
})

// ErrBox shows one line of error or status text under the menu.
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a non-error status message.
func (e *ErrBox) SetInfo(msg string) {
	e.err = nil
	e.info = msg
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	switch {
	case e.err != nil:
		text = errStyle.Render(e.err.Error())
	case e.info != "":
		text = TextStyles.Muted.Render(e.info)
	}
	if e.width > 0 {
		text = truncate.StringWithTail(text, uint(e.width), "…")
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, text)
}
