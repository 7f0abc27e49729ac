// Package snapshot checks rendered chart output: the terminal preview and
// the text layout dump. Comparisons run on plain text, with escape
// sequences removed and trailing blanks trimmed from every line.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	csiPattern       = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	hyperlinkPattern = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap reports output mismatches on t.
type Snap struct {
	t *testing.T
}

func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains fails unless the plain output contains substr. substr may
// span lines.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	plain := Plain(actual)
	if !strings.Contains(plain, substr) {
		s.t.Errorf("missing %q in output:\n%s", substr, plain)
	}
}

func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	plain := Plain(actual)
	if strings.Contains(plain, substr) {
		s.t.Errorf("unexpected %q in output:\n%s", substr, plain)
	}
}

// AssertCount fails unless substr occurs exactly n times.
func (s *Snap) AssertCount(actual, substr string, n int) {
	s.t.Helper()
	if got := strings.Count(Plain(actual), substr); got != n {
		s.t.Errorf("%q occurs %d times, want %d", substr, got, n)
	}
}

// AssertMaxWidth fails when any line is wider than width terminal cells.
func (s *Snap) AssertMaxWidth(actual string, width int) {
	s.t.Helper()
	if got := Width(actual); got > width {
		s.t.Errorf("output is %d cells wide, pane is %d:\n%s", got, width, Plain(actual))
	}
}

// AssertMaxLines fails when the output is taller than lines rows.
func (s *Snap) AssertMaxLines(actual string, lines int) {
	s.t.Helper()
	if got := Lines(actual); got > lines {
		s.t.Errorf("output is %d rows tall, pane is %d:\n%s", got, lines, Plain(actual))
	}
}

// Plain is actual with escape sequences removed, CRLF folded to LF and
// trailing blanks trimmed from every line.
func Plain(actual string) string {
	lines := strings.Split(strings.ReplaceAll(StripANSI(actual), "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI drops SGR/CSI sequences and OSC 8 hyperlink wrappers.
func StripANSI(s string) string {
	return hyperlinkPattern.ReplaceAllString(csiPattern.ReplaceAllString(s, ""), "")
}

// Lines is the number of rows s occupies.
func Lines(s string) int {
	return strings.Count(s, "\n") + 1
}

// Width is the widest row of s in terminal cells, trailing blanks excluded.
func Width(s string) int {
	widest := 0
	for _, row := range strings.Split(Plain(s), "\n") {
		widest = max(widest, ansi.PrintableRuneWidth(row))
	}
	return widest
}
