package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyStringHasABinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, binding.Keys(), s, "binding for %q does not list it", s)
		assert.NotEmpty(t, binding.Help().Desc)
	}
}

func TestBindingsMatchKeyMessages(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want KeyName
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, KeyQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{tea.KeyMsg{Type: tea.KeyLeft}, KeyNarrower},
		{tea.KeyMsg{Type: tea.KeyRight}, KeyWider},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")}, KeyDonut},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, KeyCopy},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			name, ok := GlobalKeyStringsMap[tt.msg.String()]
			require.True(t, ok)
			assert.Equal(t, tt.want, name)
			assert.True(t, key.Matches(tt.msg, GlobalkeyBindings[tt.want]))
		})
	}
}
