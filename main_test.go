package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-charts/config"
	"payments-charts/layout"
)

func TestViewportFlagDefaults(t *testing.T) {
	w, err := renderCmd.Flags().GetFloat64("width")
	require.NoError(t, err)
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 1024.0, renderWidthFlag)
	assert.Equal(t, 768.0, renderHeightFlag)

	w, err = layoutCmd.Flags().GetFloat64("width")
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, layoutWidthFlag)
	assert.Equal(t, 0.0, layoutHeightFlag)
}

func TestRenderWidthDoesNotLeakIntoLayout(t *testing.T) {
	flag := renderCmd.Flags().Lookup("width")
	t.Cleanup(func() {
		renderWidthFlag = 1024
		flag.Changed = false
	})

	require.NoError(t, renderCmd.Flags().Parse([]string{"--width", "600"}))
	assert.Equal(t, 600.0, renderWidthFlag)
	assert.Equal(t, 768.0, renderHeightFlag)
	assert.Equal(t, 0.0, layoutWidthFlag)
}

func newLayoutCmd(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "layout"}
	c.Flags().Float64Var(&layoutWidthFlag, "width", 0, "")
	c.Flags().Float64Var(&layoutHeightFlag, "height", 0, "")
	t.Cleanup(func() {
		layoutWidthFlag = 0
		layoutHeightFlag = 0
	})
	return c
}

func TestLayoutViewport(t *testing.T) {
	terminal := func() layout.Viewport { return layout.Viewport{Width: 640, Height: 384} }

	tests := []struct {
		name string
		args []string
		want layout.Viewport
	}{
		{name: "terminal size when unset", args: nil, want: layout.Viewport{Width: 640, Height: 384}},
		{name: "width only", args: []string{"--width", "360"}, want: layout.Viewport{Width: 360, Height: 384}},
		{name: "height only", args: []string{"--height", "900"}, want: layout.Viewport{Width: 640, Height: 900}},
		{name: "both set", args: []string{"--width", "1280", "--height", "720"}, want: layout.Viewport{Width: 1280, Height: 720}},
		{name: "explicit zero width", args: []string{"--width", "0"}, want: layout.Viewport{Width: 0, Height: 384}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newLayoutCmd(t)
			require.NoError(t, c.Flags().Parse(tt.args))
			assert.Equal(t, tt.want, layoutViewport(c, terminal))
		})
	}
}

func TestLoadWidgetFlagOverrides(t *testing.T) {
	t.Setenv(config.ConfigDirEnvVar, t.TempDir())
	t.Cleanup(func() {
		titleFlag = ""
		donutFlag = false
		noLogoFlag = false
	})

	c := &cobra.Command{Use: "render"}
	c.Flags().BoolVar(&donutFlag, "donut", false, "")
	c.Flags().BoolVar(&noLogoFlag, "no-logo", false, "")
	require.NoError(t, c.Flags().Parse([]string{"--donut", "--no-logo"}))
	titleFlag = "Card schemes"

	w, err := loadWidget(c)
	require.NoError(t, err)
	assert.Equal(t, "Card schemes", w.Options.Title)
	assert.True(t, w.Options.ShowInnerRadius)
	assert.False(t, w.Options.ShowLogo)
	assert.NotEmpty(t, w.Segments)
}
