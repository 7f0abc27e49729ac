package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"payments-charts/app"
	"payments-charts/config"
	"payments-charts/dataset"
	"payments-charts/inspect"
	"payments-charts/layout"
	"payments-charts/log"
	"payments-charts/render"
)

var (
	version = "0.4.0"

	verboseFlag bool
	dataFlag    string
	fieldFlag   string
	titleFlag   string
	notesFlag   string

	renderWidthFlag  float64
	renderHeightFlag float64
	layoutWidthFlag  float64
	layoutHeightFlag float64

	outputFlag    string
	donutFlag     bool
	noLabelsFlag  bool
	noLegendFlag  bool
	noLogoFlag    bool
	groupedFlag   bool
	sourceURLFlag string
	jsonFlag      bool

	rootCmd = &cobra.Command{
		Use:   "charts",
		Short: "charts - Responsive pie chart widgets for payments statistics.",
		RunE:  runPreview,
	}

	previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Preview the chart layout in the terminal, re-resolving on every resize",
		RunE:  runPreview,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render the chart widget as SVG for a viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(verboseFlag)
			defer log.Close()

			widget, err := loadWidget(cmd)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if outputFlag != "" && outputFlag != "-" {
				f, err := os.Create(outputFlag)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			v := layout.Viewport{Width: renderWidthFlag, Height: renderHeightFlag}
			if err := widget.Render(out, v); err != nil {
				return err
			}
			log.InfoLog.Printf("rendered %d segments at %gx%g", len(widget.Segments), v.Width, v.Height)
			return nil
		},
	}

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the resolved layout profile and label geometry for a viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(verboseFlag)
			defer log.Close()

			widget, err := loadWidget(cmd)
			if err != nil {
				return err
			}

			v := layoutViewport(cmd, terminalViewport)
			snapshot := inspect.FromPlan(widget.Plan(v))
			if !jsonFlag {
				fmt.Print(snapshot.ToText())
				return nil
			}
			data, err := inspect.Marshal(snapshot)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.LogFileName())
			if inspect.IsEnabled() {
				fmt.Printf("Inspect: %s\n", inspect.GetInspectFile())
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of charts",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("charts version %s\n", version)
		},
	}
)

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log.Initialize(false)
	defer log.Close()

	widget, err := loadWidget(cmd)
	if err != nil {
		return err
	}
	return app.Run(ctx, widget)
}

// loadWidget builds the widget from config, the data file and flags.
// Flags override config.
func loadWidget(cmd *cobra.Command) (*render.Widget, error) {
	cfg := config.LoadConfig()
	opts := render.OptionsFromConfig(cfg)

	flags := cmd.Flags()
	if titleFlag != "" {
		opts.Title = titleFlag
	}
	if notesFlag != "" {
		opts.Notes = notesFlag
	}
	if flags.Changed("donut") {
		opts.ShowInnerRadius = donutFlag
	}
	if flags.Changed("no-labels") {
		opts.ShowLabels = !noLabelsFlag
	}
	if flags.Changed("no-legend") {
		opts.ShowLegend = !noLegendFlag
	}
	if flags.Changed("no-logo") {
		opts.ShowLogo = !noLogoFlag
	}
	if flags.Changed("grouped") {
		opts.GroupedValues = groupedFlag
	}
	if sourceURLFlag != "" {
		opts.SourceURL = sourceURLFlag
	}

	records := dataset.Sample()
	if dataFlag != "" {
		data, err := os.ReadFile(dataFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		records, err = dataset.ParseRecords(data)
		if err != nil {
			return nil, err
		}
	}

	var segments []dataset.Segment
	if fieldFlag != "" {
		segments = dataset.SegmentsByField(records, fieldFlag)
	} else {
		segments = dataset.Segments(records)
		if len(records) > 0 && len(segments) == 0 {
			log.WarningLog.Printf("no numeric field found in %s", dataFlag)
		}
	}

	return render.New(opts, segments), nil
}

// terminalViewport maps the terminal size to a pixel viewport the way the
// preview does. It falls back to 80x24 when stdout is not a terminal.
func terminalViewport() layout.Viewport {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	return layout.Viewport{
		Width:  float64(w * app.CellWidth),
		Height: float64(h * app.CellHeight),
	}
}

// layoutViewport is the viewport for the layout command: explicit flags win,
// anything left unset comes from fallback.
func layoutViewport(cmd *cobra.Command, fallback func() layout.Viewport) layout.Viewport {
	v := layout.Viewport{Width: layoutWidthFlag, Height: layoutHeightFlag}
	widthSet, heightSet := cmd.Flags().Changed("width"), cmd.Flags().Changed("height")
	if widthSet && heightSet {
		return v
	}
	tv := fallback()
	if !widthSet {
		v.Width = tv.Width
	}
	if !heightSet {
		v.Height = tv.Height
	}
	return v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Mirror log output to stderr")
	rootCmd.PersistentFlags().StringVarP(&dataFlag, "data", "d", "",
		"JSON or YAML file with an array of records (defaults to the sample payment methods)")
	rootCmd.PersistentFlags().StringVarP(&fieldFlag, "field", "f", "",
		"Record field holding segment values (defaults to the first numeric field)")
	rootCmd.PersistentFlags().StringVarP(&titleFlag, "title", "t", "", "Chart title")
	rootCmd.PersistentFlags().StringVar(&notesFlag, "notes", "", "Notes shown behind the notes marker")

	renderCmd.Flags().Float64Var(&renderWidthFlag, "width", 1024, "Viewport width in pixels")
	renderCmd.Flags().Float64Var(&renderHeightFlag, "height", 768, "Viewport height in pixels")
	layoutCmd.Flags().Float64Var(&layoutWidthFlag, "width", 0, "Viewport width in pixels (defaults to the terminal width)")
	layoutCmd.Flags().Float64Var(&layoutHeightFlag, "height", 0, "Viewport height in pixels (defaults to the terminal height)")
	for _, c := range []*cobra.Command{rootCmd, previewCmd, renderCmd, layoutCmd} {
		c.Flags().BoolVar(&donutFlag, "donut", false, "Draw a donut instead of a full pie")
		c.Flags().BoolVar(&noLabelsFlag, "no-labels", false, "Hide segment labels")
		c.Flags().BoolVar(&noLegendFlag, "no-legend", false, "Hide the legend")
		c.Flags().BoolVar(&noLogoFlag, "no-logo", false, "Hide the logo")
		c.Flags().BoolVar(&groupedFlag, "grouped", false, "Show full grouped values in labels on wide viewports")
	}
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (defaults to stdout)")
	renderCmd.Flags().StringVar(&sourceURLFlag, "source-url", "", "Link for the source line")
	layoutCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the layout snapshot as JSON")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
