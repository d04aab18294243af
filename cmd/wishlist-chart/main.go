package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/wishlist-chart-go/internal/chart"
	"github.com/user/wishlist-chart-go/internal/config"
	"github.com/user/wishlist-chart-go/internal/models"
	"github.com/user/wishlist-chart-go/internal/page"
	"github.com/user/wishlist-chart-go/internal/report"
)

var (
	// Used for flags.
	configFilePath string
	outputFilePath string
	darkMode       bool
	pagePath       string
	engine         string
	width          int
	height         int

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "wishlist-chart",
		Short: "Wishlist Chart renders the \"Wishlists by product\" bar chart.",
		Long: `A tool that turns per-product wishlist counts into a bar chart.
The chart follows the store's light or dark theme and can be written as a
Chart.js page, the raw Chart.js configuration, or a static PNG/SVG image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configFilePath != "" {
				cfg, err = config.LoadFromFile(configFilePath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render [SERIES_FILE] [html|json|png|svg]",
		Short: "Renders the wishlist chart from a series file.",
		Long: `Reads a JSON series of the form {"labels": [...], "counts": [...]} from
SERIES_FILE ("-" for stdin) and renders the chart in the given format. The
format defaults to output.format from the configuration.`,
		Args: cobra.RangeArgs(1, 2), // series file, optional format
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesPath := args[0]
			format := cfg.Output.Format
			if len(args) == 2 {
				format = args[1]
			}
			format = strings.ToLower(format)

			series, err := models.LoadSeries(seriesPath)
			if err != nil {
				return err
			}
			if err := series.Validate(); err != nil {
				return fmt.Errorf("invalid series in %s: %w", seriesPath, err)
			}

			dark, err := resolveDarkMode(cmd)
			if err != nil {
				return err
			}

			opts := report.Options{
				Engine:    cfg.Output.Engine,
				Width:     cfg.Chart.Width,
				Height:    cfg.Chart.Height,
				Title:     cfg.Chart.Title,
				ScriptURL: cfg.Chart.ScriptURL,
			}
			if cmd.Flags().Changed("engine") {
				opts.Engine = engine
			}
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}

			adapter, err := report.NewReportAdapter(format, opts)
			if err != nil {
				return err
			}

			// Determine output file path
			outPath := outputFilePath
			if outPath == "" {
				outPath = cfg.Output.Path
			}
			if outPath == "" {
				outPath = fmt.Sprintf("wishlist-chart.%s", format)
			}
			absOutputFilePath, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("invalid output file path '%s': %w", outPath, err)
			}

			fmt.Printf("Generating %s chart (%s theme) for %d products\n", format, themeName(dark), series.Len())
			if err := adapter.PrepareData(series, dark); err != nil {
				return fmt.Errorf("failed to prepare %s chart: %w", format, err)
			}

			fmt.Printf("Writing chart to: %s\n", absOutputFilePath)
			if err := adapter.Write(absOutputFilePath); err != nil {
				return fmt.Errorf("failed to write %s chart to %s: %w", format, absOutputFilePath, err)
			}

			fmt.Printf("%s chart generated successfully: %s\n", strings.ToUpper(format), absOutputFilePath)
			return nil
		},
	}

	paletteCmd = &cobra.Command{
		Use:   "palette",
		Short: "Prints the axis colors for the selected theme.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dark, err := resolveDarkMode(cmd)
			if err != nil {
				return err
			}
			p := chart.PaletteFor(dark)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theme:      %s\n", themeName(dark))
			fmt.Fprintf(out, "bar:        %s\n", chart.BarColor)
			fmt.Fprintf(out, "grid:       %s\n", p.Grid)
			fmt.Fprintf(out, "ticks:      %s\n", p.Ticks)
			fmt.Fprintf(out, "background: %s\n", p.Background)
			return nil
		},
	}
)

// resolveDarkMode picks the theme: a host page's body class wins, then --dark, then configuration.
func resolveDarkMode(cmd *cobra.Command) (bool, error) {
	pageFile := cfg.Theme.Page
	if cmd.Flags().Changed("page") {
		pageFile = pagePath
	}
	if pageFile != "" {
		if cmd.Flags().Changed("dark") {
			log.Printf("Warning: --dark ignored, theme is read from %s", pageFile)
		}
		dark, err := page.IsDarkModeFile(pageFile)
		if err != nil {
			return false, fmt.Errorf("failed to read theme from page: %w", err)
		}
		return dark, nil
	}
	if cmd.Flags().Changed("dark") {
		return darkMode, nil
	}
	return cfg.Theme.Dark, nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to a wishlist-chart.yaml configuration file")

	for _, cmd := range []*cobra.Command{renderCmd, paletteCmd} {
		cmd.Flags().BoolVar(&darkMode, "dark", false, "Use the dark palette")
		cmd.Flags().StringVar(&pagePath, "page", "", "HTML page whose <body> dark-mode class selects the theme")
	}

	renderCmd.Flags().StringVarP(&outputFilePath, "output-file-path", "o", "", "Output file path for the chart")
	renderCmd.Flags().StringVar(&engine, "engine", "plot", "Image engine for png/svg output: plot or gochart")
	renderCmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "Chart width in pixels")
	renderCmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "Chart height in pixels")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(paletteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
