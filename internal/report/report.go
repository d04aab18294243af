package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/wishlist-chart-go/internal/chart"
	"github.com/user/wishlist-chart-go/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrUnsupportedEngine = errors.New("unsupported image engine")
)

// Formats lists the report formats NewReportAdapter accepts.
var Formats = []string{"html", "json", "png", "svg"}

// ReportAdapter defines the interface for generating different report formats.
type ReportAdapter interface {
	PrepareData(series models.WishlistSeries, dark bool) error
	Write(outputFilePath string) error
}

// Options carries the surface settings shared by all adapters.
type Options struct {
	Engine    string // "plot" or "gochart"; png and svg only
	Width     int
	Height    int
	Title     string
	ScriptURL string
}

// NewReportAdapter returns the adapter for format.
func NewReportAdapter(format string, opts Options) (ReportAdapter, error) {
	switch format {
	case "html":
		return &HTMLReportAdapter{opts: opts}, nil
	case "json":
		return &JSONReportAdapter{}, nil
	case "png", "svg":
		switch opts.Engine {
		case "", "plot", "gochart":
		default:
			return nil, fmt.Errorf("%w %q (want plot or gochart)", ErrUnsupportedEngine, opts.Engine)
		}
		return &ImageReportAdapter{format: format, opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w %q. Must be one of %v", ErrUnsupportedFormat, format, Formats)
	}
}

// writeFile creates the parent directory and writes data.
func writeFile(outputFilePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for report file %s: %w", outputFilePath, err)
	}
	return os.WriteFile(outputFilePath, data, 0644)
}

// --- JSON Report Adapter ---

// JSONReportAdapter writes the chart configuration object.
type JSONReportAdapter struct {
	reportData []byte
}

func (jra *JSONReportAdapter) PrepareData(series models.WishlistSeries, dark bool) error {
	var buf bytes.Buffer
	if err := (chart.JSONRenderer{Indent: "  "}).Render(&buf, chart.Build(dark, series)); err != nil {
		return err
	}
	jra.reportData = buf.Bytes()
	return nil
}

func (jra *JSONReportAdapter) Write(outputFilePath string) error {
	return writeFile(outputFilePath, jra.reportData)
}

// --- HTML Report Adapter ---

// HTMLReportAdapter writes a page that renders the chart with Chart.js.
type HTMLReportAdapter struct {
	opts      Options
	reportBuf bytes.Buffer
}

func (hra *HTMLReportAdapter) PrepareData(series models.WishlistSeries, dark bool) error {
	r := chart.NewHTMLRenderer(dark, hra.opts.Width, hra.opts.Height)
	if hra.opts.Title != "" {
		r.Title = hra.opts.Title
	}
	if hra.opts.ScriptURL != "" {
		r.ScriptURL = hra.opts.ScriptURL
	}

	hra.reportBuf.Reset()
	return r.Render(&hra.reportBuf, chart.Build(dark, series))
}

func (hra *HTMLReportAdapter) Write(outputFilePath string) error {
	return writeFile(outputFilePath, hra.reportBuf.Bytes())
}

// --- Image Report Adapter ---

// ImageReportAdapter writes a PNG or SVG drawn by gonum/plot or go-chart.
type ImageReportAdapter struct {
	format    string
	opts      Options
	reportBuf bytes.Buffer
}

func (ira *ImageReportAdapter) renderer(dark bool) chart.Renderer {
	background := chart.PaletteFor(dark).Background
	if ira.opts.Engine == "gochart" {
		r := chart.NewGoChartRenderer(ira.format, ira.opts.Width, ira.opts.Height, background)
		if ira.opts.Title != "" {
			r.Title = ira.opts.Title
		}
		return r
	}
	r := chart.NewPlotRenderer(ira.format, ira.opts.Width, ira.opts.Height, background)
	if ira.opts.Title != "" {
		r.Title = ira.opts.Title
	}
	return r
}

func (ira *ImageReportAdapter) PrepareData(series models.WishlistSeries, dark bool) error {
	ira.reportBuf.Reset()
	if err := ira.renderer(dark).Render(&ira.reportBuf, chart.Build(dark, series)); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", ira.format, err)
	}
	return nil
}

func (ira *ImageReportAdapter) Write(outputFilePath string) error {
	return writeFile(outputFilePath, ira.reportBuf.Bytes())
}
