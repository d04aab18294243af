package chart

import (
	"bytes"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotRenderer draws the chart as a static image with gonum/plot.
// Format is "png" or "svg"; square bar corners only, plot has no radius support.
type PlotRenderer struct {
	Title      string
	Width      vg.Length
	Height     vg.Length
	Format     string
	Background string
}

// NewPlotRenderer sizes the image in pixels, the unit the rest of the config uses.
func NewPlotRenderer(format string, widthPx, heightPx int, background string) PlotRenderer {
	return PlotRenderer{
		Title:      DefaultTitle,
		Width:      pixels(widthPx),
		Height:     pixels(heightPx),
		Format:     format,
		Background: background,
	}
}

// pixels converts CSS pixels (1/96 in) to vg lengths.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

func (r PlotRenderer) Render(w io.Writer, cfg Config) error {
	p, err := r.newPlot(cfg)
	if err != nil {
		return err
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = 4 * vg.Inch
	}
	if height <= 0 {
		height = 4 * vg.Inch
	}
	format := r.Format
	if format == "" {
		format = "png"
	}

	writer, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func (r PlotRenderer) newPlot(cfg Config) (*plot.Plot, error) {
	labels, values, err := cfg.bars()
	if err != nil {
		return nil, err
	}

	dataset := cfg.Data.Datasets[0]
	yScale, xScale := cfg.Options.Scales.Y, cfg.Options.Scales.X
	yTicks := hexColorOr(yScale.Ticks.Color, black)
	xTicks := hexColorOr(xScale.Ticks.Color, black)

	p := plot.New()
	p.Title.Text = r.Title
	p.Title.TextStyle.Color = yTicks
	p.BackgroundColor = hexColorOr(r.Background, white)

	p.X.Tick.Label.Color = xTicks
	p.X.LineStyle.Color = xTicks
	p.X.Tick.LineStyle.Color = xTicks
	p.Y.Tick.Label.Color = yTicks
	p.Y.LineStyle.Color = yTicks
	p.Y.Tick.LineStyle.Color = yTicks

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = nil
	if yScale.Grid.Shown() {
		grid.Horizontal.Color = hexColorOr(yScale.Grid.Color, lightGrid)
	}
	if xScale.Grid.Shown() {
		grid.Vertical.Color = hexColorOr(xScale.Grid.Color, lightGrid)
	}
	p.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Color = hexColorOr(dataset.BackgroundColor, barFill)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	// beginAtZero keeps zero in range; it does not clip negative bars.
	if yScale.BeginAtZero {
		p.Y.Min = min(p.Y.Min, 0)
		if p.Y.Max <= 0 {
			p.Y.Max = 1
		}
	}

	return p, nil
}
