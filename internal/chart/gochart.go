package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChartRenderer draws the chart as a static image with go-chart.
type GoChartRenderer struct {
	Title      string
	Width      int
	Height     int
	Format     string
	Background string
}

func NewGoChartRenderer(format string, widthPx, heightPx int, background string) GoChartRenderer {
	return GoChartRenderer{
		Title:      DefaultTitle,
		Width:      widthPx,
		Height:     heightPx,
		Format:     format,
		Background: background,
	}
}

func (r GoChartRenderer) Render(w io.Writer, cfg Config) error {
	bc, err := r.newBarChart(cfg)
	if err != nil {
		return err
	}

	provider := gochart.PNG
	switch r.Format {
	case "", "png":
	case "svg":
		provider = gochart.SVG
	default:
		return fmt.Errorf("go-chart cannot render format %q", r.Format)
	}

	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}

func (r GoChartRenderer) newBarChart(cfg Config) (gochart.BarChart, error) {
	labels, values, err := cfg.bars()
	if err != nil {
		return gochart.BarChart{}, err
	}

	yScale, xScale := cfg.Options.Scales.Y, cfg.Options.Scales.X
	palette := barPalette{
		background: hexColorOr(r.Background, white),
		text:       hexColorOr(yScale.Ticks.Color, black),
		bar:        hexColorOr(cfg.Data.Datasets[0].BackgroundColor, barFill),
	}
	xTicks := hexColorOr(xScale.Ticks.Color, black)

	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	bars := make([]gochart.Value, len(values))
	minValue, maxValue := 0.0, 0.0
	for i, v := range values {
		bars[i] = gochart.Value{
			Label: labels[i],
			Value: v,
			Style: gochart.Style{
				FillColor:   palette.bar,
				StrokeColor: palette.bar,
			},
		}
		minValue = min(minValue, v)
		maxValue = max(maxValue, v)
	}

	yAxis := gochart.YAxis{
		Style: gochart.Style{
			FontColor:   palette.text,
			StrokeColor: palette.text,
		},
	}
	// minValue and maxValue start at zero, so the range always includes it.
	if yScale.BeginAtZero {
		if maxValue <= 0 {
			maxValue = 1
		}
		yAxis.Range = &gochart.ContinuousRange{Min: minValue, Max: maxValue}
	}
	if yScale.Grid.Shown() {
		yAxis.GridMajorStyle = gochart.Style{
			StrokeColor: hexColorOr(yScale.Grid.Color, lightGrid),
			StrokeWidth: 1,
		}
	}

	barWidth := (width - 120) / (2 * len(bars))
	if barWidth < 1 {
		barWidth = 1
	}

	return gochart.BarChart{
		Title:        r.Title,
		TitleStyle:   gochart.Style{FontColor: palette.text},
		ColorPalette: palette,
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		Background: gochart.Style{
			Padding:   gochart.Box{Top: 40},
			FillColor: palette.background,
		},
		Canvas: gochart.Style{FillColor: palette.background},
		XAxis: gochart.Style{
			FontColor:   xTicks,
			StrokeColor: xTicks,
		},
		YAxis: yAxis,
		Bars:  bars,
	}, nil
}

// barPalette themes the parts of a go-chart BarChart that Style fields do not reach.
type barPalette struct {
	background drawing.Color
	text       drawing.Color
	bar        drawing.Color
}

func (p barPalette) BackgroundColor() drawing.Color { return p.background }
func (p barPalette) BackgroundStrokeColor() drawing.Color { return p.background }
func (p barPalette) CanvasColor() drawing.Color { return p.background }
func (p barPalette) CanvasStrokeColor() drawing.Color { return p.background }
func (p barPalette) AxisStrokeColor() drawing.Color { return p.text }
func (p barPalette) TextColor() drawing.Color { return p.text }
func (p barPalette) GetSeriesColor(int) drawing.Color { return p.bar }
