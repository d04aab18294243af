// Package chart builds the "Wishlists by product" bar chart configuration and
// hands it to a rendering backend.
//
// Config mirrors the Chart.js configuration object so that the HTML backend can
// embed it verbatim; the image backends translate the same value.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/user/wishlist-chart-go/internal/models"
)

// ErrNoBars is returned by image backends when the config has nothing to plot.
var ErrNoBars = errors.New("no bars to plot")

// Config is a Chart.js configuration object for a single bar chart.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the axis labels and the datasets drawn against them.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series of bar values with its styling.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderRadius    int       `json:"borderRadius"`
	BackgroundColor string    `json:"backgroundColor"`
}

// Options carries the plugin and scale settings.
type Options struct {
	Plugins Plugins `json:"plugins"`
	Scales  Scales  `json:"scales"`
}

// Plugins configures Chart.js plugins; only the legend is set.
type Plugins struct {
	Legend Legend `json:"legend"`
}

// Legend toggles the dataset legend.
type Legend struct {
	Display bool `json:"display"`
}

// Scales holds the y (value) and x (category) axes.
type Scales struct {
	Y Scale `json:"y"`
	X Scale `json:"x"`
}

// Scale configures one axis. BeginAtZero keeps zero inside the value range.
type Scale struct {
	BeginAtZero bool  `json:"beginAtZero,omitempty"`
	Grid        Grid  `json:"grid"`
	Ticks       Ticks `json:"ticks"`
}

// Grid leaves Display unset to keep the Chart.js default (shown).
type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Shown reports whether grid lines should be drawn.
func (g Grid) Shown() bool {
	return g.Display == nil || *g.Display
}

// Ticks sets the color of an axis' tick labels.
type Ticks struct {
	Color string `json:"color"`
}

// Build returns the bar chart configuration for series under the selected theme.
// It does not check that labels and counts pair up.
func Build(dark bool, series models.WishlistSeries) Config {
	palette := PaletteFor(dark)
	hidden := false

	labels := append([]string{}, series.Labels...)
	counts := append([]float64{}, series.Counts...)

	return Config{
		Type: "bar",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           DatasetLabel,
				Data:            counts,
				BorderRadius:    BarBorderRadius,
				BackgroundColor: BarColor,
			}},
		},
		Options: Options{
			Plugins: Plugins{Legend: Legend{Display: false}},
			Scales: Scales{
				Y: Scale{
					BeginAtZero: true,
					Grid:        Grid{Color: palette.Grid},
					Ticks:       Ticks{Color: palette.Ticks},
				},
				X: Scale{
					Grid:  Grid{Display: &hidden},
					Ticks: Ticks{Color: palette.Ticks},
				},
			},
		},
	}
}

// bars flattens the first dataset into label/value pairs for the image backends.
func (c Config) bars() ([]string, []float64, error) {
	if len(c.Data.Datasets) == 0 || len(c.Data.Datasets[0].Data) == 0 {
		return nil, nil, ErrNoBars
	}
	values := c.Data.Datasets[0].Data
	labels := make([]string, len(values))
	copy(labels, c.Data.Labels)
	return labels, values, nil
}

// Renderer draws a configuration onto a surface.
type Renderer interface {
	Render(w io.Writer, cfg Config) error
}

// JSONRenderer writes the configuration object itself.
type JSONRenderer struct {
	Indent string
}

func (r JSONRenderer) Render(w io.Writer, cfg Config) error {
	enc := json.NewEncoder(w)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode chart config: %w", err)
	}
	return nil
}
