package chart

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed series styling, independent of theme.
const (
	BarColor        = "#ad00e2"
	BarBorderRadius = 7
	DatasetLabel    = "Wishlists"
	CanvasID        = "wishlistProductChart"
	DefaultTitle    = "Wishlists by product"

	DefaultWidth  = 640
	DefaultHeight = 400
)

// Palette holds the theme-dependent axis colors.
type Palette struct {
	Grid       string `json:"grid"`
	Ticks      string `json:"ticks"`
	Background string `json:"background"`
}

var (
	DarkPalette = Palette{
		Grid:       "#444",
		Ticks:      "#fff",
		Background: "#23242a",
	}
	LightPalette = Palette{
		Grid:       "#eee",
		Ticks:      "#23242a",
		Background: "#ffffff",
	}
)

// PaletteFor returns the dark palette when dark is set, the light one otherwise.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// Fallback colors for config values that fail to parse.
var (
	white     = drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black     = drawing.Color{A: 0xff}
	lightGrid = drawing.Color{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	barFill   = drawing.Color{R: 0xad, B: 0xe2, A: 0xff}
)

// ParseHexColor converts CSS hex notation (#rgb or #rrggbb) to a drawing.Color,
// which satisfies color.Color for gonum/plot as well as go-chart.
func ParseHexColor(s string) (drawing.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	// ColorFromHex has no error return; reject bad digits before handing over.
	if strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return drawing.ColorFromHex(hex), nil
}

// hexColorOr parses s, returning fallback when s is not a valid hex color.
func hexColorOr(s string, fallback drawing.Color) drawing.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
