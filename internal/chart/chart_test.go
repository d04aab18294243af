package chart

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/user/wishlist-chart-go/internal/models"
)

func TestBuild_LightScenario(t *testing.T) {
	series := models.WishlistSeries{Labels: []string{"Shoes", "Hats"}, Counts: []float64{3, 7}}
	cfg := Build(false, series)

	if cfg.Type != "bar" {
		t.Errorf("Type = %q, want bar", cfg.Type)
	}
	if len(cfg.Data.Datasets) != 1 {
		t.Fatalf("expected exactly one dataset, got %d", len(cfg.Data.Datasets))
	}
	ds := cfg.Data.Datasets[0]
	if !reflect.DeepEqual(ds.Data, []float64{3, 7}) {
		t.Errorf("dataset data = %v, want [3 7]", ds.Data)
	}
	if ds.BackgroundColor != "#ad00e2" {
		t.Errorf("backgroundColor = %q, want #ad00e2", ds.BackgroundColor)
	}
	if ds.BorderRadius != 7 {
		t.Errorf("borderRadius = %d, want 7", ds.BorderRadius)
	}
	if ds.Label != "Wishlists" {
		t.Errorf("dataset label = %q, want Wishlists", ds.Label)
	}
	if got := cfg.Options.Scales.Y.Ticks.Color; got != "#23242a" {
		t.Errorf("y ticks color = %q, want #23242a", got)
	}
	if got := cfg.Options.Scales.Y.Grid.Color; got != "#eee" {
		t.Errorf("y grid color = %q, want #eee", got)
	}
	if !cfg.Options.Scales.Y.BeginAtZero {
		t.Error("y axis should begin at zero")
	}
}

func TestBuild_DarkScenario(t *testing.T) {
	series := models.WishlistSeries{Labels: []string{"Shoes", "Hats"}, Counts: []float64{3, 7}}
	cfg := Build(true, series)

	if got := cfg.Options.Scales.Y.Ticks.Color; got != "#fff" {
		t.Errorf("y ticks color = %q, want #fff", got)
	}
	if got := cfg.Options.Scales.Y.Grid.Color; got != "#444" {
		t.Errorf("y grid color = %q, want #444", got)
	}
	if got := cfg.Options.Scales.X.Ticks.Color; got != "#fff" {
		t.Errorf("x ticks color = %q, want #fff", got)
	}
}

func TestBuild_ThemeIndependentStyling(t *testing.T) {
	series := models.WishlistSeries{
		Labels: []string{"Kurta", "Shawl", "Sneakers", "Dupatta"},
		Counts: []float64{0, 12, 4.5, 1},
	}
	for _, dark := range []bool{false, true} {
		cfg := Build(dark, series)

		if cfg.Options.Scales.X.Grid.Shown() {
			t.Errorf("dark=%v: x grid should be hidden", dark)
		}
		if !cfg.Options.Scales.Y.Grid.Shown() {
			t.Errorf("dark=%v: y grid should be shown", dark)
		}
		if cfg.Options.Plugins.Legend.Display {
			t.Errorf("dark=%v: legend should be hidden", dark)
		}
		if cfg.Data.Datasets[0].BackgroundColor != BarColor {
			t.Errorf("dark=%v: bar color = %q, want %q", dark, cfg.Data.Datasets[0].BackgroundColor, BarColor)
		}
		if !reflect.DeepEqual(cfg.Data.Labels, series.Labels) {
			t.Errorf("dark=%v: labels = %v, want %v", dark, cfg.Data.Labels, series.Labels)
		}
		if !reflect.DeepEqual(cfg.Data.Datasets[0].Data, series.Counts) {
			t.Errorf("dark=%v: data = %v, want %v", dark, cfg.Data.Datasets[0].Data, series.Counts)
		}
		if cfg.Options.Scales.X.Ticks.Color != cfg.Options.Scales.Y.Ticks.Color {
			t.Errorf("dark=%v: x and y tick colors differ", dark)
		}
	}
}

func TestBuild_DoesNotAliasSeries(t *testing.T) {
	series := models.WishlistSeries{Labels: []string{"Shoes"}, Counts: []float64{3}}
	cfg := Build(false, series)

	series.Labels[0] = "Boots"
	series.Counts[0] = 99
	if cfg.Data.Labels[0] != "Shoes" || cfg.Data.Datasets[0].Data[0] != 3 {
		t.Errorf("config changed with caller's series: %+v", cfg.Data)
	}
}

func TestBuild_MismatchedLengthsPassThrough(t *testing.T) {
	series := models.WishlistSeries{Labels: []string{"Shoes", "Hats"}, Counts: []float64{3}}
	cfg := Build(false, series)

	if len(cfg.Data.Labels) != 2 || len(cfg.Data.Datasets[0].Data) != 1 {
		t.Errorf("Build should copy mismatched input as-is, got labels=%v data=%v",
			cfg.Data.Labels, cfg.Data.Datasets[0].Data)
	}
}

func TestConfig_JSONShape(t *testing.T) {
	cfg := Build(true, models.WishlistSeries{Labels: []string{"Shoes", "Hats"}, Counts: []float64{3, 7}})
	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	scales := generic["options"].(map[string]interface{})["scales"].(map[string]interface{})
	x := scales["x"].(map[string]interface{})
	if display, ok := x["grid"].(map[string]interface{})["display"]; !ok || display != false {
		t.Errorf("options.scales.x.grid.display = %v, want false", display)
	}
	if _, ok := x["beginAtZero"]; ok {
		t.Error("options.scales.x should not carry beginAtZero")
	}
	y := scales["y"].(map[string]interface{})
	if y["beginAtZero"] != true {
		t.Errorf("options.scales.y.beginAtZero = %v, want true", y["beginAtZero"])
	}
	if _, ok := y["grid"].(map[string]interface{})["display"]; ok {
		t.Error("options.scales.y.grid.display should be left to the library default")
	}
	legend := generic["options"].(map[string]interface{})["plugins"].(map[string]interface{})["legend"].(map[string]interface{})
	if legend["display"] != false {
		t.Errorf("options.plugins.legend.display = %v, want false", legend["display"])
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(true) != DarkPalette {
		t.Errorf("PaletteFor(true) = %+v, want dark palette", PaletteFor(true))
	}
	if PaletteFor(false) != LightPalette {
		t.Errorf("PaletteFor(false) = %+v, want light palette", PaletteFor(false))
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#444", [4]uint8{0x44, 0x44, 0x44, 0xff}, false},
		{"#fff", [4]uint8{0xff, 0xff, 0xff, 0xff}, false},
		{"#23242a", [4]uint8{0x23, 0x24, 0x2a, 0xff}, false},
		{"ad00e2", [4]uint8{0xad, 0x00, 0xe2, 0xff}, false},
		{"#ad00e280", [4]uint8{}, true},
		{"#1234", [4]uint8{}, true},
		{"#12", [4]uint8{}, true},
		{"", [4]uint8{}, true},
		{"#gggggg", [4]uint8{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			got := [4]uint8{c.R, c.G, c.B, c.A}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
