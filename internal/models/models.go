package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLengthMismatch is returned by Validate when labels and counts are not positionally paired.
var ErrLengthMismatch = errors.New("labels and counts have different lengths")

// WishlistSeries is the pre-computed per-product wishlist tally handed to the chart.
// Labels[i] is the product name for Counts[i].
type WishlistSeries struct {
	Labels []string  `json:"labels"`
	Counts []float64 `json:"counts"`
}

// Len returns the number of bars the series describes.
// For a series that fails Validate it is the shorter of the two slices.
func (s WishlistSeries) Len() int {
	if len(s.Labels) < len(s.Counts) {
		return len(s.Labels)
	}
	return len(s.Counts)
}

// Validate checks the labels/counts pairing.
func (s WishlistSeries) Validate() error {
	if len(s.Labels) != len(s.Counts) {
		return fmt.Errorf("%w: %d labels, %d counts", ErrLengthMismatch, len(s.Labels), len(s.Counts))
	}
	return nil
}

// DecodeSeries reads a JSON object of the form {"labels": [...], "counts": [...]}.
// Other keys are ignored.
func DecodeSeries(r io.Reader) (WishlistSeries, error) {
	var s WishlistSeries
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return WishlistSeries{}, fmt.Errorf("failed to decode wishlist series: %w", err)
	}
	if s.Labels == nil {
		s.Labels = []string{}
	}
	if s.Counts == nil {
		s.Counts = []float64{}
	}
	return s, nil
}

// LoadSeries reads a series from a JSON file. A path of "-" reads stdin.
func LoadSeries(path string) (WishlistSeries, error) {
	if path == "-" {
		return DecodeSeries(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return WishlistSeries{}, fmt.Errorf("failed to open series file %s: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSeries(f)
	if err != nil {
		return WishlistSeries{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
