// Package page reads the dark-mode flag a host page sets on its <body>.
package page

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DarkModeClass is the body class that switches the chart to the dark palette.
const DarkModeClass = "dark-mode"

// HasDarkClass reports whether a class attribute value contains DarkModeClass as a whole token.
func HasDarkClass(classList string) bool {
	for _, class := range strings.Fields(classList) {
		if class == DarkModeClass {
			return true
		}
	}
	return false
}

// IsDarkMode parses an HTML document and reports whether its body is in dark mode.
func IsDarkMode(r io.Reader) (bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return false, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc.Find("body").First().HasClass(DarkModeClass), nil
}

// IsDarkModeFile is IsDarkMode for a page on disk.
func IsDarkModeFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open page %s: %w", path, err)
	}
	defer f.Close()
	return IsDarkMode(f)
}
