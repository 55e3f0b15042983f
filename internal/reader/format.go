// Package reader turns uploaded document bytes into raw per-page text for
// the engine. Formats register themselves by file extension; anything
// unrecognized is treated as plain text.
package reader

import (
	"path/filepath"
	"strings"
)

// Format defines a file format reader for extracting per-page text.
type Format interface {
	Name() string
	Extensions() []string
	ExtractPages(data []byte) ([]string, error)
}

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// ExtractPages extracts per-page text from document bytes, dispatching on
// the filename's extension. Pages are returned in the source's page order.
func ExtractPages(filename string, data []byte) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f.ExtractPages(data)
			}
		}
	}
	return splitPlainText(string(data)), nil
}

// splitPlainText paginates plain text on form feeds. Text without form
// feeds is a single page.
func splitPlainText(text string) []string {
	return strings.Split(text, "\f")
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}
