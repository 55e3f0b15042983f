// Package engine provides the core RSVP (Rapid Serial Visual Presentation)
// pagination and pacing logic: word extraction, the paged document model,
// the pacing clock, and the reader state machine.
package engine

import (
	"errors"
	"strings"
)

// ErrEmptyDocument is returned when no page of an ingested document
// contains any extractable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Document is an ordered collection of pages, each an ordered sequence of
// words. A stored Document always has at least one page and every page has
// at least one word.
type Document struct {
	Pages [][]string
}

// Tokenize splits raw page text into words on any run of whitespace.
func Tokenize(raw string) []string {
	return strings.Fields(raw)
}

// BuildDocument tokenizes each raw page string in order, dropping pages
// with no words while preserving the relative order of the rest. It fails
// with ErrEmptyDocument if nothing survives.
func BuildDocument(pagesRaw []string) (*Document, error) {
	var pages [][]string
	for _, raw := range pagesRaw {
		words := Tokenize(raw)
		if len(words) == 0 {
			continue
		}
		pages = append(pages, words)
	}
	if len(pages) == 0 {
		return nil, ErrEmptyDocument
	}
	return &Document{Pages: pages}, nil
}

// Placeholder returns the single-page document shown before any upload.
func Placeholder() *Document {
	return &Document{Pages: [][]string{
		{"Upload", "a", "document", "to", "begin."},
	}}
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
