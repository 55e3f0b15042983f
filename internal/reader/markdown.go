package reader

import (
	"bufio"
	"bytes"
	"regexp"
)

// MarkdownFormat implements Format for Markdown files.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

// headerRegex matches markdown headers (# to ######)
var headerRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ExtractPages paginates a Markdown document on its headers: each header
// starts a new page, with the header text kept as that page's opening
// words. A document without headers is a single page.
func (f *MarkdownFormat) ExtractPages(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var pages []string
	var page bytes.Buffer

	flush := func() {
		if page.Len() > 0 {
			pages = append(pages, page.String())
			page.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if match := headerRegex.FindStringSubmatch(line); match != nil {
			flush()
			line = match[2]
		}
		page.WriteString(line)
		page.WriteString("\n")
	}
	flush()

	return pages, scanner.Err()
}
