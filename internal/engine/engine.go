package engine

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrOutOfRange is returned for a seek outside the document's pages.
	ErrOutOfRange = errors.New("page index out of range")
	// ErrInvalidParameter is returned for a non-positive speed or chunk size.
	ErrInvalidParameter = errors.New("invalid pacing parameter")
)

// Mode is the playback mode.
type Mode int

const (
	Paused Mode = iota
	Playing
)

func (m Mode) String() string {
	if m == Playing {
		return "playing"
	}
	return "paused"
}

// Default pacing used by a fresh engine.
const (
	DefaultWPM       = 300.0
	DefaultChunkSize = 1
)

// Engine is the reader state machine. It owns the current document, the
// cursor, the pacing configuration, and the playback mode; all mutation
// goes through its methods. It is not safe for concurrent use: the frame
// driver is its single owner.
type Engine struct {
	doc       *Document
	pageIndex int
	wordIndex int

	wpm       float64
	chunkSize int
	mode      Mode

	clock *Clock
	chunk string
}

// New returns an engine showing the placeholder document, paused, at the
// default pacing.
func New() *Engine {
	return &Engine{
		doc:       Placeholder(),
		wpm:       DefaultWPM,
		chunkSize: DefaultChunkSize,
		mode:      Paused,
		clock:     NewClock(Interval(DefaultWPM, DefaultChunkSize)),
	}
}

// TogglePlayPause flips between Playing and Paused.
func (e *Engine) TogglePlayPause() {
	if e.mode == Playing {
		e.mode = Paused
	} else {
		e.mode = Playing
	}
}

// SeekToPage moves the cursor to the start of the given page. The playback
// mode is unchanged.
func (e *Engine) SeekToPage(pageIndex int) error {
	if pageIndex < 0 || pageIndex >= len(e.doc.Pages) {
		return ErrOutOfRange
	}
	e.pageIndex = pageIndex
	e.wordIndex = 0
	return nil
}

// SetPacing updates the words-per-minute rate and chunk size. The clock
// keeps its accumulated partial progress; if the new interval is shorter,
// already-earned intervals fire on the next Tick.
func (e *Engine) SetPacing(wpm float64, chunkSize int) error {
	if wpm <= 0 || chunkSize < 1 {
		return ErrInvalidParameter
	}
	e.wpm = wpm
	e.chunkSize = chunkSize
	e.clock.SetInterval(Interval(wpm, chunkSize))
	return nil
}

// Ingest builds a document from raw per-page text and replaces the current
// one, resetting the cursor to the first word of the first page and starting
// playback. On failure nothing changes and the previous document stays
// active.
func (e *Engine) Ingest(pagesRaw []string) error {
	doc, err := BuildDocument(pagesRaw)
	if err != nil {
		return err
	}
	e.doc = doc
	e.pageIndex = 0
	e.wordIndex = 0
	e.mode = Playing
	return nil
}

// Tick advances the engine by the wall-clock time since the previous call
// and returns the next chunk to display, if one is due. It is called once
// per rendering frame. While paused it does nothing. However many pacing
// intervals the elapsed time covers, at most one chunk is revealed per
// call, so an irregular frame never skips words. Reaching the end of the
// last page pauses playback; the previously returned chunk stays on screen.
func (e *Engine) Tick(elapsed time.Duration) (string, bool) {
	if e.mode != Playing || len(e.doc.Pages) == 0 {
		return "", false
	}
	if e.clock.Advance(elapsed) == 0 {
		return "", false
	}
	return e.nextChunk()
}

// nextChunk reveals the chunk at the cursor, rolling to the next page in
// the same call when the current one is exhausted so a page boundary never
// produces a blank frame.
func (e *Engine) nextChunk() (string, bool) {
	page := e.doc.Pages[e.pageIndex]
	if e.wordIndex < len(page) {
		end := e.wordIndex + e.chunkSize
		if end > len(page) {
			end = len(page)
		}
		e.chunk = strings.Join(page[e.wordIndex:end], " ")
		e.wordIndex = end
		return e.chunk, true
	}
	if e.pageIndex+1 < len(e.doc.Pages) {
		e.pageIndex++
		e.wordIndex = 0
		return e.nextChunk()
	}
	e.mode = Paused
	return "", false
}

// SetPosition restores a saved cursor. The page must be in range; the word
// index is clamped to the page length.
func (e *Engine) SetPosition(pageIndex, wordIndex int) error {
	if pageIndex < 0 || pageIndex >= len(e.doc.Pages) {
		return ErrOutOfRange
	}
	if wordIndex < 0 {
		wordIndex = 0
	}
	if n := len(e.doc.Pages[pageIndex]); wordIndex > n {
		wordIndex = n
	}
	e.pageIndex = pageIndex
	e.wordIndex = wordIndex
	return nil
}

// Progress reports how far through the current page the cursor is, in [0, 1].
func (e *Engine) Progress() float64 {
	n := len(e.doc.Pages[e.pageIndex])
	if n < 1 {
		n = 1
	}
	p := float64(e.wordIndex) / float64(n)
	if p > 1 {
		p = 1
	}
	return p
}

// Mode returns the current playback mode.
func (e *Engine) Mode() Mode { return e.mode }

// PageIndex returns the cursor's page.
func (e *Engine) PageIndex() int { return e.pageIndex }

// WordIndex returns the cursor's position within the current page.
func (e *Engine) WordIndex() int { return e.wordIndex }

// PageCount returns the number of pages in the current document.
func (e *Engine) PageCount() int { return len(e.doc.Pages) }

// PageLength returns the word count of the current page.
func (e *Engine) PageLength() int { return len(e.doc.Pages[e.pageIndex]) }

// WPM returns the configured words-per-minute rate.
func (e *Engine) WPM() float64 { return e.wpm }

// ChunkSize returns the configured words per reveal.
func (e *Engine) ChunkSize() int { return e.chunkSize }

// CurrentChunk returns the most recently revealed chunk.
func (e *Engine) CurrentChunk() string { return e.chunk }
