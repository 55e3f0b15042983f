//go:build !gui

package main

import (
	"strings"
	"testing"

	"github.com/andrewhcook/RSVP-Speed-Reader/internal/engine"
	"github.com/andrewhcook/RSVP-Speed-Reader/internal/mailbox"
)

func TestRenderChunk(t *testing.T) {
	t.Run("empty chunk", func(t *testing.T) {
		if got := renderChunk("", 80); got != "" {
			t.Errorf("renderChunk(\"\") = %q, want empty", got)
		}
	})

	t.Run("single word keeps all letters", func(t *testing.T) {
		got := renderChunk("hello", 80)
		for _, part := range []string{"h", "e", "llo"} {
			if !strings.Contains(got, part) {
				t.Errorf("renderChunk(%q) missing %q: %q", "hello", part, got)
			}
		}
	})

	t.Run("orp anchored at center", func(t *testing.T) {
		// ORP of "hello" is 1, so padding is width/2-1.
		got := renderChunk("hello", 40)
		if !strings.HasPrefix(got, strings.Repeat(" ", 19)) {
			t.Errorf("unexpected padding: %q", got)
		}
		if strings.HasPrefix(got, strings.Repeat(" ", 20)) {
			t.Errorf("padding too wide: %q", got)
		}
	})

	t.Run("multi-word chunk centered whole", func(t *testing.T) {
		got := renderChunk("two words", 80)
		if !strings.Contains(got, "two words") {
			t.Errorf("chunk text broken up: %q", got)
		}
	})

	t.Run("narrow terminal", func(t *testing.T) {
		// Must not panic or pad negatively.
		got := renderChunk("extraordinary", 4)
		if strings.HasPrefix(got, " ") {
			t.Errorf("expected no padding on a narrow terminal: %q", got)
		}
	})

	t.Run("unicode word", func(t *testing.T) {
		got := renderChunk("héllo", 80)
		if !strings.Contains(got, "h") || !strings.Contains(got, "llo") {
			t.Errorf("unicode word mangled: %q", got)
		}
	})
}

func TestModelIngest(t *testing.T) {
	t.Run("valid upload starts playback", func(t *testing.T) {
		m := newModel(engine.New(), &mailbox.Box{})
		m.ingest(mailbox.Upload{Name: "notes.txt", Data: []byte("hello world")})

		if m.warning != "" {
			t.Errorf("unexpected warning %q", m.warning)
		}
		if m.eng.Mode() != engine.Playing {
			t.Error("ingest did not start playback")
		}
		if m.eng.PageCount() != 1 {
			t.Errorf("PageCount() = %d, want 1", m.eng.PageCount())
		}
	})

	t.Run("empty upload warns and keeps document", func(t *testing.T) {
		m := newModel(engine.New(), &mailbox.Box{})
		pages := m.eng.PageCount()
		m.ingest(mailbox.Upload{Name: "blank.txt", Data: []byte("   \n \t ")})

		if m.warning == "" {
			t.Error("expected a warning for an upload with no text")
		}
		if m.eng.PageCount() != pages {
			t.Error("failed ingest replaced the document")
		}
		if m.eng.Mode() != engine.Paused {
			t.Error("failed ingest changed the playback mode")
		}
	})

	t.Run("unreadable upload warns", func(t *testing.T) {
		m := newModel(engine.New(), &mailbox.Box{})
		m.ingest(mailbox.Upload{Name: "broken.pdf", Data: []byte("not a pdf")})

		if m.warning == "" {
			t.Error("expected a warning for a broken document")
		}
		if m.eng.Mode() != engine.Paused {
			t.Error("failed ingest changed the playback mode")
		}
	})
}
