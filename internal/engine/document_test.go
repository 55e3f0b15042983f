package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentence",
			input:    "Hello world this is a test",
			expected: []string{"Hello", "world", "this", "is", "a", "test"},
		},
		{
			name:     "multiple spaces",
			input:    "Hello    world     test",
			expected: []string{"Hello", "world", "test"},
		},
		{
			name:     "newlines and tabs",
			input:    "Hello\nworld\ttest",
			expected: []string{"Hello", "world", "test"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			input:    " \t\n  ",
			expected: []string{},
		},
		{
			name:     "punctuation stays attached",
			input:    "Hello, world! How are you?",
			expected: []string{"Hello,", "world!", "How", "are", "you?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Tokenize() length = %v, want %v", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("Tokenize()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
				if result[i] == "" {
					t.Errorf("Tokenize()[%d] is empty", i)
				}
			}
		})
	}
}

func TestBuildDocument(t *testing.T) {
	t.Run("drops empty pages preserving order", func(t *testing.T) {
		doc, err := BuildDocument([]string{"", "one two", "   \n", "three"})
		if err != nil {
			t.Fatalf("BuildDocument: %v", err)
		}
		if doc.PageCount() != 2 {
			t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
		}
		if got := strings.Join(doc.Pages[0], " "); got != "one two" {
			t.Errorf("page 0 = %q, want %q", got, "one two")
		}
		if got := strings.Join(doc.Pages[1], " "); got != "three" {
			t.Errorf("page 1 = %q, want %q", got, "three")
		}
	})

	t.Run("all pages empty", func(t *testing.T) {
		_, err := BuildDocument([]string{"", "  ", "\t\n"})
		if !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("err = %v, want ErrEmptyDocument", err)
		}
	})

	t.Run("no pages at all", func(t *testing.T) {
		_, err := BuildDocument(nil)
		if !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("err = %v, want ErrEmptyDocument", err)
		}
	})

}

func TestPlaceholder(t *testing.T) {
	doc := Placeholder()
	if doc.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", doc.PageCount())
	}
	if len(doc.Pages[0]) == 0 {
		t.Error("placeholder page has no words")
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := strings.Repeat("Hello world this is a test sentence with multiple words. ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(text)
	}
}
