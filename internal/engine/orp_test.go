package engine

import "testing"

func TestORPPosition(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected int
	}{
		{"single char", "a", 0},
		{"two chars", "ab", 1},
		{"three chars", "abc", 1},
		{"five chars", "abcde", 1},
		{"six chars", "abcdef", 2},
		{"nine chars", "abcdefghi", 3},
		{"twelve chars", "abcdefghijkl", 4},
		{"empty string", "", 0},
		{"multibyte runes", "héllo", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ORPPosition(tt.word)
			if result != tt.expected {
				t.Errorf("ORPPosition(%q) = %v, want %v", tt.word, result, tt.expected)
			}
		})
	}
}
