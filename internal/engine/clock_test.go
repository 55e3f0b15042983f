package engine

import (
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		name      string
		wpm       float64
		chunkSize int
		expected  time.Duration
	}{
		{"300 wpm single word", 300, 1, 200 * time.Millisecond},
		{"600 wpm single word", 600, 1, 100 * time.Millisecond},
		{"100 wpm single word", 100, 1, 600 * time.Millisecond},
		{"300 wpm three words", 300, 3, 600 * time.Millisecond},
		{"900 wpm single word", 900, 1, 66666666 * time.Nanosecond}, // ~66.67ms
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Interval(tt.wpm, tt.chunkSize)
			diff := result - tt.expected
			if diff < 0 {
				diff = -diff
			}
			if diff > time.Millisecond {
				t.Errorf("Interval(%v, %d) = %v, want %v", tt.wpm, tt.chunkSize, result, tt.expected)
			}
		})
	}
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(200 * time.Millisecond)

	if n := c.Advance(100 * time.Millisecond); n != 0 {
		t.Errorf("Advance(100ms) = %d, want 0", n)
	}
	if n := c.Advance(100 * time.Millisecond); n != 1 {
		t.Errorf("Advance(100ms) = %d, want 1 (accumulated one interval)", n)
	}
	if n := c.Advance(0); n != 0 {
		t.Errorf("Advance(0) = %d, want 0 after firing", n)
	}
}

func TestClockAdvanceMultipleIntervals(t *testing.T) {
	c := NewClock(200 * time.Millisecond)

	if n := c.Advance(time.Second); n != 5 {
		t.Errorf("Advance(1s) = %d, want 5", n)
	}
}

func TestClockPartialProgressSurvivesRecompute(t *testing.T) {
	c := NewClock(200 * time.Millisecond)
	c.Advance(150 * time.Millisecond)

	// Lengthening keeps the 150ms already earned.
	c.SetInterval(300 * time.Millisecond)
	if n := c.Advance(150 * time.Millisecond); n != 1 {
		t.Errorf("Advance after lengthening = %d, want 1", n)
	}
}

func TestClockConsumeOnRecompute(t *testing.T) {
	c := NewClock(200 * time.Millisecond)
	c.Advance(150 * time.Millisecond)

	// Shortening below the accumulated total fires immediately rather than
	// waiting a full new interval on top of the old partial one.
	c.SetInterval(100 * time.Millisecond)
	if n := c.Advance(0); n != 1 {
		t.Errorf("Advance(0) after shortening = %d, want 1", n)
	}
	// 50ms remains accumulated.
	if n := c.Advance(50 * time.Millisecond); n != 1 {
		t.Errorf("Advance(50ms) = %d, want 1", n)
	}
}
