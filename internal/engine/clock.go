package engine

import "time"

// Interval returns the wall-clock duration between chunk reveals for the
// given words-per-minute rate and chunk size.
func Interval(wpm float64, chunkSize int) time.Duration {
	return time.Duration(60.0 / wpm * float64(chunkSize) * float64(time.Second))
}

// Clock accumulates elapsed wall-clock time against a repeating interval.
// It is a plain accumulator: it never reads the system clock itself.
type Clock struct {
	interval time.Duration
	acc      time.Duration
	pending  int
}

// NewClock returns a Clock firing every d.
func NewClock(d time.Duration) *Clock {
	return &Clock{interval: d}
}

// SetInterval changes the firing interval without discarding accumulated
// partial progress. Intervals that already fit the accumulated total fire
// immediately and are reported by the next Advance, so shortening the
// interval mid-chunk never waits a full new interval on top of the old one.
func (c *Clock) SetInterval(d time.Duration) {
	c.interval = d
	c.pending += c.drain()
}

// Advance adds elapsed to the accumulator and returns how many whole
// intervals fired during this call, including any fired by an interval
// change since the previous Advance. Normally 0 or 1; more if elapsed
// spans several intervals.
func (c *Clock) Advance(elapsed time.Duration) int {
	c.acc += elapsed
	n := c.pending + c.drain()
	c.pending = 0
	return n
}

func (c *Clock) drain() int {
	var n int
	for c.interval > 0 && c.acc >= c.interval {
		c.acc -= c.interval
		n++
	}
	return n
}
