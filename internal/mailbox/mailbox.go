// Package mailbox provides the single-slot hand-off used to pass uploaded
// document bytes from an arbitrary producer goroutine to the frame loop.
package mailbox

import "sync"

// Upload is a document delivered by the environment. Name carries the
// original filename so the parser can dispatch on its extension.
type Upload struct {
	Name string
	Data []byte
}

// Box is a mutex-guarded single slot. A producer overwrites any pending
// upload (last write wins); the consumer takes and clears atomically. The
// zero value is ready to use.
type Box struct {
	mu      sync.Mutex
	upload  Upload
	pending bool
}

// Put stores an upload, replacing any pending one.
func (b *Box) Put(name string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.upload = Upload{Name: name, Data: data}
	b.pending = true
}

// Take removes and returns the pending upload, if any.
func (b *Box) Take() (Upload, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.pending {
		return Upload{}, false
	}
	u := b.upload
	b.upload = Upload{}
	b.pending = false
	return u, true
}
