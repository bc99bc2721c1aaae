// Package lifecycle ties mounted page controllers to the document's
// pagehide events.
package lifecycle

import "sync"

// Page collects the unmount functions of everything bound to a document.
type Page struct {
	mu       sync.Mutex
	unmounts []func()
	done     chan struct{}
	closed   bool
}

// New returns a page with nothing mounted.
func New() *Page {
	return &Page{done: make(chan struct{})}
}

// Add registers an unmount function. Adding to a page that has already been
// torn down runs fn immediately.
func (p *Page) Add(fn func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		fn()
		return
	}
	p.unmounts = append(p.unmounts, fn)
	p.mu.Unlock()
}

// Hide handles a pagehide event. A page stored in the back/forward cache
// (persisted) stays mounted so it works again when restored. Otherwise every
// unmount runs once, last added first, and Done is closed. It reports
// whether the page was torn down by this call.
func (p *Page) Hide(persisted bool) bool {
	if persisted {
		return false
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.closed = true
	unmounts := p.unmounts
	p.unmounts = nil
	p.mu.Unlock()

	for i := len(unmounts) - 1; i >= 0; i-- {
		unmounts[i]()
	}
	close(p.done)
	return true
}

// Done is closed once the page has been torn down.
func (p *Page) Done() <-chan struct{} {
	return p.done
}
