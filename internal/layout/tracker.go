package layout

import "sync"

// ResizeSource delivers window resize notifications. Subscribe returns the
// matching unsubscribe function.
type ResizeSource interface {
	OnResize(fn func()) (unsubscribe func())
}

// WindowSize reports the current raw window size.
type WindowSize func() (width, height float64)

// Tracker owns the graph viewport. The viewport only changes through
// HandleResize, which is what Mount wires to resize events.
type Tracker struct {
	vp       Viewport
	onChange func(Viewport)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithViewportChange registers a callback invoked after every resize.
func WithViewportChange(fn func(Viewport)) TrackerOption {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker starts from the largest usable viewport.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{vp: Viewport{Width: MaxWidth, Height: MaxHeight}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Viewport returns the current usable viewport.
func (t *Tracker) Viewport() Viewport {
	return t.vp
}

// HandleResize recomputes the usable viewport from a raw window size.
func (t *Tracker) HandleResize(windowWidth, windowHeight float64) Viewport {
	t.vp = Usable(windowWidth, windowHeight)
	if t.onChange != nil {
		t.onChange(t.vp)
	}
	return t.vp
}

// Mount measures the window once, then follows resize events until the
// returned function is called. Calling it more than once is safe.
func (t *Tracker) Mount(src ResizeSource, size WindowSize) (unmount func()) {
	update := func() { t.HandleResize(size()) }
	update()
	unsubscribe := src.OnResize(update)

	var once sync.Once
	return func() { once.Do(unsubscribe) }
}
