// Package scrollspy tracks which page section is currently in view.
package scrollspy

import "sync"

// DefaultThreshold is the distance from the top of the viewport, in CSS
// pixels, that a section has to straddle to count as active.
const DefaultThreshold = 100

// Rect is the vertical extent of a section relative to the viewport top.
type Rect struct {
	Top    float64
	Bottom float64
}

// Contains reports whether the rect straddles y.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Measurer looks up the on-screen rect of a section. ok is false when the
// section cannot be measured, for example before it is attached.
type Measurer interface {
	Measure(id string) (r Rect, ok bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(id string) (Rect, bool)

// Measure implements Measurer.
func (f MeasureFunc) Measure(id string) (Rect, bool) { return f(id) }

// ScrollSource delivers scroll notifications. Subscribe returns the matching
// unsubscribe function.
type ScrollSource interface {
	OnScroll(fn func()) (unsubscribe func())
}

// Resolve returns the first id, in list order, whose rect straddles the
// threshold. Sections that cannot be measured never match.
func Resolve(ids []string, threshold float64, m Measurer) (string, bool) {
	for _, id := range ids {
		r, ok := m.Measure(id)
		if ok && r.Contains(threshold) {
			return id, true
		}
	}
	return "", false
}

// Navigator owns the active section. The value only changes through
// HandleScroll.
type Navigator struct {
	ids       []string
	threshold float64
	measurer  Measurer
	active    string
	onChange  func(prev, next string)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(px float64) Option {
	return func(n *Navigator) { n.threshold = px }
}

// WithInitial sets the section reported before the first match.
func WithInitial(id string) Option {
	return func(n *Navigator) { n.active = id }
}

// WithChange registers a callback invoked whenever the active section
// changes.
func WithChange(fn func(prev, next string)) Option {
	return func(n *Navigator) { n.onChange = fn }
}

// New returns a Navigator over the given section ids. The first id is
// active until a scroll update says otherwise.
func New(ids []string, m Measurer, opts ...Option) *Navigator {
	n := &Navigator{
		ids:       append([]string(nil), ids...),
		threshold: DefaultThreshold,
		measurer:  m,
	}
	if len(ids) > 0 {
		n.active = ids[0]
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Active returns the id of the section currently in view.
func (n *Navigator) Active() string {
	return n.active
}

// Sections returns the tracked section ids in page order.
func (n *Navigator) Sections() []string {
	return append([]string(nil), n.ids...)
}

// HandleScroll re-measures the sections and updates the active one. When
// nothing matches, the previous section stays active.
func (n *Navigator) HandleScroll() (changed bool) {
	id, ok := Resolve(n.ids, n.threshold, n.measurer)
	if !ok || id == n.active {
		return false
	}
	prev := n.active
	n.active = id
	if n.onChange != nil {
		n.onChange(prev, id)
	}
	return true
}

// Mount runs one update for the initial layout and then follows scroll
// events until the returned function is called. Calling it more than once
// is safe.
func (n *Navigator) Mount(src ScrollSource) (unmount func()) {
	n.HandleScroll()
	unsubscribe := src.OnScroll(func() { n.HandleScroll() })

	var once sync.Once
	return func() { once.Do(unsubscribe) }
}
