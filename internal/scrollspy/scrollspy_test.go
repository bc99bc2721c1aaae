package scrollspy

import (
	"reflect"
	"testing"
)

var sections = []string{"home", "about", "skills", "projects", "contact"}

type page struct {
	rects    map[string]Rect
	handlers map[int]func()
	next     int
}

func newPage(rects map[string]Rect) *page {
	return &page{rects: rects, handlers: make(map[int]func())}
}

func (p *page) Measure(id string) (Rect, bool) {
	r, ok := p.rects[id]
	return r, ok
}

func (p *page) OnScroll(fn func()) func() {
	id := p.next
	p.next++
	p.handlers[id] = fn
	return func() { delete(p.handlers, id) }
}

func (p *page) scroll(rects map[string]Rect) {
	p.rects = rects
	for _, fn := range p.handlers {
		fn()
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		rects  map[string]Rect
		want   string
		wantOK bool
	}{
		{
			name:   "single match",
			rects:  map[string]Rect{"home": {-900, -10}, "about": {-10, 700}, "skills": {700, 1400}},
			want:   "about",
			wantOK: true,
		},
		{
			name:   "first in list order wins",
			rects:  map[string]Rect{"about": {50, 150}, "skills": {100, 100}},
			want:   "about",
			wantOK: true,
		},
		{
			name:   "edges are inclusive",
			rects:  map[string]Rect{"projects": {100, 100}},
			want:   "projects",
			wantOK: true,
		},
		{
			name:  "gap between sections",
			rects: map[string]Rect{"home": {-900, 90}, "about": {110, 900}},
		},
		{
			name: "nothing attached",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(sections, DefaultThreshold, newPage(tt.rects))
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Resolve = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNavigatorStartsOnFirstSection(t *testing.T) {
	n := New(sections, newPage(nil))
	if got := n.Active(); got != "home" {
		t.Fatalf("initial active = %q, want home", got)
	}
	if New(nil, newPage(nil)).Active() != "" {
		t.Fatal("navigator without sections should have no active section")
	}
}

func TestNavigatorKeepsPreviousWhenNothingMatches(t *testing.T) {
	p := newPage(map[string]Rect{"skills": {0, 800}})
	n := New(sections, p)
	unmount := n.Mount(p)
	defer unmount()

	if got := n.Active(); got != "skills" {
		t.Fatalf("active after mount = %q, want skills", got)
	}

	p.scroll(map[string]Rect{"skills": {-800, 50}, "projects": {150, 900}})
	if got := n.Active(); got != "skills" {
		t.Fatalf("active after unmatched scroll = %q, want skills", got)
	}
}

func TestNavigatorChangeCallback(t *testing.T) {
	var transitions [][2]string
	p := newPage(nil)
	n := New(sections, p, WithChange(func(prev, next string) {
		transitions = append(transitions, [2]string{prev, next})
	}))
	defer n.Mount(p)()

	p.scroll(map[string]Rect{"about": {0, 500}})
	p.scroll(map[string]Rect{"about": {-10, 490}})
	p.scroll(map[string]Rect{"contact": {20, 400}})

	want := [][2]string{{"home", "about"}, {"about", "contact"}}
	if !reflect.DeepEqual(transitions, want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
}

func TestNavigatorUnmount(t *testing.T) {
	p := newPage(nil)
	n := New(sections, p)
	unmount := n.Mount(p)
	if len(p.handlers) != 1 {
		t.Fatalf("expected one scroll handler, got %d", len(p.handlers))
	}

	unmount()
	unmount()
	if len(p.handlers) != 0 {
		t.Fatalf("scroll handler still registered after unmount")
	}

	p.scroll(map[string]Rect{"contact": {0, 500}})
	if got := n.Active(); got != "home" {
		t.Fatalf("active changed after unmount: %q", got)
	}
}

func TestNavigatorOptions(t *testing.T) {
	m := MeasureFunc(func(id string) (Rect, bool) {
		if id == "projects" {
			return Rect{Top: 150, Bottom: 300}, true
		}
		return Rect{}, false
	})
	n := New(sections, m, WithThreshold(200), WithInitial("contact"))
	if got := n.Active(); got != "contact" {
		t.Fatalf("initial active = %q, want contact", got)
	}
	if !n.HandleScroll() || n.Active() != "projects" {
		t.Fatalf("active = %q, want projects", n.Active())
	}
	if n.HandleScroll() {
		t.Fatal("second update with same layout reported a change")
	}
}

func TestSectionsIsACopy(t *testing.T) {
	ids := []string{"a", "b"}
	n := New(ids, newPage(nil))
	ids[0] = "z"
	got := n.Sections()
	got[1] = "y"
	if !reflect.DeepEqual(n.Sections(), []string{"a", "b"}) {
		t.Fatalf("sections mutated: %v", n.Sections())
	}
}
