//go:build js && wasm

// Command spywasm runs in the browser next to the portfolio page. It keeps
// the navigation highlight in sync with scrolling and redraws the skill
// graph when the window is resized.
//
//	GOOS=js GOARCH=wasm go build -o dist/wasm/spy.wasm ./cmd/spywasm
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/sdorani/portfolio/internal/layout"
	"github.com/sdorani/portfolio/internal/lifecycle"
	"github.com/sdorani/portfolio/internal/scrollspy"
	"github.com/sdorani/portfolio/internal/skillgraph"
)

func main() {
	window := js.Global()
	document := window.Get("document")
	events := &windowEvents{target: window}

	nav := scrollspy.New(sectionIDs(document), scrollspy.MeasureFunc(func(id string) (scrollspy.Rect, bool) {
		return measure(document, id)
	}), scrollspy.WithChange(func(_, next string) {
		highlight(document, next)
	}))
	highlight(document, nav.Active())

	page := lifecycle.New()
	page.Add(nav.Mount(events))

	skills := readSkills(document)
	tracker := layout.NewTracker(layout.WithViewportChange(func(vp layout.Viewport) {
		redraw(window, document, skills, vp)
	}))
	page.Add(tracker.Mount(events, func() (float64, float64) {
		return window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
	}))

	page.Add(bindMobileMenu(document))

	// pagehide also fires when the page enters the back/forward cache; the
	// program keeps running then so the restored page stays live.
	onHide := js.FuncOf(func(_ js.Value, args []js.Value) any {
		persisted := len(args) > 0 && args[0].Get("persisted").Truthy()
		page.Hide(persisted)
		return nil
	})
	window.Call("addEventListener", "pagehide", onHide)
	page.Add(func() {
		window.Call("removeEventListener", "pagehide", onHide)
		onHide.Release()
	})

	<-page.Done()
}

// windowEvents adapts window event listeners to the scroll and resize
// sources the controllers mount on.
type windowEvents struct {
	target js.Value
}

func (w *windowEvents) OnScroll(fn func()) func() {
	return w.listen("scroll", fn)
}

func (w *windowEvents) OnResize(fn func()) func() {
	return w.listen("resize", fn)
}

func (w *windowEvents) listen(event string, fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("passive", true)
	w.target.Call("addEventListener", event, cb, opts)
	return func() {
		w.target.Call("removeEventListener", event, cb, opts)
		cb.Release()
	}
}

func sectionIDs(document js.Value) []string {
	links := document.Call("querySelectorAll", "#site-nav a[data-section]")
	ids := make([]string, 0, links.Length())
	for i := 0; i < links.Length(); i++ {
		ids = append(ids, links.Index(i).Get("dataset").Get("section").String())
	}
	return ids
}

// measure reports a section's rect; detached sections are unmeasurable.
func measure(document js.Value, id string) (scrollspy.Rect, bool) {
	el := document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() || !el.Get("isConnected").Bool() {
		return scrollspy.Rect{}, false
	}
	rect := el.Call("getBoundingClientRect")
	return scrollspy.Rect{Top: rect.Get("top").Float(), Bottom: rect.Get("bottom").Float()}, true
}

func highlight(document js.Value, active string) {
	links := document.Call("querySelectorAll", "#site-nav a[data-section]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		on := link.Get("dataset").Get("section").String() == active
		link.Get("classList").Call("toggle", "active", on)
	}
}

func readSkills(document js.Value) []layout.Skill {
	el := document.Call("getElementById", "skill-data")
	if el.IsNull() {
		return nil
	}
	var skills []layout.Skill
	if err := json.Unmarshal([]byte(el.Get("textContent").String()), &skills); err != nil {
		js.Global().Get("console").Call("warn", "skill data: "+err.Error())
		return nil
	}
	return skills
}

func redraw(window, document js.Value, skills []layout.Skill, vp layout.Viewport) {
	svg, err := skillgraph.String(layout.Build(skills, vp))
	if err != nil {
		window.Get("console").Call("warn", err.Error())
		return
	}
	if canvas := document.Call("querySelector", "#skill-graph .graph-canvas"); !canvas.IsNull() {
		canvas.Set("innerHTML", svg)
	}
	if caption := document.Call("querySelector", "#skill-graph .graph-debug"); !caption.IsNull() {
		w, h := window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
		caption.Set("textContent", skillgraph.DebugInfo(w, h, vp))
	}
}

// bindMobileMenu closes the disclosure menu when a link or the close button
// is clicked. It returns the function that unbinds the handlers.
func bindMobileMenu(document js.Value) func() {
	menu := document.Call("getElementById", "mobile-menu")
	if menu.IsNull() {
		return func() {}
	}
	closeFn := js.FuncOf(func(js.Value, []js.Value) any {
		menu.Call("removeAttribute", "open")
		return nil
	})
	targets := menu.Call("querySelectorAll", "a, .menu-close")
	for i := 0; i < targets.Length(); i++ {
		targets.Index(i).Call("addEventListener", "click", closeFn)
	}
	return func() {
		for i := 0; i < targets.Length(); i++ {
			targets.Index(i).Call("removeEventListener", "click", closeFn)
		}
		closeFn.Release()
	}
}
