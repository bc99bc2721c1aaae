package server

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/sdorani/portfolio/internal/content"
	"github.com/sdorani/portfolio/internal/layout"
	"github.com/sdorani/portfolio/internal/skillgraph"
	"github.com/sdorani/portfolio/web"
)

// PageData is what index.html renders.
type PageData struct {
	Site   *content.Site
	Active string
	Graph  GraphData
	Skills []layout.Skill
	// Base prefixes asset URLs: "/" when served, "" for a static export.
	Base string
	// GraphURL serves resized graphs when the wasm program is unavailable.
	// Empty disables the fallback.
	GraphURL string
}

// FirstSection is the anchor of the brand link.
func (p PageData) FirstSection() string {
	if len(p.Site.Sections) == 0 {
		return ""
	}
	return p.Site.Sections[0].ID
}

// GraphData is what graph.html renders.
type GraphData struct {
	WindowWidth  float64
	WindowHeight float64
	Viewport     layout.Viewport
	SVG          template.HTML
	Debug        string
}

// Renderer turns site content into HTML.
type Renderer struct {
	site *content.Site
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(site *content.Site) (*Renderer, error) {
	return newRenderer(site, web.FS)
}

func newRenderer(site *content.Site, fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": content.Markdown,
		"inline":   content.Inline,
		"delay": func(i int) template.CSS {
			return template.CSS(fmt.Sprintf("%.1fs", float64(i)*0.1))
		},
	}).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{site: site, tmpl: tmpl}, nil
}

// Template exposes the parsed templates for gin.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Graph lays the skills out for a browser window of the given size.
func (r *Renderer) Graph(windowWidth, windowHeight float64) (GraphData, error) {
	vp := layout.Usable(windowWidth, windowHeight)
	svg, err := skillgraph.String(layout.Build(r.site.SkillNodes(), vp))
	if err != nil {
		return GraphData{}, err
	}
	return GraphData{
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		Viewport:     vp,
		SVG:          template.HTML(svg),
		Debug:        skillgraph.DebugInfo(windowWidth, windowHeight, vp),
	}, nil
}

// Page builds the full page data. The first section is active: the browser
// takes over highlighting once it starts scrolling.
func (r *Renderer) Page(windowWidth, windowHeight float64, base string) (PageData, error) {
	graph, err := r.Graph(windowWidth, windowHeight)
	if err != nil {
		return PageData{}, err
	}
	data := PageData{
		Site:     r.site,
		Graph:    graph,
		Skills:   r.site.SkillNodes(),
		Base:     base,
		GraphURL: base + "graph",
	}
	data.Active = data.FirstSection()
	return data, nil
}

// WritePage renders index.html.
func (r *Renderer) WritePage(w io.Writer, data PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
