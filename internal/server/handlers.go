package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sdorani/portfolio/internal/layout"
)

// Home page route
func (s *Server) handlePage(c *gin.Context) {
	w, h := s.window(c)
	data, err := s.renderer.Page(w, h, "/")
	if err != nil {
		s.log.Error().Err(err).Msg("building page")
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Skill graph for the browser's current window size. HTMX swaps the bare
// fragment into #skill-graph on resize; a plain visit gets the whole page
// drawn for that window.
func (s *Server) handleGraph(c *gin.Context) {
	w, h := s.window(c)
	if !isHTMXRequest(c.Request) {
		data, err := s.renderer.Page(w, h, "/")
		if err != nil {
			s.log.Error().Err(err).Msg("building page")
			c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
			return
		}
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	data, err := s.renderer.Graph(w, h)
	if err != nil {
		s.log.Error().Err(err).Msg("building graph")
		c.String(http.StatusInternalServerError, "Sorry, the graph could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, "graph.html", data)
}

type layoutResponse struct {
	Window    layout.Viewport `json:"window"`
	Viewport  layout.Viewport `json:"viewport"`
	Nodes     []layout.Node   `json:"nodes"`
	EdgeCount int             `json:"edge_count"`
}

// Base layout as JSON, without jitter.
func (s *Server) handleLayout(c *gin.Context) {
	w, h := s.window(c)
	vp := layout.Usable(w, h)
	g := layout.Build(s.site.SkillNodes(), vp)
	c.JSON(http.StatusOK, layoutResponse{
		Window:    layout.Viewport{Width: w, Height: h},
		Viewport:  vp,
		Nodes:     g.Nodes,
		EdgeCount: len(g.Edges),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// window reads the w and h query parameters, falling back to the configured
// default window for anything missing or unparsable.
func (s *Server) window(c *gin.Context) (float64, float64) {
	return queryFloat(c, "w", s.cfg.DefaultWindowWidth), queryFloat(c, "h", s.cfg.DefaultWindowHeight)
}

func queryFloat(c *gin.Context, key string, fallback float64) float64 {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
