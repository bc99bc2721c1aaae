// Package content holds the static copy of the portfolio page: sections,
// skills and the text of every content block.
package content

import (
	"github.com/sdorani/portfolio/internal/layout"
)

// Site is the whole page.
type Site struct {
	Brand     string    `koanf:"brand"`
	Owner     string    `koanf:"owner"`
	Sections  []Section `koanf:"sections"`
	Hero      Hero      `koanf:"hero"`
	About     About     `koanf:"about"`
	Skills    Skills    `koanf:"skills"`
	Projects  Projects  `koanf:"projects"`
	Mentoring Mentoring `koanf:"mentoring"`
	Pricing   Pricing   `koanf:"pricing"`
	Learning  Learning  `koanf:"learning"`
	Contact   Contact   `koanf:"contact"`
	Footer    string    `koanf:"footer"`
}

// Section is a navigable block of the page. ID doubles as the HTML anchor.
type Section struct {
	ID    string `koanf:"id"`
	Label string `koanf:"label"`
}

type Link struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
	Icon  string `koanf:"icon"`
}

type Image struct {
	Src string `koanf:"src"`
	Alt string `koanf:"alt"`
}

type Hero struct {
	Heading string `koanf:"heading"`
	Tagline string `koanf:"tagline"`
	CTA     Link   `koanf:"cta"`
}

// About paragraphs are Markdown.
type About struct {
	Heading           string   `koanf:"heading"`
	Image             Image    `koanf:"image"`
	Paragraphs        []string `koanf:"paragraphs"`
	CompetenciesTitle string   `koanf:"competencies_title"`
	Competencies      []string `koanf:"competencies"`
}

// SkillItem is one node of the skill graph. Level runs from 0 to 100.
type SkillItem struct {
	Name  string `koanf:"name"`
	Level int    `koanf:"level"`
}

type Skills struct {
	Heading string      `koanf:"heading"`
	Items   []SkillItem `koanf:"items"`
}

// Card is a titled block with an icon, used by projects and learning.
type Card struct {
	Icon        string `koanf:"icon"`
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	URL         string `koanf:"url"`
}

type Projects struct {
	Heading string `koanf:"heading"`
	Items   []Card `koanf:"items"`
}

type Mentoring struct {
	Heading       string   `koanf:"heading"`
	ApproachTitle string   `koanf:"approach_title"`
	Approach      []string `koanf:"approach"`
	AreasTitle    string   `koanf:"areas_title"`
	Areas         []string `koanf:"areas"`
}

// Plan is a priced service offering.
type Plan struct {
	Icon     string   `koanf:"icon"`
	Title    string   `koanf:"title"`
	Price    string   `koanf:"price"`
	Duration string   `koanf:"duration"`
	Features []string `koanf:"features"`
	CTA      string   `koanf:"cta"`
}

type Pricing struct {
	Heading string `koanf:"heading"`
	Intro   string `koanf:"intro"`
	Plans   []Plan `koanf:"plans"`
}

type Learning struct {
	Heading string `koanf:"heading"`
	Intro   string `koanf:"intro"`
	Items   []Card `koanf:"items"`
	Outro   string `koanf:"outro"`
}

type Contact struct {
	Heading string `koanf:"heading"`
	Body    string `koanf:"body"`
	Email   string `koanf:"email"`
	CTA     string `koanf:"cta"`
	Links   []Link `koanf:"links"`
}

// SectionIDs returns the section anchors in page order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		ids[i] = sec.ID
	}
	return ids
}

// SkillNodes converts the skill list into layout input, keeping order.
func (s *Site) SkillNodes() []layout.Skill {
	nodes := make([]layout.Skill, len(s.Skills.Items))
	for i, item := range s.Skills.Items {
		nodes[i] = layout.Skill{Name: item.Name, Level: item.Level}
	}
	return nodes
}

// Mailto returns the contact link for the configured address.
func (c Contact) Mailto() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}
