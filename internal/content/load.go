package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed default.yaml
var defaultYAML []byte

// knownBlocks are the section anchors the page template renders. Section
// lists may reorder, relabel or drop them but not invent new ones.
var knownBlocks = map[string]bool{
	"home": true, "about": true, "skills": true, "projects": true,
	"mentoring": true, "pricing": true, "learning": true, "contact": true,
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

// Default returns the built-in site content.
func Default() (*Site, error) {
	return Load("")
}

// Load reads the built-in content and, when path is set, overlays the YAML
// file found there. Nested keys merge; lists in the file replace the
// built-in ones wholesale.
func Load(path string) (*Site, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading built-in content: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("accessing content %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
	}

	site := &Site{}
	if err := k.Unmarshal("", site); err != nil {
		return nil, fmt.Errorf("unmarshalling content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate checks the invariants the page relies on: unique, non-empty
// section anchors and named skills with levels in 0..100.
func (s *Site) Validate() error {
	if len(s.Sections) == 0 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(s.Sections))
	for i, sec := range s.Sections {
		id := strings.TrimSpace(sec.ID)
		if id == "" {
			return fmt.Errorf("%w: sections[%d] has an empty id", ErrInvalid, i)
		}
		if id != sec.ID {
			return fmt.Errorf("%w: section id %q has surrounding whitespace", ErrInvalid, sec.ID)
		}
		if strings.ContainsAny(id, " #") {
			return fmt.Errorf("%w: section id %q is not a valid anchor", ErrInvalid, sec.ID)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalid, id)
		}
		seen[id] = true
		if !knownBlocks[id] {
			return fmt.Errorf("%w: section %q has no matching page block", ErrInvalid, id)
		}
	}

	for i, item := range s.Skills.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: skills.items[%d] has no name", ErrInvalid, i)
		}
		if item.Level < 0 || item.Level > 100 {
			return fmt.Errorf("%w: skill %q level %d outside 0..100", ErrInvalid, item.Name, item.Level)
		}
	}
	return nil
}
