// Package content holds the portfolio copy: biography, projects and timeline,
// with separate copy for each display mode.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iiroan/folio/internal/prefs"
)

//go:embed content.yaml
var defaultDocument []byte

// Profile is the whole content document.
type Profile struct {
	Name     string               `yaml:"name"`
	Role     string               `yaml:"role"`
	Location string               `yaml:"location"`
	Links    []Link               `yaml:"links"`
	Headline PerMode[string]      `yaml:"headline"`
	Bio      PerMode[string]      `yaml:"bio"`
	Projects []Project            `yaml:"projects"`
	Timeline PerMode[[]Milestone] `yaml:"timeline"`
}

// PerMode holds one value per display mode.
type PerMode[T any] struct {
	Business T `yaml:"business"`
	Party    T `yaml:"party"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Project is one entry of the gallery.
type Project struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	URL     string   `yaml:"url"`
	Tags    []string `yaml:"tags"`
}

// Milestone is one timeline entry.
type Milestone struct {
	Year   string `yaml:"year"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// Page is the copy for a single display mode.
type Page struct {
	Mode     prefs.DisplayMode
	Name     string
	Role     string
	Location string
	Links    []Link
	Headline string
	Bio      string
	Projects []Project
	Timeline []Milestone
}

// Default returns the built-in profile.
func Default() (*Profile, error) {
	return Parse(defaultDocument)
}

// Load reads a profile from path, or the built-in profile when path is empty.
func Load(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return Parse(data)
}

// Parse decodes a content document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("content: name is required")
	}
	return &p, nil
}

// Select returns the copy for mode. Empty party copy falls back to the
// business copy field by field.
func (p *Profile) Select(mode prefs.DisplayMode) Page {
	page := Page{
		Mode:     mode,
		Name:     p.Name,
		Role:     p.Role,
		Location: p.Location,
		Links:    p.Links,
		Projects: p.Projects,
		Headline: p.Headline.Business,
		Bio:      p.Bio.Business,
		Timeline: p.Timeline.Business,
	}
	if mode != prefs.Party {
		return page
	}
	if strings.TrimSpace(p.Headline.Party) != "" {
		page.Headline = p.Headline.Party
	}
	if strings.TrimSpace(p.Bio.Party) != "" {
		page.Bio = p.Bio.Party
	}
	if len(p.Timeline.Party) > 0 {
		page.Timeline = p.Timeline.Party
	}
	return page
}

// FindProject returns the project whose name matches, ignoring case.
func (p *Profile) FindProject(name string) (Project, bool) {
	for _, project := range p.Projects {
		if strings.EqualFold(project.Name, strings.TrimSpace(name)) {
			return project, true
		}
	}
	return Project{}, false
}
