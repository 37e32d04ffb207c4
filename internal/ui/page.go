package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
)

// RenderPage lays out a portfolio page for the terminal using the styles of
// the active tags.
func RenderPage(page content.Page, tags prefs.Tags, width int) string {
	if width <= 0 {
		width = terminalWidth()
	}
	if width > 100 {
		width = 100
	}

	sections := []string{
		Title.Render(page.Name),
	}
	if page.Role != "" || page.Location != "" {
		sections = append(sections, MutedStyle.Render(strings.Trim(page.Role+" · "+page.Location, " ·")))
	}
	if page.Headline != "" {
		sections = append(sections, Tagline.Render(page.Headline))
	}
	sections = append(sections, strings.Join(ModeBadges(tags), " "))

	if bio := RenderMarkdown(page.Bio, width, tags, CurrentPreferences.NoColor); bio != "" {
		sections = append(sections, bio)
	}

	if len(page.Projects) > 0 {
		sections = append(sections, SectionStyle.Render("Projects"))
		for _, p := range page.Projects {
			line := PrimaryStyle().Render(p.Name)
			if p.Summary != "" {
				line += " " + MutedStyle.Render(ansi.Truncate(p.Summary, max(20, width-len(p.Name)-4), "..."))
			}
			sections = append(sections, line)
			var extra []string
			for _, tag := range p.Tags {
				extra = append(extra, Badge(tag))
			}
			if p.URL != "" {
				extra = append(extra, LinkStyle.Render(p.URL))
			}
			if len(extra) > 0 {
				sections = append(sections, "  "+strings.Join(extra, " "))
			}
		}
	}

	if len(page.Timeline) > 0 {
		sections = append(sections, SectionStyle.Render("Timeline"))
		for _, m := range page.Timeline {
			line := fmt.Sprintf("%s  %s", Bold.Render(m.Year), m.Title)
			sections = append(sections, line)
			if m.Detail != "" {
				sections = append(sections, MutedStyle.Render("      "+m.Detail))
			}
		}
	}

	if len(page.Links) > 0 {
		sections = append(sections, SectionStyle.Render("Links"))
		for _, l := range page.Links {
			sections = append(sections, fmt.Sprintf("%-8s %s", l.Label, LinkStyle.Render(l.URL)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ModeBadges renders the active tags as badges, appearance first.
func ModeBadges(tags prefs.Tags) []string {
	out := make([]string, 0, 2)
	for _, tag := range tags.List() {
		out = append(out, Badge(tag))
	}
	return out
}

// DescribeSnapshot renders the preference pair with its resolution, e.g.
// "system (dark) · business".
func DescribeSnapshot(s prefs.Snapshot) string {
	appearance := string(s.Appearance)
	if s.Appearance == prefs.System {
		appearance += " (" + string(s.Resolved) + ")"
	}
	return appearance + " · " + string(s.Display)
}
