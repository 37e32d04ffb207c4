package ui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/iiroan/folio/internal/prefs"
)

var (
	mdMu sync.Mutex
	// Renderers are cached by style and wrap width; WithAutoStyle is avoided
	// because it queries the terminal, and the resolved tags already know
	// the background.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// MarkdownStyle returns the glamour standard style for tags.
func MarkdownStyle(tags prefs.Tags, noColor bool) string {
	switch {
	case noColor:
		return styles.NoTTYStyle
	case tags.Dark() && tags.Display == prefs.Party:
		return styles.PinkStyle
	case tags.Dark():
		return styles.DarkStyle
	default:
		return styles.LightStyle
	}
}

// RenderMarkdown renders md for the terminal. On renderer failure the source
// text is returned unchanged.
func RenderMarkdown(md string, width int, tags prefs.Tags, noColor bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := MarkdownStyle(tags, noColor)
	key := style + ":" + strconv.Itoa(width)

	mdMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			mdMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
