package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/folio/internal/prefs"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Projects)

	business := p.Select(prefs.Business)
	party := p.Select(prefs.Party)
	assert.NotEqual(t, business.Headline, party.Headline)
	assert.NotEqual(t, business.Bio, party.Bio)
	assert.Equal(t, business.Projects, party.Projects)
}

func TestSelect_PartyFallsBackToBusiness(t *testing.T) {
	p, err := Parse([]byte(`name: Ada
headline:
  business: Engineer
  party: Party engineer
bio:
  business: Serious bio
timeline:
  business:
    - year: "1843"
      title: Notes
`))
	require.NoError(t, err)

	page := p.Select(prefs.Party)
	assert.Equal(t, prefs.Party, page.Mode)
	assert.Equal(t, "Party engineer", page.Headline)
	assert.Equal(t, "Serious bio", page.Bio)
	require.Len(t, page.Timeline, 1)
	assert.Equal(t, "Notes", page.Timeline[0].Title)
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("role: nobody"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Grace\nprojects:\n  - name: COBOL\n    url: https://example.com\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.Name)

	project, ok := p.FindProject(" cobol ")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", project.URL)

	_, ok = p.FindProject("fortran")
	assert.False(t, ok)

	def, err := Load("")
	require.NoError(t, err)
	assert.NotEqual(t, "Grace", def.Name)
}
