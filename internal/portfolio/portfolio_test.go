package portfolio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsHaveConsistentDiagrams(t *testing.T) {
	for _, p := range Projects() {
		t.Run(p.Slug, func(t *testing.T) {
			require.NotEmpty(t, p.Nodes)
			for _, e := range p.Edges {
				_, ok := p.Node(e.From)
				assert.True(t, ok, "edge from unknown node %q", e.From)
				_, ok = p.Node(e.To)
				assert.True(t, ok, "edge to unknown node %q", e.To)
			}
		})
	}
}

func TestProjectBySlug(t *testing.T) {
	p, err := ProjectBySlug("spark-quality-gates")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/guna-thota/spark-quality-gates", p.RepoURL)

	_, err = ProjectBySlug("nope")
	assert.True(t, errors.Is(err, ErrUnknownProject))
}

func TestProjectsReturnsCopy(t *testing.T) {
	ps := Projects()
	ps[0].Name = "changed"
	assert.NotEqual(t, "changed", Projects()[0].Name)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "profile.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile().Email, p.Email)
}

func TestLoadProfile_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `
name: Someone Else
email: someone@example.com
links:
  - label: Blog
    url: https://example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", p.Name)
	assert.Equal(t, "mailto:someone@example.com", p.MailTo())
	assert.Equal(t, DefaultProfile().Role, p.Role)
	require.Len(t, p.Links, 1)
	assert.Equal(t, "Blog", p.Links[0].Label)
}

func TestLoadProfile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}
