package projects

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talk-search-api/core/domain"
	apperrors "talk-search-api/core/errors"
)

func TestDefaultRegistry_BuildURL(t *testing.T) {
	r := NewDefaultRegistry()

	got, err := r.BuildURL("/projects/vbkostov/eclipsing-binary-patrol/talk/123", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "https://exofop.ipac.caltech.edu/tess/target.php?id=12345678#open=_gaia-dr3-var|_gaia-dr3|_tce|_gaia-dr3-xmatch-var|_tess-eb|_asas-sn|simbad|_vsx", got)

	got, err = r.BuildURL("/projects/gaia-zooniverse/gaia-vari/classify", "4111834567779557376")
	require.NoError(t, err)
	assert.Contains(t, got, "id=Gaia%20DR3%204111834567779557376#open=")
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewDefaultRegistry()

	link, ok := r.Lookup("/projects/gaia-zooniverse/gaia-vari")
	require.True(t, ok)
	assert.Equal(t, "sourceid", link.HeaderName)

	_, ok = r.Lookup("/projects/ajnorton/superwasp-variable-stars")
	assert.False(t, ok)
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	r, err := NewRegistry([]domain.ProjectLink{
		{PathPrefix: "/projects/a", HeaderName: "first", URLTemplate: "https://one/{value}"},
		{PathPrefix: "/projects/a/b", HeaderName: "second", URLTemplate: "https://two/{value}"},
	})
	require.NoError(t, err)

	link, ok := r.Lookup("/projects/a/b/talk")
	require.True(t, ok)
	assert.Equal(t, "first", link.HeaderName)
}

func TestRegistry_BuildURL_Errors(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.BuildURL("/projects/unknown", "1")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = r.BuildURL("/projects/vbkostov/eclipsing-binary-patrol", "  ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegistry_EscapesValue(t *testing.T) {
	r, err := NewRegistry([]domain.ProjectLink{
		{PathPrefix: "/p", HeaderName: "id", URLTemplate: "https://x/target/{value}"},
	})
	require.NoError(t, err)

	got, err := r.BuildURL("/p", "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "https://x/target/a%2Fb%20c", got)
}

func TestNewRegistry_Validation(t *testing.T) {
	_, err := NewRegistry([]domain.ProjectLink{{PathPrefix: "", URLTemplate: "https://x/{value}"}})
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewRegistry([]domain.ProjectLink{{PathPrefix: "/p", URLTemplate: "https://x/"}})
	assert.True(t, apperrors.IsValidation(err))
}

func TestParse(t *testing.T) {
	data := []byte(`
projects:
  - path_prefix: /projects/owner/one
    header_name: TIC_ID
    url_template: https://example.org/{value}
  - path_prefix: /projects/owner/two
    header_name: sourceid
    url_template: https://example.org/gaia/{value}
`)

	r, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, r.Links(), 2)

	got, err := r.BuildURL("/projects/owner/two/talk", "42")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/gaia/42", got)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	r, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, r.Links(), len(DefaultLinks))

	path := filepath.Join(t.TempDir(), "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - path_prefix: /p\n    header_name: id\n    url_template: https://x/{value}\n"), 0o600))

	r, err = LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, r.Links(), 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_RepositoryDefaults(t *testing.T) {
	r, err := LoadFile(filepath.Join("..", "..", "configs", "project_links.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLinks, r.Links())
}
