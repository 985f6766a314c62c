// ABOUTME: Project external link registry
// ABOUTME: Resolves a project path to the subject field and external lookup URL configured for it

package projects

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"talk-search-api/core/domain"
	apperrors "talk-search-api/core/errors"
)

// ValuePlaceholder is replaced by the subject id in URL templates
const ValuePlaceholder = "{value}"

// DefaultLinks are used when no links file is configured
var DefaultLinks = []domain.ProjectLink{
	{
		PathPrefix:  "/projects/vbkostov/eclipsing-binary-patrol",
		HeaderName:  "TIC_ID",
		URLTemplate: "https://exofop.ipac.caltech.edu/tess/target.php?id={value}#open=_gaia-dr3-var|_gaia-dr3|_tce|_gaia-dr3-xmatch-var|_tess-eb|_asas-sn|simbad|_vsx",
	},
	{
		PathPrefix:  "/projects/gaia-zooniverse/gaia-vari",
		HeaderName:  "sourceid",
		URLTemplate: "https://exofop.ipac.caltech.edu/tess/target.php?id=Gaia%20DR3%20{value}#open=_gaia-dr3-xmatch-var|_asas-sn|simbad|_vsx|_gaia-dr3-var|_gaia-dr3",
	},
}

// Registry holds project link entries in declaration order
type Registry struct {
	links []domain.ProjectLink
}

// NewRegistry creates a registry from the given entries
func NewRegistry(links []domain.ProjectLink) (*Registry, error) {
	for i, l := range links {
		if l.PathPrefix == "" {
			return nil, &apperrors.ValidationError{Field: "path_prefix", Message: fmt.Sprintf("entry %d has no path prefix", i)}
		}
		if !strings.Contains(l.URLTemplate, ValuePlaceholder) {
			return nil, &apperrors.ValidationError{Field: "url_template", Message: fmt.Sprintf("entry %d must contain %s", i, ValuePlaceholder)}
		}
	}

	copied := make([]domain.ProjectLink, len(links))
	copy(copied, links)
	return &Registry{links: copied}, nil
}

// NewDefaultRegistry creates a registry from DefaultLinks
func NewDefaultRegistry() *Registry {
	r, _ := NewRegistry(DefaultLinks)
	return r
}

type linksFile struct {
	Projects []domain.ProjectLink `yaml:"projects"`
}

// LoadFile reads a YAML links file. An empty path yields the default registry.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return NewDefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to read project links file")
	}
	return Parse(data)
}

// Parse builds a registry from YAML content
func Parse(data []byte) (*Registry, error) {
	var f linksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.WrapError(err, "failed to parse project links")
	}
	return NewRegistry(f.Projects)
}

// Links returns a copy of the registered entries
func (r *Registry) Links() []domain.ProjectLink {
	out := make([]domain.ProjectLink, len(r.links))
	copy(out, r.links)
	return out
}

// Lookup returns the first entry whose path prefix matches path
func (r *Registry) Lookup(path string) (domain.ProjectLink, bool) {
	for _, l := range r.links {
		if strings.HasPrefix(path, l.PathPrefix) {
			return l, true
		}
	}
	return domain.ProjectLink{}, false
}

// BuildURL resolves the external URL for a subject id seen on the given project path
func (r *Registry) BuildURL(path, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &apperrors.ValidationError{Field: "value", Message: "value cannot be empty"}
	}

	link, ok := r.Lookup(path)
	if !ok {
		return "", &apperrors.NotFoundError{Resource: "project link", ID: path}
	}
	return strings.ReplaceAll(link.URLTemplate, ValuePlaceholder, url.PathEscape(value)), nil
}
