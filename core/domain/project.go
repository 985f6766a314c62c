// ABOUTME: Project link domain model
// ABOUTME: Maps a project path prefix to the metadata field and external URL used for its subjects

package domain

// ProjectLink describes how to build an external URL for a project's subjects
type ProjectLink struct {
	// PathPrefix is the project path, e.g. "/projects/owner/name"
	PathPrefix string `yaml:"path_prefix" json:"pathPrefix"`

	// HeaderName is the subject metadata field holding the id, e.g. "TIC_ID"
	HeaderName string `yaml:"header_name" json:"headerName"`

	// URLTemplate contains a {value} placeholder replaced by the escaped id
	URLTemplate string `yaml:"url_template" json:"urlTemplate"`
}
