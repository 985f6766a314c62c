// ABOUTME: Response DTOs for project external links
// ABOUTME: Returns the resolved URL together with the entry that produced it

package responses

// ProjectLinkResponse is a resolved external link
type ProjectLinkResponse struct {
	URL        string `json:"url"`
	PathPrefix string `json:"pathPrefix"`
	HeaderName string `json:"headerName" doc:"Subject metadata field the value is read from"`
}

// ProjectLinkTemplateResponse is one configured project link entry
type ProjectLinkTemplateResponse struct {
	PathPrefix  string `json:"pathPrefix"`
	HeaderName  string `json:"headerName"`
	URLTemplate string `json:"urlTemplate" doc:"External URL with a {value} placeholder"`
}

// ProjectLinksResponse lists the configured project links in lookup order
type ProjectLinksResponse struct {
	Links []ProjectLinkTemplateResponse `json:"links"`
}
