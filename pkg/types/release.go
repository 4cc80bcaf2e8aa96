// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Size int    `json:"size" yaml:"size"`
}

// Release is one selected release of a deliverable repository.
type Release struct {
	DeliverableID string   `json:"deliverable_id" yaml:"deliverable_id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	WorkPackages  []string `json:"workpackages,omitempty" yaml:"workpackages,omitempty"`
	Repo          string   `json:"repo" yaml:"repo"`

	Version string `json:"version" yaml:"version"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	// Date is YYYY-MM-DD, or "N/A" when the release was never published.
	Date    string `json:"date" yaml:"date"`
	HTMLURL string `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`

	Prerelease bool `json:"prerelease" yaml:"prerelease"`
	IsLatest   bool `json:"is_latest" yaml:"is_latest"`
	IsFeatured bool `json:"is_featured" yaml:"is_featured"`

	PDFs []Asset `json:"pdfs,omitempty" yaml:"pdfs,omitempty"`
}
