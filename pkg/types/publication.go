// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PublicationType is the normalized category of a publication.
type PublicationType string

const (
	PubJournalArticle  PublicationType = "journal-article"
	PubConferencePaper PublicationType = "conference-paper"
	PubBookChapter     PublicationType = "book-chapter"
	PubBook            PublicationType = "book"
	PubReport          PublicationType = "report"
	PubThesis          PublicationType = "thesis"
	PubPoster          PublicationType = "poster"
	PubPatent          PublicationType = "patent"
	PubSoftware        PublicationType = "software"
	PubDataset         PublicationType = "dataset"
	PubPreprint        PublicationType = "preprint"
	PubOther           PublicationType = "other"
)

// TypeInfo is the outcome of publication type inference. SourceCode and
// SourceLabel keep the values the source reported even when the inferred
// Type differs from them.
type TypeInfo struct {
	Type        PublicationType `json:"publication_type" yaml:"publication_type"`
	Label       string          `json:"publication_type_label" yaml:"publication_type_label"`
	SourceCode  string          `json:"source_type_code" yaml:"source_type_code"`
	SourceLabel string          `json:"source_type_label,omitempty" yaml:"source_type_label,omitempty"`
}

// Publication is one canonical bibliographic record. At most one exists per
// logical identifier in a harvested batch.
type Publication struct {
	// ID is the logical identifier (HAL id, else URI, else docid).
	ID string `json:"id" yaml:"id"`

	// Version is the source revision number; zero when absent.
	Version int `json:"version,omitempty" yaml:"version,omitempty"`

	// VersionsFound counts the raw revisions collapsed into this record.
	VersionsFound int `json:"versions_found" yaml:"versions_found"`

	URL     string   `json:"url,omitempty" yaml:"url,omitempty"`
	Title   string   `json:"title" yaml:"title"`
	Authors []string `json:"authors" yaml:"authors"`

	// Date is the production date string as reported, ISO-like.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Year is the publication year; zero when absent.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	TypeInfo `yaml:",inline"`

	Journal    string   `json:"journal,omitempty" yaml:"journal,omitempty"`
	Conference string   `json:"conference,omitempty" yaml:"conference,omitempty"`
	DOI        string   `json:"doi,omitempty" yaml:"doi,omitempty"`
	Abstract   string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Domains    []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	OpenAccess bool     `json:"open_access" yaml:"open_access"`
	Citation   string   `json:"citation,omitempty" yaml:"citation,omitempty"`
	PDFURL     string   `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
}
