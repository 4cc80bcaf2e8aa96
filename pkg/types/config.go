package types

import "time"

// HTTPConfig holds shared HTTP settings used by collaborators that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "harvest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RatePerSecond caps outgoing requests per host (default 2).
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second" mapstructure:"rate_per_second"`
}

// ProjectConfig identifies the research project being harvested.
type ProjectConfig struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	ANRID string `json:"anr_id" yaml:"anr_id" mapstructure:"anr_id"`
}

// PublicationsConfig selects publications from the HAL search API.
type PublicationsConfig struct {
	// Query is the HAL q parameter (default: the project's ANR reference).
	Query string `json:"query" yaml:"query" mapstructure:"query"`

	// Domains filters on level0_domain_s (e.g. math, info).
	Domains []string `json:"domains" yaml:"domains" mapstructure:"domains"`

	// Years filters on publicationDateY_i.
	Years []int `json:"years" yaml:"years" mapstructure:"years"`

	// Rows is the page size (default 100).
	Rows int `json:"rows" yaml:"rows" mapstructure:"rows"`
}

// DeliverableItem is one deliverable repository whose releases are listed.
type DeliverableItem struct {
	ID               string   `json:"id" yaml:"id" mapstructure:"id"`
	Repo             string   `json:"repo" yaml:"repo" mapstructure:"repo"`
	Title            string   `json:"title" yaml:"title" mapstructure:"title"`
	Description      string   `json:"description" yaml:"description" mapstructure:"description"`
	WorkPackages     []string `json:"workpackages" yaml:"workpackages" mapstructure:"workpackages"`
	FeaturedVersions []string `json:"featured_versions" yaml:"featured_versions" mapstructure:"featured_versions"`
}

// DeliverablesSettings controls release selection.
type DeliverablesSettings struct {
	MaxReleases        int  `json:"max_releases" yaml:"max_releases" mapstructure:"max_releases"`
	IncludePrereleases bool `json:"include_prereleases" yaml:"include_prereleases" mapstructure:"include_prereleases"`
	LatestOnly         bool `json:"latest_only" yaml:"latest_only" mapstructure:"latest_only"`
}

// DeliverablesConfig lists deliverable repositories.
type DeliverablesConfig struct {
	Settings DeliverablesSettings `json:"settings" yaml:"settings" mapstructure:"settings"`
	Items    []DeliverableItem    `json:"items" yaml:"items" mapstructure:"items"`
}

// SheetSource locates a spreadsheet: a local .xlsx/.csv file, or a Google
// Sheets document exported as XLSX. File wins when both are set.
type SheetSource struct {
	SheetID string `json:"sheet_id" yaml:"sheet_id" mapstructure:"sheet_id"`
	File    string `json:"file" yaml:"file" mapstructure:"file"`
}

// Source returns the cache identity of the spreadsheet.
func (s SheetSource) Source() string {
	if s.File != "" {
		return s.File
	}
	return "google-sheets:" + s.SheetID
}

// SoftwareSheets names the sheets of the software workbook.
type SoftwareSheets struct {
	Frameworks   string `json:"frameworks" yaml:"frameworks" mapstructure:"frameworks"`
	Packaging    string `json:"packaging" yaml:"packaging" mapstructure:"packaging"`
	Applications string `json:"applications" yaml:"applications" mapstructure:"applications"`
}

// SoftwareConfig locates the software stack workbook.
type SoftwareConfig struct {
	SheetSource `yaml:",inline" mapstructure:",squash"`
	Sheets      SoftwareSheets `json:"sheets" yaml:"sheets" mapstructure:"sheets"`
}

// TeamFilter restricts the personnel list.
type TeamFilter struct {
	FundedOnly bool `json:"funded_only" yaml:"funded_only" mapstructure:"funded_only"`
	ActiveOnly bool `json:"active_only" yaml:"active_only" mapstructure:"active_only"`
}

// TeamConfig locates the personnel sheet.
type TeamConfig struct {
	SheetSource `yaml:",inline" mapstructure:",squash"`
	SheetName   string     `json:"sheet_name" yaml:"sheet_name" mapstructure:"sheet_name"`
	Filter      TeamFilter `json:"filter" yaml:"filter" mapstructure:"filter"`
}

// PartnersConfig locates the external partners sheet.
type PartnersConfig struct {
	SheetSource `yaml:",inline" mapstructure:",squash"`
	SheetName   string `json:"sheet_name" yaml:"sheet_name" mapstructure:"sheet_name"`
}

// NewsConfig lists events inline or points at a YAML file of events.
type NewsConfig struct {
	File   string  `json:"file" yaml:"file" mapstructure:"file"`
	Events []Event `json:"events" yaml:"events" mapstructure:"events"`
}

// OutputConfig controls where generated partials are written.
type OutputConfig struct {
	PartialsDir string `json:"partials_dir" yaml:"partials_dir" mapstructure:"partials_dir"`
}

// CacheConfig controls the collection cache.
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Path    string        `json:"path" yaml:"path" mapstructure:"path"`
	TTL     time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// HarvestConfig groups all source and output configuration.
type HarvestConfig struct {
	Project      ProjectConfig      `json:"project" yaml:"project" mapstructure:"project"`
	HTTP         HTTPConfig         `json:"http" yaml:"http" mapstructure:"http"`
	Publications PublicationsConfig `json:"publications" yaml:"publications" mapstructure:"publications"`
	Deliverables DeliverablesConfig `json:"deliverables" yaml:"deliverables" mapstructure:"deliverables"`
	Software     SoftwareConfig     `json:"software" yaml:"software" mapstructure:"software"`
	Team         TeamConfig         `json:"team" yaml:"team" mapstructure:"team"`
	Partners     PartnersConfig     `json:"partners" yaml:"partners" mapstructure:"partners"`
	News         NewsConfig         `json:"news" yaml:"news" mapstructure:"news"`
	Output       OutputConfig       `json:"output" yaml:"output" mapstructure:"output"`
	Cache        CacheConfig        `json:"cache" yaml:"cache" mapstructure:"cache"`
}

// DefaultHarvestConfig returns the configuration used when no config file
// overrides a value.
func DefaultHarvestConfig() HarvestConfig {
	return HarvestConfig{
		Project: ProjectConfig{Name: "Exa-MA", ANRID: "ANR-22-EXNU-0002"},
		HTTP: HTTPConfig{
			Timeout:       60 * time.Second,
			UserAgent:     "harvest/0.1",
			RatePerSecond: 2,
		},
		Publications: PublicationsConfig{
			Query:   "anrProjectReference_s:ANR-22-EXNU-0002",
			Domains: []string{"math", "info", "stat", "phys"},
			Years:   []int{2023, 2024, 2025},
			Rows:    100,
		},
		Deliverables: DeliverablesConfig{
			Settings: DeliverablesSettings{MaxReleases: 5},
		},
		Software: SoftwareConfig{
			Sheets: SoftwareSheets{
				Frameworks:   "Frameworks",
				Packaging:    "Packaging",
				Applications: "Applications",
			},
		},
		Team: TeamConfig{
			SheetName: "All Exa-MA",
			Filter:    TeamFilter{FundedOnly: true},
		},
		Partners: PartnersConfig{SheetName: "Overview"},
		Output:   OutputConfig{PartialsDir: "docs/modules/ROOT/partials"},
		Cache: CacheConfig{
			Path: ".cache/harvest.db",
			TTL:  time.Hour,
		},
	}
}
