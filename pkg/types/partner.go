// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PartnerType classifies an external partner organization.
type PartnerType string

const (
	PartnerCompany        PartnerType = "company"
	PartnerEPIC           PartnerType = "public-research-entity"
	PartnerAcademic       PartnerType = "academic"
	PartnerPublicResearch PartnerType = "public-research"
	PartnerInfrastructure PartnerType = "large-scale-research-infrastructure"
	PartnerOther          PartnerType = "other"
)

// Display returns the heading used for the type on generated pages.
func (t PartnerType) Display() string {
	switch t {
	case PartnerCompany:
		return "Entreprise"
	case PartnerEPIC:
		return "EPIC"
	case PartnerAcademic:
		return "Academic"
	case PartnerPublicResearch:
		return "Public Research"
	case PartnerInfrastructure:
		return "Large scale Research Infrastructure"
	default:
		return "Other"
	}
}

// CompanySize is the size class inferred from the partner type label.
type CompanySize string

const (
	SizeLarge    CompanySize = "large"
	SizeMidCap   CompanySize = "mid-cap"
	SizeSME      CompanySize = "sme"
	SizeResearch CompanySize = "research-organization"
	SizeUnknown  CompanySize = "unknown"
)

// Display returns the human label for the size.
func (s CompanySize) Display() string {
	switch s {
	case SizeLarge:
		return "Large Group"
	case SizeMidCap:
		return "Mid Cap"
	case SizeSME:
		return "SME"
	case SizeResearch:
		return "Research Organization"
	default:
		return "Unknown"
	}
}

// PartnerStatus is the engagement stage with a partner. StatusOther marks a
// non-blank label that no rule recognized; the label is kept on the record.
type PartnerStatus string

const (
	StatusPositive      PartnerStatus = "positive"
	StatusWorkProgramme PartnerStatus = "work-programme"
	StatusInitialEmail  PartnerStatus = "initial-email"
	StatusNotContacted  PartnerStatus = "not-contacted"
	StatusOther         PartnerStatus = "other"
	StatusUnknown       PartnerStatus = "unknown"
)

// Display returns the human label for the status.
func (s PartnerStatus) Display() string {
	switch s {
	case StatusPositive:
		return "Positive Response"
	case StatusWorkProgramme:
		return "Work programme discussed"
	case StatusInitialEmail:
		return "Initial email sent"
	case StatusNotContacted:
		return "Not contacted yet"
	case StatusOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Partner is one canonical external organization. Exactly one exists per
// case-insensitive name after merging.
type Partner struct {
	Name string `json:"name" yaml:"name"`

	Type PartnerType `json:"type" yaml:"type"`
	// TypeLabel is the raw type cell the classification came from.
	TypeLabel string      `json:"type_label,omitempty" yaml:"type_label,omitempty"`
	Size      CompanySize `json:"size" yaml:"size"`

	Status      PartnerStatus `json:"status" yaml:"status"`
	StatusLabel string        `json:"status_label,omitempty" yaml:"status_label,omitempty"`

	Departments        []string `json:"departments,omitempty" yaml:"departments,omitempty"`
	CollaborationTypes []string `json:"collaboration_types,omitempty" yaml:"collaboration_types,omitempty"`
	Topics             []string `json:"topics,omitempty" yaml:"topics,omitempty"`
	Comments           []string `json:"comments,omitempty" yaml:"comments,omitempty"`

	// ContactPartner is the contact person on the partner side.
	ContactPartner string `json:"contact_partner,omitempty" yaml:"contact_partner,omitempty"`
	// ContactProject is the contact person on the project side.
	ContactProject string `json:"contact_project,omitempty" yaml:"contact_project,omitempty"`
	// ProjectPartner is the consortium member that owns the relationship.
	ProjectPartner string `json:"project_partner,omitempty" yaml:"project_partner,omitempty"`

	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// StatusDisplay returns the raw status label when classification fell
// through to StatusOther, otherwise the status heading.
func (p Partner) StatusDisplay() string {
	if p.Status == StatusOther && p.StatusLabel != "" {
		return p.StatusLabel
	}
	return p.Status.Display()
}

// TypeDisplay returns the raw type label for unrecognized types, otherwise
// the type heading.
func (p Partner) TypeDisplay() string {
	if p.Type == PartnerOther && p.TypeLabel != "" {
		return p.TypeLabel
	}
	return p.Type.Display()
}
