// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Gender is the outcome of gender inference. Unknown is expected, not an error.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// PositionType classifies a recruited position.
type PositionType string

const (
	PositionPhD              PositionType = "phd"
	PositionPostdoc          PositionType = "postdoc"
	PositionResearchEngineer PositionType = "research-engineer"
	PositionPermanent        PositionType = "permanent"
	PositionOther            PositionType = "other"
)

// Person is one funded or recruited individual.
type Person struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	Surname   string `json:"surname" yaml:"surname"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`

	// WorkPackages lists WP labels such as "WP3"; a person may hold several.
	WorkPackages []string `json:"work_packages,omitempty" yaml:"work_packages,omitempty"`

	Funded bool `json:"funded" yaml:"funded"`

	// StartDate and EndDate are nil when unknown. A nil EndDate means the
	// person is still active.
	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	Position PositionType `json:"position" yaml:"position"`
	// PositionLabel is the raw position cell.
	PositionLabel string `json:"position_label,omitempty" yaml:"position_label,omitempty"`

	Team        string   `json:"team,omitempty" yaml:"team,omitempty"`
	Partner     string   `json:"partner,omitempty" yaml:"partner,omitempty"`
	Institution string   `json:"institution,omitempty" yaml:"institution,omitempty"`
	Advisors    []string `json:"advisors,omitempty" yaml:"advisors,omitempty"`
	OtherInfo   string   `json:"other_info,omitempty" yaml:"other_info,omitempty"`

	Gender Gender `json:"gender" yaml:"gender"`
}

// FullName is the merge identity of a person.
func (p Person) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.Surname)
}

// IsActiveAt reports whether the person has no end date or an end date
// strictly after now.
func (p Person) IsActiveAt(now time.Time) bool {
	if p.EndDate == nil {
		return true
	}
	return p.EndDate.After(now)
}

// PositionDisplay returns the heading used for the position. Unrecognized
// positions show their raw label.
func (p Person) PositionDisplay() string {
	switch p.Position {
	case PositionPhD:
		return "PhD Student"
	case PositionPostdoc:
		return "Postdoc"
	case PositionResearchEngineer:
		return "Research Engineer"
	case PositionPermanent:
		return "Permanent Researcher"
	}
	if p.PositionLabel != "" {
		return p.PositionLabel
	}
	return "Staff"
}
