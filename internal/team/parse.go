// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package team builds the personnel list from the project contact sheet.
package team

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

// Contact sheet column headers.
const (
	colFirstName   = "First name"
	colSurname     = "Surname"
	colEmail       = "Email"
	colFunded      = "Funded by Exa-MA"
	colPosition    = "Position"
	colWP          = "WP"
	colWoman       = "Woman"
	colStartDate   = "Start date (if the person was not here from start)"
	colEndDate     = "End date (if the person has left)"
	colOtherInfo   = "Other info"
	colTeam        = "Team"
	colPartner     = "Partner"
	colInstitution = "Institution (employer)"
	colAdvisor     = "Advisor"
)

// maxWorkPackage is the last WPn involvement column; WP0 is the project office.
const maxWorkPackage = 7

var advisorSeparators = regexp.MustCompile(`[,;\n]+`)

// ParseRow converts one sheet row. Rows missing a first name or surname
// yield false.
func ParseRow(r types.RawRecord) (types.Person, bool) {
	first := clean.String(r[colFirstName])
	surname := clean.String(r[colSurname])
	if first == "" || surname == "" {
		return types.Person{}, false
	}

	positionLabel := clean.String(r[colPosition])
	return types.Person{
		FirstName:     first,
		Surname:       surname,
		Email:         clean.String(r[colEmail]),
		WorkPackages:  workPackages(r),
		Funded:        clean.ParseBool(r[colFunded]),
		StartDate:     clean.ParseDate(r[colStartDate]),
		EndDate:       clean.ParseDate(r[colEndDate]),
		Position:      classify.Position(positionLabel),
		PositionLabel: positionLabel,
		Team:          clean.String(r[colTeam]),
		Partner:       clean.String(r[colPartner]),
		Institution:   clean.String(r[colInstitution]),
		Advisors:      parseAdvisors(r[colAdvisor]),
		OtherInfo:     clean.String(r[colOtherInfo]),
		Gender:        classify.Gender(r[colWoman], first),
	}, true
}

// workPackages prefers the single "WP" column. Without it, every WPn column
// holding a positive number marks an involvement, listed by WP number.
func workPackages(r types.RawRecord) []string {
	if wp := clean.String(r[colWP]); wp != "" {
		return []string{wp}
	}
	var wps []string
	for n := 0; n <= maxWorkPackage; n++ {
		col := fmt.Sprintf("WP%d", n)
		if v, ok := clean.Number(r[col]); ok && v > 0 {
			wps = append(wps, col)
		}
	}
	return wps
}

func parseAdvisors(v any) []string {
	s := clean.String(v)
	if s == "" {
		return nil
	}
	var out []string
	for _, a := range advisorSeparators.Split(s, -1) {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// ParseRows converts rows in order, applying the funded and active filters.
// Activity is evaluated at now.
func ParseRows(rows []types.RawRecord, filter types.TeamFilter, now time.Time) []types.Person {
	var out []types.Person
	for _, r := range rows {
		p, ok := ParseRow(r)
		if !ok {
			continue
		}
		if filter.FundedOnly && !p.Funded {
			continue
		}
		if filter.ActiveOnly && !p.IsActiveAt(now) {
			continue
		}
		out = append(out, p)
	}
	return out
}
