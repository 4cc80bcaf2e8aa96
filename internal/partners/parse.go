// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package partners builds the canonical list of external partner
// organizations from the partners spreadsheet. The sheet holds one row per
// interaction with a partner, so rows sharing a case-insensitive name are
// folded into one record whose multi-valued fields accumulate every row.
package partners

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

// Partners sheet column headers.
const (
	colName           = "Entreprises"
	colType           = "Type of External Partners"
	colStatus         = "Status"
	colDepartment     = "Equipe ou departement de l'entreprise"
	colCollaboration  = "Type of Collaboration"
	colComments       = "Commentaires"
	colContactPartner = "Contact Entreprise"
	colContactProject = "Contact ExaMA"
	colProjectPartner = "Partenaire ExaMA"
)

const topicColumns = 7

// invalidDepartments are type labels and generic terms that leak into the
// department column.
var invalidDepartments = mapset.NewThreadUnsafeSet(
	"entreprise", "epic", "academic", "public research",
	"large scale research infrastructure", "other",
	"company", "organization",
)

// ValidDepartment reports whether dept names a real department.
func ValidDepartment(dept string) bool {
	d := strings.ToLower(strings.TrimSpace(dept))
	return d != "" && !invalidDepartments.Contains(d)
}

// ParseRow converts one sheet row. Rows without an organization name yield
// false.
func ParseRow(r types.RawRecord) (types.Partner, bool) {
	name := clean.String(r[colName])
	if name == "" {
		return types.Partner{}, false
	}

	typeLabel := clean.String(r[colType])
	statusLabel := clean.String(r[colStatus])
	partnerType, size := classify.PartnerType(typeLabel)

	p := types.Partner{
		Name:           name,
		Type:           partnerType,
		TypeLabel:      typeLabel,
		Size:           size,
		Status:         classify.PartnerStatus(statusLabel),
		StatusLabel:    statusLabel,
		Topics:         parseTopics(r),
		ContactPartner: clean.String(r[colContactPartner]),
		ContactProject: clean.String(r[colContactProject]),
		ProjectPartner: clean.String(r[colProjectPartner]),
		Icon:           classify.PartnerIcon(name),
	}
	if dept := clean.String(r[colDepartment]); ValidDepartment(dept) {
		p.Departments = []string{dept}
	}
	if collab := clean.String(r[colCollaboration]); collab != "" {
		p.CollaborationTypes = []string{collab}
	}
	if comment := clean.String(r[colComments]); comment != "" {
		p.Comments = []string{comment}
	}
	return p, true
}

// parseTopics reads "Topics 1".."Topics 7", falling back to the lower-case
// header some sheet revisions use. Repeated topics are kept once.
func parseTopics(r types.RawRecord) []string {
	var topics []string
	for i := 1; i <= topicColumns; i++ {
		v := clean.String(r[fmt.Sprintf("Topics %d", i)])
		if v == "" {
			v = clean.String(r[fmt.Sprintf("topics %d", i)])
		}
		if v != "" && !slices.Contains(topics, v) {
			topics = append(topics, v)
		}
	}
	return topics
}

// ParseRows converts every row that carries a name, in order.
func ParseRows(rows []types.RawRecord) []types.Partner {
	var out []types.Partner
	for _, r := range rows {
		if p, ok := ParseRow(r); ok {
			out = append(out, p)
		}
	}
	return out
}
