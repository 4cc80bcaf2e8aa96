// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package partners

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pdiddy/harvest/pkg/types"
)

// Collection is an immutable, ordered list of canonical partners.
type Collection struct {
	items []types.Partner
}

// NewCollection wraps merged partners. The slice is copied.
func NewCollection(partners []types.Partner) Collection {
	return Collection{items: slices.Clone(partners)}
}

// FromRows parses and merges sheet rows.
func FromRows(rows []types.RawRecord) Collection {
	return Collection{items: Merge(ParseRows(rows))}
}

func (c Collection) All() []types.Partner { return slices.Clone(c.items) }
func (c Collection) Len() int             { return len(c.items) }

// ByType groups partners by classification in first-seen order. Keys are
// the PartnerType values.
func (c Collection) ByType() []types.Group[types.Partner] {
	return types.GroupBy(c.items, func(p types.Partner) string { return string(p.Type) })
}

// BySize groups partners by company size in first-seen order.
func (c Collection) BySize() []types.Group[types.Partner] {
	return types.GroupBy(c.items, func(p types.Partner) string { return string(p.Size) })
}

// ByStatus groups partners by engagement status in first-seen order.
func (c Collection) ByStatus() []types.Group[types.Partner] {
	return types.GroupBy(c.items, func(p types.Partner) string { return string(p.Status) })
}

func (c Collection) filter(keep func(types.Partner) bool) []types.Partner {
	var out []types.Partner
	for _, p := range c.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Cofunding returns partners with any co-funding arrangement.
func (c Collection) Cofunding() []types.Partner { return c.filter(HasCofunding) }

// Private returns company partners.
func (c Collection) Private() []types.Partner { return c.filter(IsPrivate) }

// Public returns public bodies: EPICs, academics, public research and
// research infrastructures.
func (c Collection) Public() []types.Partner { return c.filter(IsPublic) }

func IsPrivate(p types.Partner) bool { return p.Type == types.PartnerCompany }

func IsPublic(p types.Partner) bool {
	switch p.Type {
	case types.PartnerEPIC, types.PartnerAcademic, types.PartnerPublicResearch, types.PartnerInfrastructure:
		return true
	}
	return false
}

func collaboration(p types.Partner) string {
	return strings.ToLower(strings.Join(p.CollaborationTypes, ", "))
}

func mentionsCofunding(s string) bool {
	return strings.Contains(s, "co-funding") || strings.Contains(s, "cofunding") || strings.Contains(s, "co funding")
}

// HasCofunding reports a co-funding arrangement of any kind.
func HasCofunding(p types.Partner) bool { return mentionsCofunding(collaboration(p)) }

// HasPhDCofunding reports a co-funded PhD.
func HasPhDCofunding(p types.Partner) bool {
	s := collaboration(p)
	return strings.Contains(s, "phd") && mentionsCofunding(s)
}

// HasFundedProjects reports a joint funded project (ANR PRCI and similar).
func HasFundedProjects(p types.Partner) bool {
	return strings.Contains(collaboration(p), "funded project")
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
var slugDashes = regexp.MustCompile(`-+`)

// Slug returns a URL-safe identifier for the partner.
func Slug(p types.Partner) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(p.Name), "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
