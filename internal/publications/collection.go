// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/pdiddy/harvest/pkg/types"
)

// Collection is an immutable, ordered set of canonical publications.
type Collection struct {
	items []types.Publication
}

// NewCollection wraps pubs. The slice is copied.
func NewCollection(pubs []types.Publication) Collection {
	return Collection{items: slices.Clone(pubs)}
}

// All returns a copy of the publications in order.
func (c Collection) All() []types.Publication { return slices.Clone(c.items) }

// Len returns the number of publications.
func (c Collection) Len() int { return len(c.items) }

// ByType groups publications by their inferred type label in first-seen
// order.
func (c Collection) ByType() []types.Group[types.Publication] {
	return types.GroupBy(c.items, func(p types.Publication) string { return p.Label })
}

// ByYear groups publications by year, most recent first. Publications with
// no year are grouped under "Unknown", which sorts last.
func (c Collection) ByYear() []types.Group[types.Publication] {
	groups := types.GroupBy(c.items, yearKey)
	slices.SortStableFunc(groups, func(a, b types.Group[types.Publication]) int {
		return cmp.Compare(yearOrder(b.Key), yearOrder(a.Key))
	})
	return groups
}

// OpenAccess returns the open-access publications.
func (c Collection) OpenAccess() []types.Publication {
	var out []types.Publication
	for _, p := range c.items {
		if p.OpenAccess {
			out = append(out, p)
		}
	}
	return out
}

func yearKey(p types.Publication) string {
	if p.Year == 0 {
		return unknownYear
	}
	return strconv.Itoa(p.Year)
}

const unknownYear = "Unknown"

func yearOrder(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil {
		return -1
	}
	return n
}

// Count is one row of a frequency table.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// YearStats summarizes one publication year.
type YearStats struct {
	Year   string  `json:"year" yaml:"year"`
	Count  int     `json:"count" yaml:"count"`
	ByType []Count `json:"by_type" yaml:"by_type"`
}

// Stats summarizes a publication collection.
type Stats struct {
	Total      int         `json:"total" yaml:"total"`
	ByType     []Count     `json:"by_type" yaml:"by_type"`
	ByYear     []YearStats `json:"by_year" yaml:"by_year"`
	ByDomain   []Count     `json:"by_domain" yaml:"by_domain"`
	WithDOI    int         `json:"with_doi" yaml:"with_doi"`
	WithPDF    int         `json:"with_pdf" yaml:"with_pdf"`
	OpenAccess int         `json:"open_access" yaml:"open_access"`
}

// Stats computes totals, type and domain frequencies, and per-year counts.
func (c Collection) Stats() Stats {
	s := Stats{Total: len(c.items)}
	for _, p := range c.items {
		if p.DOI != "" {
			s.WithDOI++
		}
		if p.PDFURL != "" {
			s.WithPDF++
		}
		if p.OpenAccess {
			s.OpenAccess++
		}
	}

	s.ByType = countBy(c.items, func(p types.Publication) []string { return []string{p.Label} })
	s.ByDomain = countBy(c.items, func(p types.Publication) []string { return p.Domains })
	for _, g := range c.ByYear() {
		s.ByYear = append(s.ByYear, YearStats{
			Year:   g.Key,
			Count:  len(g.Items),
			ByType: countBy(g.Items, func(p types.Publication) []string { return []string{p.Label} }),
		})
	}
	return s
}

// countBy tallies keys and sorts by descending count, then key.
func countBy(pubs []types.Publication, keys func(types.Publication) []string) []Count {
	groups := types.GroupByMany(pubs, keys)
	counts := make([]Count, len(groups))
	for i, g := range groups {
		counts[i] = Count{Key: g.Key, Count: len(g.Items)}
	}
	slices.SortStableFunc(counts, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return counts
}
