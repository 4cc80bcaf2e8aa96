// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package partners

import (
	"maps"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/pdiddy/harvest/pkg/types"
)

// excludedNames are collaborative projects listed in the sheet that are not
// partners. Matched case-insensitively on the whole name.
var excludedNames = mapset.NewThreadUnsafeSet("hidalgo2", "coe-hidalgo2")

// Excluded reports whether name is dropped before merging.
func Excluded(name string) bool {
	return excludedNames.Contains(mergeKey(name))
}

func mergeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Accumulator is the state of a partner merge. It is a value: Fold never
// modifies the accumulator it receives, and records are replaced rather
// than edited in place. Each step copies the record map, so folding n rows
// costs O(n²); it is sized for a partner sheet, not bulk imports.
type Accumulator struct {
	order []string
	byKey map[string]types.Partner
}

// Len returns the number of canonical partners accumulated so far.
func (a Accumulator) Len() int { return len(a.order) }

// Partners returns the canonical partners in first-seen order.
func (a Accumulator) Partners() []types.Partner {
	out := make([]types.Partner, len(a.order))
	for i, k := range a.order {
		out[i] = clonePartner(a.byKey[k])
	}
	return out
}

// Lookup returns the canonical partner for a name, case-insensitively.
func (a Accumulator) Lookup(name string) (types.Partner, bool) {
	p, ok := a.byKey[mergeKey(name)]
	return clonePartner(p), ok
}

// Fold merges one parsed row into acc and returns the new state. The first
// row for a name fixes every scalar field and the display name; later rows
// only union their departments, collaboration types, topics, and comments
// into the canonical record, skipping values already present. Department
// labels that are not departments are dropped from every row, the first
// included. Excluded names and rows without a name leave acc unchanged.
func Fold(acc Accumulator, p types.Partner) Accumulator {
	key := mergeKey(p.Name)
	if key == "" || excludedNames.Contains(key) {
		return acc
	}

	next := Accumulator{
		order: acc.order,
		byKey: maps.Clone(acc.byKey),
	}
	if next.byKey == nil {
		next.byKey = make(map[string]types.Partner)
	}

	existing, seen := acc.byKey[key]
	if !seen {
		next.order = append(slices.Clip(acc.order), key)
		first := clonePartner(p)
		first.Departments = union(nil, p.Departments, ValidDepartment)
		next.byKey[key] = first
		return next
	}

	merged := clonePartner(existing)
	merged.Departments = union(existing.Departments, p.Departments, ValidDepartment)
	merged.CollaborationTypes = union(existing.CollaborationTypes, p.CollaborationTypes, nil)
	merged.Topics = union(existing.Topics, p.Topics, nil)
	merged.Comments = union(existing.Comments, p.Comments, nil)
	next.byKey[key] = merged
	return next
}

// Merge folds rows in order into one canonical partner per case-insensitive
// name.
func Merge(rows []types.Partner) []types.Partner {
	var acc Accumulator
	for _, p := range rows {
		acc = Fold(acc, p)
	}
	return acc.Partners()
}

// union appends the values of incoming that are not already in base,
// preserving first-insertion order. keep, when set, filters incoming values.
func union(base, incoming []string, keep func(string) bool) []string {
	set := linkedhashset.New()
	for _, v := range base {
		set.Add(v)
	}
	for _, v := range incoming {
		if v == "" || (keep != nil && !keep(v)) {
			continue
		}
		set.Add(v)
	}
	if set.Empty() {
		return nil
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out
}

func clonePartner(p types.Partner) types.Partner {
	p.Departments = slices.Clone(p.Departments)
	p.CollaborationTypes = slices.Clone(p.CollaborationTypes)
	p.Topics = slices.Clone(p.Topics)
	p.Comments = slices.Clone(p.Comments)
	return p
}
