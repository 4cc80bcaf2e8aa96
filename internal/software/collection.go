// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package software

import (
	"slices"
	"strings"

	"github.com/pdiddy/harvest/pkg/types"
)

// Packages is an immutable, ordered list of software packages.
type Packages struct {
	items []types.SoftwarePackage
}

// ParsePackages converts framework rows in order, joining packaging.
func ParsePackages(frameworks, packaging []types.RawRecord) Packages {
	index := PackagingIndex(packaging)
	var items []types.SoftwarePackage
	for _, r := range frameworks {
		if p, ok := ParsePackage(r, index); ok {
			items = append(items, p)
		}
	}
	return Packages{items: items}
}

func NewPackages(items []types.SoftwarePackage) Packages {
	return Packages{items: slices.Clone(items)}
}

func (c Packages) All() []types.SoftwarePackage { return slices.Clone(c.items) }
func (c Packages) Len() int                     { return len(c.items) }

// Eligible returns the packages that get a generated page.
func (c Packages) Eligible() []types.SoftwarePackage {
	var out []types.SoftwarePackage
	for _, p := range c.items {
		if p.Eligible {
			out = append(out, p)
		}
	}
	return out
}

// ByName finds a package case-insensitively.
func (c Packages) ByName(name string) (types.SoftwarePackage, bool) {
	for _, p := range c.items {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return types.SoftwarePackage{}, false
}

// ByWorkPackage returns the packages contributing to work package n.
func (c Packages) ByWorkPackage(n int) []types.SoftwarePackage {
	var out []types.SoftwarePackage
	for _, p := range c.items {
		if slices.ContainsFunc(p.WorkPackages, func(wp types.WorkPackageInfo) bool { return wp.Number == n }) {
			out = append(out, p)
		}
	}
	return out
}

// ByBenchmark groups packages by benchmark status in first-seen order.
func (c Packages) ByBenchmark() []types.Group[types.SoftwarePackage] {
	return types.GroupBy(c.items, func(p types.SoftwarePackage) string { return string(p.Benchmark) })
}

// Applications is an immutable, ordered list of benchmark applications.
type Applications struct {
	items []types.Application
}

// ParseApplications converts rows in order, skipping rows without an id.
func ParseApplications(rows []types.RawRecord) Applications {
	var items []types.Application
	for _, r := range rows {
		if a, ok := ParseApplication(r); ok {
			items = append(items, a)
		}
	}
	return Applications{items: items}
}

func NewApplications(items []types.Application) Applications {
	return Applications{items: slices.Clone(items)}
}

func (c Applications) All() []types.Application { return slices.Clone(c.items) }
func (c Applications) Len() int                 { return len(c.items) }

func (c Applications) filter(keep func(types.Application) bool) []types.Application {
	var out []types.Application
	for _, a := range c.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (c Applications) Eligible() []types.Application {
	return c.filter(func(a types.Application) bool { return a.Eligible })
}

func (c Applications) BenchmarkReady() []types.Application { return c.filter(BenchmarkReady) }

// ByID finds an application by exact id.
func (c Applications) ByID(id string) (types.Application, bool) {
	for _, a := range c.items {
		if a.ID == id {
			return a, true
		}
	}
	return types.Application{}, false
}

// ByFramework returns applications naming framework, matched as a
// case-insensitive substring.
func (c Applications) ByFramework(framework string) []types.Application {
	needle := strings.ToLower(framework)
	return c.filter(func(a types.Application) bool {
		return slices.ContainsFunc(a.Frameworks, func(f string) bool {
			return strings.Contains(strings.ToLower(f), needle)
		})
	})
}

// ByWorkPackage returns applications whose work packages mention wp,
// ignoring case.
func (c Applications) ByWorkPackage(wp string) []types.Application {
	needle := strings.ToUpper(wp)
	return c.filter(func(a types.Application) bool {
		return slices.ContainsFunc(a.WorkPackages, func(w string) bool {
			return strings.Contains(strings.ToUpper(w), needle)
		})
	})
}

// ByType groups applications by type in first-seen order.
func (c Applications) ByType() []types.Group[types.Application] {
	return types.GroupBy(c.items, func(a types.Application) string { return string(a.Type) })
}
