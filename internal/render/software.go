// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/harvest/internal/software"
	"github.com/pdiddy/harvest/pkg/types"
)

var benchmarkDisplay = map[types.BenchmarkStatus]string{
	types.BenchmarkNotYet:   "Not yet",
	types.BenchmarkCPUOnly:  "CPU",
	types.BenchmarkGPUOnly:  "GPU",
	types.BenchmarkCPUOrGPU: "CPU and GPU",
}

func check(ok bool) string {
	if ok {
		return "icon:check[role=text-success]"
	}
	return "icon:times[role=text-muted]"
}

// Software renders the table of packages that get a generated page, with
// their practices at a glance.
func Software(c software.Packages) string {
	eligible := c.Eligible()
	var b strings.Builder
	fmt.Fprintf(&b, "// Software packages: %d (%d eligible)\n\n", c.Len(), len(eligible))
	if len(eligible) == 0 {
		b.WriteString("_No software packages available._\n")
		return b.String()
	}

	tableStart(&b, ".software", "3,2,2,1,1,1,2", "Package", "Partner", "License", "CI", "Tests", "Repo", "Benchmarked")
	for _, p := range eligible {
		fmt.Fprintf(&b, "|*xref:software/%s.adoc[%s]*\n", software.Slug(p), cell(p.Name))
		fmt.Fprintf(&b, "|%s\n", cell(p.Partner))
		fmt.Fprintf(&b, "|%s\n", cell(strings.Join(software.Licenses(p), ", ")))
		fmt.Fprintf(&b, "|%s\n", check(software.HasCI(p)))
		fmt.Fprintf(&b, "|%s\n", check(software.HasUnitTests(p)))
		if p.Repository != "" {
			fmt.Fprintf(&b, "|link:%s[icon:code-branch[]]\n", p.Repository)
		} else {
			b.WriteString("|\n")
		}
		fmt.Fprintf(&b, "|%s\n\n", benchmarkDisplay[p.Benchmark])
	}
	tableEnd(&b)
	return b.String()
}

// Package renders the page of one software package.
func Package(p types.SoftwarePackage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s\n:page-tags: software\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "[.lead]\n%s\n\n", p.Description)
	}
	fmt.Fprintf(&b, "*Partner*: %s +\n", p.Partner)
	fmt.Fprintf(&b, "*License*: %s +\n", strings.Join(software.Licenses(p), ", "))
	if p.Repository != "" {
		fmt.Fprintf(&b, "*Repository*: %s +\n", p.Repository)
	}
	if p.DocsURL != "" {
		fmt.Fprintf(&b, "*Documentation*: %s +\n", p.DocsURL)
	}
	fmt.Fprintf(&b, "*Benchmarked*: %s\n\n", benchmarkDisplay[p.Benchmark])

	if len(p.Languages) > 0 || len(p.Parallelism) > 0 {
		b.WriteString("== Technical Profile\n\n")
		if len(p.Languages) > 0 {
			fmt.Fprintf(&b, "* Languages: %s\n", strings.Join(p.Languages, ", "))
		}
		if len(p.Parallelism) > 0 {
			fmt.Fprintf(&b, "* Parallelism: %s\n", strings.Join(p.Parallelism, ", "))
		}
		if len(p.DataFormats) > 0 {
			fmt.Fprintf(&b, "* Data formats: %s\n", strings.Join(p.DataFormats, ", "))
		}
		b.WriteString("\n")
	}

	if len(p.DevOps) > 0 {
		b.WriteString("== DevOps\n\n")
		for _, d := range p.DevOps {
			fmt.Fprintf(&b, "* %s\n", d)
		}
		b.WriteString("\n")
	}

	if len(p.WorkPackages) > 0 {
		b.WriteString("== Work Packages\n\n")
		tableStart(&b, "", "1,4,1", "WP", "Topics", "Benchmarked")
		for _, wp := range p.WorkPackages {
			fmt.Fprintf(&b, "|WP%d\n|%s\n|%s\n\n", wp.Number, cell(strings.Join(wp.Topics, ", ")), check(wp.Benchmarked))
		}
		tableEnd(&b)
		b.WriteString("\n")
	}

	if p.Packaging != nil && software.HasAnyPackage(*p.Packaging) {
		b.WriteString("== Packaging\n\n")
		channels := []struct {
			name string
			ch   types.PackageChannel
		}{
			{"Spack", p.Packaging.Spack},
			{"Guix-HPC", p.Packaging.Guix},
			{"PETSc", p.Packaging.PETSc},
			{"Docker", p.Packaging.Docker},
			{"Apptainer", p.Packaging.Apptainer},
		}
		for _, c := range channels {
			if c.ch.Available {
				fmt.Fprintf(&b, "* %s\n", c.name)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Applications renders the benchmark applications grouped by type.
func Applications(c software.Applications) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Applications: %d (%d benchmark ready)\n\n", c.Len(), len(c.BenchmarkReady()))
	if c.Len() == 0 {
		b.WriteString("_No applications available._\n")
		return b.String()
	}

	for _, g := range c.ByType() {
		fmt.Fprintf(&b, "=== %s\n\n", g.Key)
		tableStart(&b, ".applications", "1,3,2,2,1", "ID", "Name", "Frameworks", "Work Packages", "Status")
		for _, a := range g.Items {
			name := cell(a.Name)
			if a.RepoURL != "" {
				name = fmt.Sprintf("link:%s[%s]", a.RepoURL, name)
			}
			fmt.Fprintf(&b, "|%s\n", cell(a.ID))
			fmt.Fprintf(&b, "|%s\n", name)
			fmt.Fprintf(&b, "|%s\n", cell(strings.Join(a.Frameworks, ", ")))
			fmt.Fprintf(&b, "|%s\n", cell(strings.Join(a.WorkPackages, ", ")))
			fmt.Fprintf(&b, "|%s\n\n", a.Status)
		}
		tableEnd(&b)
		b.WriteString("\n")
	}
	return b.String()
}
