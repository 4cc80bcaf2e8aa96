// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package software parses the software stack workbook: the frameworks
// sheet, the packaging sheet joined to it by name, and the benchmark
// applications sheet.
package software

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

const maxWorkPackage = 7

// ParsePackaging converts one packaging sheet row. Rows without a software
// name yield false.
func ParsePackaging(r types.RawRecord) (types.PackagingInfo, bool) {
	name := clean.String(r["Software Name"])
	if name == "" {
		return types.PackagingInfo{}, false
	}
	return types.PackagingInfo{
		SoftwareName: name,
		Version:      clean.String(r["Version"]),
		Spack:        channel(r, "Spack Available", "Spack Timeline", "Spack Info Source"),
		Guix:         channel(r, "Guix-HPC Available", "Guix-HPC Timeline", "Guix-HPC Info Source"),
		PETSc:        channel(r, "PETSc packaging available", "PETSc-Packaging Timeline", "PETSC package info source"),
		Docker:       channel(r, "Docker Available", "Docker Timeline", "Docker Info Source"),
		Apptainer:    channel(r, "Apptainer Available", "Apptainer Timeline", "Apptainer Info Source"),
		Notes:        clean.String(r["Notes"]),
		LastUpdated:  clean.ParseDate(r["Last Updated"]),
	}, true
}

func channel(r types.RawRecord, available, timeline, source string) types.PackageChannel {
	return types.PackageChannel{
		Available: clean.ParseBool(r[available]),
		Timeline:  clean.String(r[timeline]),
		URL:       clean.String(r[source]),
	}
}

// PackagingIndex keys packaging rows by exact software name. A later row
// for the same name replaces an earlier one.
func PackagingIndex(rows []types.RawRecord) map[string]types.PackagingInfo {
	index := make(map[string]types.PackagingInfo)
	for _, r := range rows {
		if info, ok := ParsePackaging(r); ok {
			index[info.SoftwareName] = info
		}
	}
	return index
}

// ParsePackage converts one frameworks sheet row and attaches the packaging
// record with the same exact name. Rows without a name yield false.
func ParsePackage(r types.RawRecord, packaging map[string]types.PackagingInfo) (types.SoftwarePackage, bool) {
	name := clean.String(r["Name"])
	if name == "" {
		return types.SoftwarePackage{}, false
	}

	benchmarkLabel := clean.String(r["Benchmarked"])
	p := types.SoftwarePackage{
		Name:              name,
		Description:       clean.String(r["Description"]),
		Partner:           clean.String(r["Partner"]),
		Consortium:        clean.String(r["Consortium"]),
		Emails:            clean.SplitMultiValue(r["Emails"]),
		GithubAccount:     clean.String(r["Compte Github"]),
		Repository:        clean.String(r["Repository"]),
		License:           clean.String(r["License"]),
		Interfaces:        clean.String(r["Interfaces"]),
		DocsURL:           clean.String(r["Docs"]),
		Channels:          clean.SplitMultiValue(r["Channels"]),
		TrainingAvailable: clean.ParseBool(r["Training"]),
		TrainingURL:       clean.String(r["Training URL"]),
		Languages:         clean.SplitMultiValue(r["Languages"]),
		Parallelism:       clean.SplitMultiValue(r["Parallelism"]),
		DataFormats:       clean.SplitMultiValue(r["Data"]),
		Resilience:        clean.String(r["Resilience"]),
		Bottlenecks:       clean.SplitMultiValue(r["Bottlenecks"]),
		DevOps:            clean.SplitMultiValue(r["DevOps"]),
		API:               clean.String(r["API"]),
		Metadata:          clean.String(r["Metadata"]),
		Benchmark:         classify.BenchmarkStatus(benchmarkLabel),
		BenchmarkLabel:    benchmarkLabel,
		Comments:          clean.String(r["Comments"]),
		WorkPackages:      packageWorkPackages(r),
	}
	if info, ok := packaging[name]; ok {
		p.Packaging = &info
	}
	p.Eligible = Eligible(p)
	return p, true
}

// packageWorkPackages reads the "WPn" topic cells and their "WPn Benchmarked"
// flags. Work packages with no topics are left out.
func packageWorkPackages(r types.RawRecord) []types.WorkPackageInfo {
	var out []types.WorkPackageInfo
	for n := 1; n <= maxWorkPackage; n++ {
		key := fmt.Sprintf("WP%d", n)
		topics := clean.SplitMultiValue(r[key])
		if len(topics) == 0 {
			continue
		}
		out = append(out, types.WorkPackageInfo{
			Number:      n,
			Topics:      topics,
			Benchmarked: clean.ParseBool(r[key+" Benchmarked"]),
		})
	}
	return out
}

// Eligible reports whether a package gets a generated page: it has been
// benchmarked on some hardware, declares a license, and lists DevOps
// practices.
func Eligible(p types.SoftwarePackage) bool {
	return p.Benchmark != types.BenchmarkNotYet && p.Benchmark != "" &&
		p.License != "" && len(p.DevOps) > 0
}

var flossKeywords = []string{"gpl", "lgpl", "mit", "bsd", "apache", "mpl", "cecill"}

// HasFLOSSLicense reports a recognized free/open-source license.
func HasFLOSSLicense(p types.SoftwarePackage) bool {
	l := strings.ToLower(p.License)
	return l != "" && slices.ContainsFunc(flossKeywords, func(kw string) bool {
		return strings.Contains(l, kw)
	})
}

// Licenses splits the license cell. Entries such as "OSS:: LGPL v*" keep
// only the part after the last "::".
func Licenses(p types.SoftwarePackage) []string {
	var out []string
	for _, part := range strings.Split(p.License, ",") {
		if i := strings.LastIndex(part, "::"); i >= 0 {
			part = part[i+2:]
		}
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func HasCI(p types.SoftwarePackage) bool {
	return slices.Contains(p.DevOps, "Continuous Integration")
}

func devopsMentions(p types.SoftwarePackage, word string) bool {
	return slices.ContainsFunc(p.DevOps, func(d string) bool {
		return strings.Contains(strings.ToLower(d), word)
	})
}

func HasUnitTests(p types.SoftwarePackage) bool   { return devopsMentions(p, "unit") }
func HasBenchmarking(p types.SoftwarePackage) bool { return devopsMentions(p, "benchmark") }
func HasPackages(p types.SoftwarePackage) bool     { return devopsMentions(p, "package") }

func HasPublicRepository(p types.SoftwarePackage) bool { return p.Repository != "" }

// SupportsPullRequests reports a repository hosted on GitHub or GitLab.
func SupportsPullRequests(p types.SoftwarePackage) bool {
	r := strings.ToLower(p.Repository)
	return strings.Contains(r, "github.com") || strings.Contains(r, "gitlab")
}

// HasAnyPackage reports availability through at least one channel.
func HasAnyPackage(info types.PackagingInfo) bool {
	return info.Spack.Available || info.Guix.Available || info.PETSc.Available ||
		info.Docker.Available || info.Apptainer.Available
}

// CommunityPackages names the community package managers that ship the
// software.
func CommunityPackages(info types.PackagingInfo) []string {
	var out []string
	if info.Spack.Available {
		out = append(out, "Spack")
	}
	if info.Guix.Available {
		out = append(out, "Guix")
	}
	return out
}

var slugReplacer = strings.NewReplacer("/", "_", "+", "p", " ", "_", "-", "_")

// Slug returns the page name of a package.
func Slug(p types.SoftwarePackage) string {
	return slugReplacer.Replace(strings.ToLower(p.Name))
}
