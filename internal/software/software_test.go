// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package software

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/harvest/pkg/types"
)

func frameworkRow() types.RawRecord {
	return types.RawRecord{
		"Name":            "Feel++",
		"Description":     "Finite element library",
		"Partner":         "Unistra",
		"Repository":      "https://github.com/feelpp/feelpp",
		"License":         "OSS:: LGPL v3, OSS:: GPL v3",
		"Languages":       "C++, Python",
		"DevOps":          "Continuous Integration\nUnit Tests, Spack packages",
		"Benchmarked":     "CPU and GPU",
		"Training":        "yes",
		"WP1":             "Discretization",
		"WP1 Benchmarked": "x",
		"WP3":             "Solvers, Preconditioners",
	}
}

func TestParsePackage(t *testing.T) {
	packaging := PackagingIndex([]types.RawRecord{
		{"Software Name": "Feel++", "Spack Available": "yes", "Guix-HPC Available": 1.0, "Docker Available": "no"},
		{"Version": "orphan row"},
	})
	require.Len(t, packaging, 1)

	p, ok := ParsePackage(frameworkRow(), packaging)
	require.True(t, ok)

	assert.Equal(t, "Feel++", p.Name)
	assert.Equal(t, []string{"C++", "Python"}, p.Languages)
	assert.Equal(t, []string{"Continuous Integration", "Unit Tests", "Spack packages"}, p.DevOps)
	assert.Equal(t, types.BenchmarkCPUOrGPU, p.Benchmark)
	assert.Equal(t, "CPU and GPU", p.BenchmarkLabel)
	assert.True(t, p.TrainingAvailable)
	assert.True(t, p.Eligible)

	require.Len(t, p.WorkPackages, 2)
	assert.Equal(t, types.WorkPackageInfo{Number: 1, Topics: []string{"Discretization"}, Benchmarked: true}, p.WorkPackages[0])
	assert.Equal(t, 3, p.WorkPackages[1].Number)
	assert.False(t, p.WorkPackages[1].Benchmarked)

	require.NotNil(t, p.Packaging)
	assert.True(t, HasAnyPackage(*p.Packaging))
	assert.Equal(t, []string{"Spack", "Guix"}, CommunityPackages(*p.Packaging))
}

func TestParsePackage_PackagingJoinIsExact(t *testing.T) {
	packaging := PackagingIndex([]types.RawRecord{{"Software Name": "feel++", "Spack Available": "yes"}})
	p, ok := ParsePackage(frameworkRow(), packaging)
	require.True(t, ok)
	assert.Nil(t, p.Packaging)
}

func TestParsePackage_NoName(t *testing.T) {
	_, ok := ParsePackage(types.RawRecord{"Description": "anonymous"}, nil)
	assert.False(t, ok)
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name      string
		benchmark string
		license   string
		devops    string
		want      bool
	}{
		{"complete", "CPU only", "MIT", "CI", true},
		{"not yet", "Not yet", "MIT", "CI", false},
		{"blank benchmark", "", "MIT", "CI", false},
		{"unrecognized benchmark", "maybe", "MIT", "CI", false},
		{"no license", "GPU", "", "CI", false},
		{"no devops", "GPU", "MIT", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePackage(types.RawRecord{
				"Name":        "pkg",
				"Benchmarked": tt.benchmark,
				"License":     tt.license,
				"DevOps":      tt.devops,
			}, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, p.Eligible)
		})
	}
}

func TestPackagePredicates(t *testing.T) {
	p, _ := ParsePackage(frameworkRow(), nil)

	assert.True(t, HasFLOSSLicense(p))
	assert.Equal(t, []string{"LGPL v3", "GPL v3"}, Licenses(p))
	assert.True(t, HasCI(p))
	assert.True(t, HasUnitTests(p))
	assert.False(t, HasBenchmarking(p))
	assert.True(t, HasPackages(p))
	assert.True(t, HasPublicRepository(p))
	assert.True(t, SupportsPullRequests(p))
	assert.Equal(t, "feelpp", Slug(p))

	assert.False(t, HasFLOSSLicense(types.SoftwarePackage{License: "Proprietary"}))
	assert.Equal(t, "mmg_parmmg", Slug(types.SoftwarePackage{Name: "Mmg/ParMmg"}))
}

func TestPackages(t *testing.T) {
	c := ParsePackages([]types.RawRecord{
		frameworkRow(),
		{"Name": "Samurai", "WP3": "Adaptive meshes"},
		{"Description": "skipped"},
	}, nil)
	require.Equal(t, 2, c.Len())

	require.Len(t, c.Eligible(), 1)
	assert.Equal(t, "Feel++", c.Eligible()[0].Name)

	p, ok := c.ByName("SAMURAI")
	require.True(t, ok)
	assert.Equal(t, "Samurai", p.Name)
	_, ok = c.ByName("missing")
	assert.False(t, ok)

	assert.Len(t, c.ByWorkPackage(3), 2)
	assert.Len(t, c.ByWorkPackage(1), 1)
	assert.Empty(t, c.ByWorkPackage(5))

	groups := c.ByBenchmark()
	require.Len(t, groups, 2)
	assert.Equal(t, string(types.BenchmarkCPUOrGPU), groups[0].Key)
	assert.Equal(t, string(types.BenchmarkNotYet), groups[1].Key)
}

func TestParseApplication(t *testing.T) {
	a, ok := ParseApplication(types.RawRecord{
		"id":                   "A1",
		"name":                 "Heat transfer",
		"Partners":             "Unistra, Inria",
		"work_package":         "WP1, WP3",
		"application_type":     "proxy_app",
		"purpose":              "Benchmark solvers",
		"Method-Algorithm WP1": "FEM, DG",
		"Method-Algorithm WP3": "GMRES",
		"WP7":                  "Continuous benchmarking",
		"status":               "benchmark_ready",
		"Framework":            "Feel++",
		"spec_due":             "2024-06-30",
	})
	require.True(t, ok)

	assert.Equal(t, types.AppProxyApp, a.Type)
	assert.Equal(t, "proxy_app", a.TypeLabel)
	assert.Equal(t, types.AppBenchmarkReady, a.Status)
	assert.Equal(t, []string{"Unistra", "Inria"}, a.Partners)
	assert.Equal(t, map[int][]string{1: {"FEM", "DG"}, 3: {"GMRES"}, 7: {"Continuous benchmarking"}}, a.Methods)
	assert.Equal(t, []string{"Continuous benchmarking", "DG", "FEM", "GMRES"}, AllMethods(a))
	require.NotNil(t, a.SpecDue)
	assert.Nil(t, a.ProtoDue)
	assert.True(t, a.Eligible)
	assert.True(t, BenchmarkReady(a))
	assert.False(t, HasRepository(a))
	assert.Equal(t, "a1", ApplicationSlug(a))
}

func TestParseApplication_Defaults(t *testing.T) {
	_, ok := ParseApplication(types.RawRecord{"name": "no id"})
	assert.False(t, ok)

	a, ok := ParseApplication(types.RawRecord{"id": "A2", "name": "Draft"})
	require.True(t, ok)
	assert.Equal(t, types.AppMiniApp, a.Type)
	assert.Equal(t, types.AppPlanned, a.Status)
	assert.False(t, a.Eligible)
	assert.Nil(t, a.Methods)
}

func TestApplications(t *testing.T) {
	c := ParseApplications([]types.RawRecord{
		{"id": "A1", "name": "One", "purpose": "p", "Framework": "Feel++, MFEM", "work_package": "WP1", "status": "completed"},
		{"id": "A2", "name": "Two", "Framework": "Samurai", "work_package": "wp3", "application_type": "demonstrator"},
		{"name": "skipped"},
	})
	require.Equal(t, 2, c.Len())

	assert.Len(t, c.Eligible(), 1)
	assert.Len(t, c.BenchmarkReady(), 1)
	assert.Len(t, c.ByFramework("feel"), 1)
	assert.Len(t, c.ByFramework("SAMURAI"), 1)
	assert.Len(t, c.ByWorkPackage("WP3"), 1)

	a, ok := c.ByID("A2")
	require.True(t, ok)
	assert.Equal(t, "Two", a.Name)

	groups := c.ByType()
	require.Len(t, groups, 2)
	assert.Equal(t, string(types.AppMiniApp), groups[0].Key)
	assert.Equal(t, string(types.AppDemonstrator), groups[1].Key)
}
