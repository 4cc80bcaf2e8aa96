// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package software

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

// wp7Methods is the Methods index holding the "WP7" topic column.
const wp7Methods = 7

// ParseApplication converts one applications sheet row. Rows without an id
// yield false.
func ParseApplication(r types.RawRecord) (types.Application, bool) {
	id := clean.String(r["id"])
	if id == "" {
		return types.Application{}, false
	}

	typeLabel := clean.String(r["application_type"])
	statusLabel := clean.String(r["status"])
	a := types.Application{
		ID:                 id,
		Name:               clean.String(r["name"]),
		Partners:           clean.SplitMultiValue(r["Partners"]),
		PC:                 clean.SplitMultiValue(r["PC"]),
		Responsible:        clean.SplitMultiValue(r["Responsible (Permanent)"]),
		WP7Engineer:        clean.String(r["WP7 Engineer"]),
		WorkPackages:       clean.SplitMultiValue(r["work_package"]),
		Type:               classify.ApplicationType(typeLabel),
		TypeLabel:          typeLabel,
		Purpose:            clean.String(r["purpose"]),
		Inputs:             clean.SplitMultiValue(r["inputs"]),
		Outputs:            clean.SplitMultiValue(r["outputs"]),
		Metrics:            clean.SplitMultiValue(r["metrics"]),
		Status:             classify.ApplicationStatus(statusLabel),
		StatusLabel:        statusLabel,
		BenchmarkScope:     clean.SplitMultiValue(r["Benchmark scope"]),
		Frameworks:         clean.SplitMultiValue(r["Framework"]),
		ParallelFrameworks: clean.SplitMultiValue(r["parallel_framework"]),
		SpecDue:            clean.ParseDate(r["spec_due"]),
		ProtoDue:           clean.ParseDate(r["proto_due"]),
		RepoURL:            clean.String(r["repo_url"]),
		TexURL:             clean.String(r["tex_url"]),
		Notes:              clean.String(r["notes"]),
	}

	methods := make(map[int][]string)
	for n := 1; n < wp7Methods; n++ {
		if m := clean.SplitMultiValue(r[fmt.Sprintf("Method-Algorithm WP%d", n)]); len(m) > 0 {
			methods[n] = m
		}
	}
	if topics := clean.SplitMultiValue(r["WP7"]); len(topics) > 0 {
		methods[wp7Methods] = topics
	}
	if len(methods) > 0 {
		a.Methods = methods
	}

	a.Eligible = a.Name != "" && a.Purpose != ""
	return a, true
}

// BenchmarkReady reports an application ready for or done with benchmarking.
func BenchmarkReady(a types.Application) bool {
	return a.Status == types.AppBenchmarkReady || a.Status == types.AppCompleted
}

func HasRepository(a types.Application) bool { return a.RepoURL != "" }

// AllMethods returns the distinct methods across every work package, sorted.
func AllMethods(a types.Application) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, m := range a.Methods {
		set.Append(m...)
	}
	out := set.ToSlice()
	slices.Sort(out)
	return out
}

var appSlugReplacer = strings.NewReplacer("/", "_", "+", "p", " ", "_")

// ApplicationSlug returns the page name of an application.
func ApplicationSlug(a types.Application) string {
	return appSlugReplacer.Replace(strings.ToLower(a.ID))
}
