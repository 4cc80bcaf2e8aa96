// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/harvest/pkg/types"
)

var benchmarkStatuses = Table[types.BenchmarkStatus]{
	{Equals("not yet"), types.BenchmarkNotYet},
	{All(Contains("cpu"), Contains("gpu")), types.BenchmarkCPUOrGPU},
	{Contains("cpu"), types.BenchmarkCPUOnly},
	{Contains("gpu"), types.BenchmarkGPUOnly},
}

// BenchmarkStatus classifies the "Benchmarked" cell. Blank and unrecognized
// labels mean not yet benchmarked.
func BenchmarkStatus(label string) types.BenchmarkStatus {
	return benchmarkStatuses.ClassifyOr(label, types.BenchmarkNotYet)
}

var applicationTypes = Table[types.ApplicationType]{
	{Equals("mini-app"), types.AppMiniApp},
	{Equals("extended-mini-app"), types.AppExtendedMiniApp},
	{Equals("proxy-app"), types.AppProxyApp},
	{Equals("full-application"), types.AppFull},
	{Equals("demonstrator"), types.AppDemonstrator},
	{Contains("extended"), types.AppExtendedMiniApp},
	{Contains("proxy"), types.AppProxyApp},
	{Contains("full"), types.AppFull},
	{Contains("demo"), types.AppDemonstrator},
}

// ApplicationType classifies an application type label, defaulting to
// mini-app.
func ApplicationType(label string) types.ApplicationType {
	return applicationTypes.ClassifyOr(dashed(label), types.AppMiniApp)
}

var applicationStatuses = Table[types.ApplicationStatus]{
	{Equals("planned"), types.AppPlanned},
	{Equals("in-development"), types.AppInDevelopment},
	{Equals("benchmark-ready"), types.AppBenchmarkReady},
	{Equals("completed"), types.AppCompleted},
}

// ApplicationStatus classifies an application status label, defaulting to
// planned.
func ApplicationStatus(label string) types.ApplicationStatus {
	return applicationStatuses.ClassifyOr(dashed(label), types.AppPlanned)
}

func dashed(label string) string {
	return strings.ReplaceAll(label, "_", "-")
}
