// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BenchmarkStatus records on which hardware a package has been benchmarked.
type BenchmarkStatus string

const (
	BenchmarkNotYet   BenchmarkStatus = "not-yet"
	BenchmarkCPUOnly  BenchmarkStatus = "cpu-only"
	BenchmarkGPUOnly  BenchmarkStatus = "gpu-only"
	BenchmarkCPUOrGPU BenchmarkStatus = "cpu-or-gpu"
)

// PackageChannel is availability through one packaging channel.
type PackageChannel struct {
	Available bool   `json:"available" yaml:"available"`
	Timeline  string `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PackagingInfo is the packaging sub-record joined to a software package by
// exact name.
type PackagingInfo struct {
	SoftwareName string         `json:"software_name" yaml:"software_name"`
	Version      string         `json:"version,omitempty" yaml:"version,omitempty"`
	Spack        PackageChannel `json:"spack" yaml:"spack"`
	Guix         PackageChannel `json:"guix" yaml:"guix"`
	PETSc        PackageChannel `json:"petsc" yaml:"petsc"`
	Docker       PackageChannel `json:"docker" yaml:"docker"`
	Apptainer    PackageChannel `json:"apptainer" yaml:"apptainer"`
	Notes        string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	LastUpdated  *time.Time     `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// WorkPackageInfo is a package's involvement in one work package.
type WorkPackageInfo struct {
	Number      int      `json:"number" yaml:"number"`
	Topics      []string `json:"topics" yaml:"topics"`
	Benchmarked bool     `json:"benchmarked" yaml:"benchmarked"`
}

// SoftwarePackage is one entry of the software stack.
type SoftwarePackage struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Partner       string   `json:"partner,omitempty" yaml:"partner,omitempty"`
	Consortium    string   `json:"consortium,omitempty" yaml:"consortium,omitempty"`
	Emails        []string `json:"emails,omitempty" yaml:"emails,omitempty"`
	GithubAccount string   `json:"github_account,omitempty" yaml:"github_account,omitempty"`

	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`
	License    string `json:"license,omitempty" yaml:"license,omitempty"`
	Interfaces string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`

	DocsURL           string   `json:"docs_url,omitempty" yaml:"docs_url,omitempty"`
	Channels          []string `json:"channels,omitempty" yaml:"channels,omitempty"`
	TrainingAvailable bool     `json:"training_available" yaml:"training_available"`
	TrainingURL       string   `json:"training_url,omitempty" yaml:"training_url,omitempty"`

	Languages   []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	Parallelism []string `json:"parallelism,omitempty" yaml:"parallelism,omitempty"`
	DataFormats []string `json:"data_formats,omitempty" yaml:"data_formats,omitempty"`
	Resilience  string   `json:"resilience,omitempty" yaml:"resilience,omitempty"`
	Bottlenecks []string `json:"bottlenecks,omitempty" yaml:"bottlenecks,omitempty"`

	DevOps   []string `json:"devops,omitempty" yaml:"devops,omitempty"`
	API      string   `json:"api,omitempty" yaml:"api,omitempty"`
	Metadata string   `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Benchmark is BenchmarkNotYet for blank or unrecognized cells;
	// BenchmarkLabel keeps the raw cell.
	Benchmark      BenchmarkStatus `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`
	BenchmarkLabel string          `json:"benchmark_label,omitempty" yaml:"benchmark_label,omitempty"`
	Comments       string          `json:"comments,omitempty" yaml:"comments,omitempty"`

	WorkPackages []WorkPackageInfo `json:"work_packages,omitempty" yaml:"work_packages,omitempty"`
	Packaging    *PackagingInfo    `json:"packaging,omitempty" yaml:"packaging,omitempty"`

	// Eligible is derived at parse time: benchmarked, licensed, with DevOps
	// practices.
	Eligible bool `json:"eligible" yaml:"eligible"`
}

// ApplicationType classifies a benchmark application.
type ApplicationType string

const (
	AppMiniApp         ApplicationType = "mini-app"
	AppExtendedMiniApp ApplicationType = "extended-mini-app"
	AppProxyApp        ApplicationType = "proxy-app"
	AppFull            ApplicationType = "full-application"
	AppDemonstrator    ApplicationType = "demonstrator"
)

// ApplicationStatus is the development stage of an application.
type ApplicationStatus string

const (
	AppPlanned        ApplicationStatus = "planned"
	AppInDevelopment  ApplicationStatus = "in-development"
	AppBenchmarkReady ApplicationStatus = "benchmark-ready"
	AppCompleted      ApplicationStatus = "completed"
)

// Application is one benchmark application or mini-app.
type Application struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Partners    []string `json:"partners,omitempty" yaml:"partners,omitempty"`
	PC          []string `json:"pc,omitempty" yaml:"pc,omitempty"`
	Responsible []string `json:"responsible,omitempty" yaml:"responsible,omitempty"`
	WP7Engineer string   `json:"wp7_engineer,omitempty" yaml:"wp7_engineer,omitempty"`

	WorkPackages []string        `json:"work_packages,omitempty" yaml:"work_packages,omitempty"`
	Type         ApplicationType `json:"type" yaml:"type"`
	TypeLabel    string          `json:"type_label,omitempty" yaml:"type_label,omitempty"`
	Purpose      string          `json:"purpose,omitempty" yaml:"purpose,omitempty"`

	// Methods holds "Method-Algorithm WPn" cells indexed by WP number 1..6;
	// index 7 holds the WP7 topics.
	Methods map[int][]string `json:"methods,omitempty" yaml:"methods,omitempty"`

	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	Metrics        []string          `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Status         ApplicationStatus `json:"status" yaml:"status"`
	StatusLabel    string            `json:"status_label,omitempty" yaml:"status_label,omitempty"`
	BenchmarkScope []string          `json:"benchmark_scope,omitempty" yaml:"benchmark_scope,omitempty"`

	Frameworks         []string `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	ParallelFrameworks []string `json:"parallel_frameworks,omitempty" yaml:"parallel_frameworks,omitempty"`

	SpecDue  *time.Time `json:"spec_due,omitempty" yaml:"spec_due,omitempty"`
	ProtoDue *time.Time `json:"proto_due,omitempty" yaml:"proto_due,omitempty"`

	RepoURL string `json:"repo_url,omitempty" yaml:"repo_url,omitempty"`
	TexURL  string `json:"tex_url,omitempty" yaml:"tex_url,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Eligible is true when the application has a name and a purpose.
	Eligible bool `json:"eligible" yaml:"eligible"`
}
