// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/harvest/pkg/types"
)

func TestTable_FirstMatchWins(t *testing.T) {
	table := Table[string]{
		{Contains("a"), "first"},
		{Contains("ab"), "second"},
	}
	got, ok := table.Classify("  AB ")
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = table.Classify("zzz")
	assert.False(t, ok)
	assert.Equal(t, "fallback", table.ClassifyOr("zzz", "fallback"))
}

func TestPublication(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		hints     PublicationHints
		wantType  types.PublicationType
		wantLabel string
	}{
		{"article", "ART", PublicationHints{}, types.PubJournalArticle, "Article in journal"},
		{"conference", "COMM", PublicationHints{}, types.PubConferencePaper, "Conference paper"},
		{"chapter", "COUV", PublicationHints{}, types.PubBookChapter, "Book chapter"},
		{"hdr is a thesis", "HDR", PublicationHints{}, types.PubThesis, "HDR"},
		{"thesis", "THESE", PublicationHints{}, types.PubThesis, "Thesis"},
		{"dataset", "DATA", PublicationHints{}, types.PubDataset, "Dataset"},
		{"undefined stays preprint", "UNDEFINED", PublicationHints{}, types.PubPreprint, "Preprint / unpublished"},
		{"undefined with doi", "UNDEFINED", PublicationHints{DOI: "10.1/x"}, types.PubJournalArticle, "Article in journal"},
		{"undefined with journal", "UNDEFINED", PublicationHints{Journal: "J"}, types.PubJournalArticle, "Article in journal"},
		{"undefined with conference", "UNDEFINED", PublicationHints{Conference: "C"}, types.PubConferencePaper, "Conference paper"},
		{"journal beats conference", "OTHER", PublicationHints{Journal: "J", Conference: "C"}, types.PubJournalArticle, "Article in journal"},
		{"other stays other", "OTHER", PublicationHints{}, types.PubOther, "Other"},
		{"report not promoted", "REPORT", PublicationHints{DOI: "10.1/x"}, types.PubReport, "Report"},
		{"unknown code with doi", "LECTURE", PublicationHints{DOI: "10.1/x"}, types.PubJournalArticle, "Article in journal"},
		{"unknown code with conference", "", PublicationHints{Conference: "C"}, types.PubConferencePaper, "Conference paper"},
		{"unknown code bare", "LECTURE", PublicationHints{}, types.PubOther, "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Publication(tt.code, tt.hints)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.code, got.SourceCode)
		})
	}
}

func TestPublication_KeepsSourceLabel(t *testing.T) {
	got := Publication("LECTURE", PublicationHints{Label: "Cours"})
	assert.Equal(t, "LECTURE", got.SourceCode)
	assert.Equal(t, "Cours", got.SourceLabel)
}

func TestPartnerType(t *testing.T) {
	tests := []struct {
		label    string
		wantType types.PartnerType
		wantSize types.CompanySize
	}{
		{"Entreprise - Large group", types.PartnerCompany, types.SizeLarge},
		{"Entreprise - SME", types.PartnerCompany, types.SizeSME},
		{"Company (Mid Cap)", types.PartnerCompany, types.SizeMidCap},
		{"Entreprise", types.PartnerCompany, types.SizeUnknown},
		{"EPIC", types.PartnerEPIC, types.SizeResearch},
		{"Academic", types.PartnerAcademic, types.SizeResearch},
		{"Université", types.PartnerAcademic, types.SizeResearch},
		{"Public Research", types.PartnerPublicResearch, types.SizeResearch},
		{"Large scale Research Infrastructure", types.PartnerInfrastructure, types.SizeResearch},
		{"Association", types.PartnerOther, types.SizeUnknown},
		{"Foundation - SME", types.PartnerOther, types.SizeSME},
		{"", types.PartnerOther, types.SizeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			gotType, gotSize := PartnerType(tt.label)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantSize, gotSize)
		})
	}
}

func TestPartnerStatus(t *testing.T) {
	assert.Equal(t, types.StatusPositive, PartnerStatus("Positive Response"))
	assert.Equal(t, types.StatusWorkProgramme, PartnerStatus("Work programme discussed"))
	assert.Equal(t, types.StatusInitialEmail, PartnerStatus("Initial email sent"))
	assert.Equal(t, types.StatusNotContacted, PartnerStatus("not contacted yet"))
	assert.Equal(t, types.StatusOther, PartnerStatus("On hold"))
	assert.Equal(t, types.StatusUnknown, PartnerStatus("  "))
}

func TestPartnerIcon(t *testing.T) {
	assert.Equal(t, "rocket", PartnerIcon("Safran Tech"))
	assert.Equal(t, "oil-can", PartnerIcon("TotalEnergies"))
	assert.Equal(t, "university", PartnerIcon("U Luxembourg"))
	assert.Equal(t, "handshake", PartnerIcon("Acme"))
	assert.Equal(t, "handshake", PartnerIcon(""))
}

func TestPosition(t *testing.T) {
	tests := map[string]types.PositionType{
		"PhD":                types.PositionPhD,
		"Thèse CIFRE":        types.PositionPhD,
		"Post-Doc":           types.PositionPostdoc,
		"IR-CDD":             types.PositionResearchEngineer,
		"Research Engineer":  types.PositionResearchEngineer,
		"Ingénieur":          types.PositionResearchEngineer,
		"Permanent":          types.PositionPermanent,
		"CDI":                types.PositionPermanent,
		"Intern":             types.PositionOther,
		"":                   types.PositionOther,
	}
	for label, want := range tests {
		assert.Equal(t, want, Position(label), "Position(%q)", label)
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		name   string
		column any
		first  string
		want   types.Gender
	}{
		{"column female overrides name", 1.0, "Pierre", types.GenderFemale},
		{"column male overrides name", 0.0, "Marie", types.GenderMale},
		{"blank column falls back to name", nil, "Marie", types.GenderFemale},
		{"NaN column falls back to name", math.NaN(), "Thomas", types.GenderMale},
		{"ambiguous column falls back", "n/a", "Claire", types.GenderFemale},
		{"compound first name", nil, "Jean-Pierre", types.GenderMale},
		{"accented name", nil, "Hélène", types.GenderFemale},
		{"unknown name", nil, "Xyzzy", types.GenderUnknown},
		{"empty name", nil, "", types.GenderUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gender(tt.column, tt.first))
		})
	}
}

func TestInstitution(t *testing.T) {
	assert.Equal(t, "Inria", Institution("INRIA"))
	assert.Equal(t, "École Polytechnique", Institution("EP"))
	assert.Equal(t, "Unknown", Institution(""))
	assert.Equal(t, "Université Grenoble Alpes", Institution("Université Grenoble Alpes"))
}

func TestBenchmarkStatus(t *testing.T) {
	assert.Equal(t, types.BenchmarkNotYet, BenchmarkStatus(""))
	assert.Equal(t, types.BenchmarkNotYet, BenchmarkStatus("NOT YET"))
	assert.Equal(t, types.BenchmarkCPUOrGPU, BenchmarkStatus("CPU or GPU"))
	assert.Equal(t, types.BenchmarkCPUOnly, BenchmarkStatus("CPU only"))
	assert.Equal(t, types.BenchmarkGPUOnly, BenchmarkStatus("GPU"))
	assert.Equal(t, types.BenchmarkNotYet, BenchmarkStatus("soon"))
}

func TestApplicationTypeAndStatus(t *testing.T) {
	assert.Equal(t, types.AppMiniApp, ApplicationType(""))
	assert.Equal(t, types.AppProxyApp, ApplicationType("proxy_app"))
	assert.Equal(t, types.AppExtendedMiniApp, ApplicationType("Extended mini app"))
	assert.Equal(t, types.AppFull, ApplicationType("Full application"))
	assert.Equal(t, types.AppDemonstrator, ApplicationType("Demo"))

	assert.Equal(t, types.AppPlanned, ApplicationStatus(""))
	assert.Equal(t, types.AppBenchmarkReady, ApplicationStatus("benchmark_ready"))
	assert.Equal(t, types.AppInDevelopment, ApplicationStatus("In-Development"))
	assert.Equal(t, types.AppPlanned, ApplicationStatus("unknown"))
}
