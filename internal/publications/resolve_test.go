// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/harvest/pkg/types"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		rec  types.RawRecord
		want string
	}{
		{"hal id wins", types.RawRecord{"halId_s": "hal-1", "uri_s": "u", "docid": 7.0}, "hal-1"},
		{"uri fallback", types.RawRecord{"uri_s": "https://hal.science/x", "docid": 7.0}, "https://hal.science/x"},
		{"docid fallback", types.RawRecord{"docid": 4242.0}, "4242"},
		{"blank hal id skipped", types.RawRecord{"halId_s": "  ", "docid": "9"}, "9"},
		{"no identity", types.RawRecord{"title_s": "t"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identity(tt.rec))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		rec  types.RawRecord
		want int
	}{
		{"bare preprint", types.RawRecord{"docType_s": "UNDEFINED"}, 0},
		{"article", types.RawRecord{"docType_s": "ART"}, 30},
		{"article with doi", types.RawRecord{"docType_s": "ART", "doiId_s": "10.1/x"}, 40},
		{"journal title only", types.RawRecord{"journalTitle_s": "J"}, 30},
		{"conference", types.RawRecord{"docType_s": "COMM"}, 20},
		{"conference title on preprint", types.RawRecord{"docType_s": "UNDEFINED", "conferenceTitle_s": "C"}, 20},
		{"thesis", types.RawRecord{"docType_s": "THESE"}, 15},
		{"report with doi", types.RawRecord{"docType_s": "REPORT", "doiId_s": "10.1/y"}, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.rec).Points)
		})
	}
}

func TestVersionScoreLess(t *testing.T) {
	assert.True(t, VersionScore{Points: 0, Version: 9}.Less(VersionScore{Points: 30, Version: 1}))
	assert.True(t, VersionScore{Points: 30, Version: 1}.Less(VersionScore{Points: 30, Version: 2}))
	assert.True(t, VersionScore{Points: 30, Version: 2, Date: "2024-01-01"}.Less(VersionScore{Points: 30, Version: 2, Date: "2024-02-01"}))
	assert.False(t, VersionScore{Points: 30, Version: 2}.Less(VersionScore{Points: 30, Version: 2}))
}

func TestResolve_PrefersPublishedRevision(t *testing.T) {
	batch := []types.RawRecord{
		{"halId_s": "hal-01", "version_i": 1.0, "docType_s": "UNDEFINED", "title_s": "Draft", "producedDate_s": "2023-05-01"},
		{"halId_s": "hal-01", "version_i": 2.0, "docType_s": "ART", "journalTitle_s": "J", "title_s": "Final", "producedDate_s": "2023-09-01"},
	}

	pubs := Resolve(batch)
	require.Len(t, pubs, 1)
	p := pubs[0]
	assert.Equal(t, "hal-01", p.ID)
	assert.Equal(t, 2, p.Version)
	assert.Equal(t, 2, p.VersionsFound)
	assert.Equal(t, "Final", p.Title)
	assert.Equal(t, types.PubJournalArticle, p.Type)
	assert.Equal(t, "ART", p.SourceCode)
}

func TestResolve_PublishedBeatsHigherRevision(t *testing.T) {
	batch := []types.RawRecord{
		{"halId_s": "hal-02", "version_i": 1.0, "docType_s": "ART", "doiId_s": "10.1/a"},
		{"halId_s": "hal-02", "version_i": 3.0, "docType_s": "UNDEFINED"},
	}
	pubs := Resolve(batch)
	require.Len(t, pubs, 1)
	assert.Equal(t, 1, pubs[0].Version)
	assert.Equal(t, "10.1/a", pubs[0].DOI)
}

func TestResolve_TieKeepsFirst(t *testing.T) {
	batch := []types.RawRecord{
		{"halId_s": "hal-03", "version_i": 1.0, "title_s": "first"},
		{"halId_s": "hal-03", "version_i": 1.0, "title_s": "second"},
	}
	pubs := Resolve(batch)
	require.Len(t, pubs, 1)
	assert.Equal(t, "first", pubs[0].Title)
}

func TestResolve_OnePerIdentifier(t *testing.T) {
	batch := []types.RawRecord{
		{"halId_s": "a", "version_i": 1.0, "producedDate_s": "2024-01-10"},
		{"halId_s": "b", "producedDate_s": "2025-03-02"},
		{"halId_s": "a", "version_i": 2.0, "producedDate_s": "2024-02-10"},
		{"title_s": "no identity"},
		{"uri_s": "https://hal.science/c", "producedDate_s": "2023-12-31"},
		{"halId_s": "b", "version_i": 4.0, "producedDate_s": "2025-03-02"},
	}

	pubs := Resolve(batch)
	ids := make([]string, len(pubs))
	for i, p := range pubs {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"b", "a", "https://hal.science/c"}, ids)

	found := map[string]int{}
	for _, p := range pubs {
		found[p.ID] = p.VersionsFound
	}
	assert.Equal(t, map[string]int{"a": 2, "b": 2, "https://hal.science/c": 1}, found)
}

func TestResolve_Idempotent(t *testing.T) {
	batch := []types.RawRecord{
		{"halId_s": "x", "version_i": 1.0, "docType_s": "COMM", "conferenceTitle_s": "SC24", "producedDate_s": "2024-11-01"},
		{"halId_s": "y", "version_i": 1.0, "docType_s": "REPORT", "producedDate_s": "2024-06-01"},
		{"halId_s": "x", "version_i": 2.0, "docType_s": "COMM", "producedDate_s": "2024-11-05"},
	}

	first := SelectBest(batch)
	var winners []types.RawRecord
	for _, s := range first {
		winners = append(winners, s.Record)
	}
	second := SelectBest(winners)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Record, second[i].Record)
		assert.Equal(t, 1, second[i].VersionsFound)
	}
}

func TestResolve_Empty(t *testing.T) {
	assert.Empty(t, Resolve(nil))
}

func TestNormalize(t *testing.T) {
	rec := types.RawRecord{
		"halId_s":            "hal-04",
		"version_i":          3.0,
		"uri_s":              "https://hal.science/hal-04v3",
		"title_s":            []any{"Scalable solvers", "Solveurs"},
		"authFullName_s":     []any{"Ada Lovelace", " ", "Alan Turing"},
		"producedDate_s":     "2024-04-02",
		"publicationDateY_i": 2024.0,
		"docType_s":          "UNDEFINED",
		"doiId_s":            "10.5/xyz",
		"keyword_s":          "HPC",
		"domain_s":           []any{"math", "info"},
		"openAccess_bool":    true,
		"fileMain_s":         "https://hal.science/file.pdf",
	}

	p := Normalize(rec, 2)
	assert.Equal(t, "Scalable solvers", p.Title)
	assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, p.Authors)
	assert.Equal(t, 2024, p.Year)
	assert.Equal(t, 3, p.Version)
	assert.Equal(t, 2, p.VersionsFound)
	assert.Equal(t, []string{"HPC"}, p.Keywords)
	assert.Equal(t, []string{"math", "info"}, p.Domains)
	assert.True(t, p.OpenAccess)
	// A DOI on an undefined document means it was published in a journal.
	assert.Equal(t, types.PubJournalArticle, p.Type)
	assert.Equal(t, "UNDEFINED", p.SourceCode)
}
