// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publications turns raw HAL search records into canonical
// publications. A HAL document can appear once per revision; Resolve keeps
// one record per logical identifier, chosen by how complete its publication
// metadata looks rather than by revision number alone.
package publications

import (
	"slices"
	"strings"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

// HAL search field names.
const (
	fieldDocID        = "docid"
	fieldHalID        = "halId_s"
	fieldVersion      = "version_i"
	fieldURI          = "uri_s"
	fieldDOI          = "doiId_s"
	fieldTitle        = "title_s"
	fieldAuthors      = "authFullName_s"
	fieldProducedDate = "producedDate_s"
	fieldYear         = "publicationDateY_i"
	fieldDocType      = "docType_s"
	fieldDocTypeLabel = "docTypeLabel_s"
	fieldJournal      = "journalTitle_s"
	fieldConference   = "conferenceTitle_s"
	fieldAbstract     = "abstract_s"
	fieldKeywords     = "keyword_s"
	fieldDomains      = "domain_s"
	fieldOpenAccess   = "openAccess_bool"
	fieldCitation     = "citationFull_s"
	fieldPDF          = "fileMain_s"
)

// Fields lists the HAL fields requested from the search API.
var Fields = []string{
	fieldDocID, fieldHalID, fieldVersion, fieldURI, fieldDOI, fieldTitle,
	fieldAuthors, fieldProducedDate, fieldYear, fieldDocType, fieldDocTypeLabel,
	fieldJournal, fieldConference, fieldAbstract, fieldKeywords, fieldDomains,
	fieldOpenAccess, fieldCitation, fieldPDF,
}

// Scoring weights for version selection.
const (
	pointsPublished  = 30
	pointsDOI        = 10
	pointsConference = 20
	pointsFinal      = 15
)

// Identity returns the logical identifier of a raw record: the HAL id, else
// the URI, else the docid. An empty result means the record cannot be
// identified.
func Identity(r types.RawRecord) string {
	for _, field := range []string{fieldHalID, fieldURI, fieldDocID} {
		if id := clean.First(r[field]); id != "" {
			return id
		}
	}
	return ""
}

// VersionScore orders revisions of the same document. Fields compare
// lexicographically: type points, then revision number, then production date.
type VersionScore struct {
	Points  int
	Version int
	Date    string
}

// Less reports whether s ranks strictly below o.
func (s VersionScore) Less(o VersionScore) bool {
	if s.Points != o.Points {
		return s.Points < o.Points
	}
	if s.Version != o.Version {
		return s.Version < o.Version
	}
	return s.Date < o.Date
}

// Score rates how published a raw record looks.
func Score(r types.RawRecord) VersionScore {
	code := strings.ToUpper(clean.First(r[fieldDocType]))
	journal := clean.First(r[fieldJournal])
	conference := clean.First(r[fieldConference])
	doi := clean.First(r[fieldDOI])

	var s VersionScore
	if code == "ART" || journal != "" || doi != "" {
		s.Points += pointsPublished
	}
	if doi != "" {
		s.Points += pointsDOI
	}
	if code == "COMM" || conference != "" {
		s.Points += pointsConference
	}
	if classify.IsFinalType(code) {
		s.Points += pointsFinal
	}
	s.Version, _ = clean.Int(r[fieldVersion])
	s.Date = clean.First(r[fieldProducedDate])
	return s
}

// Selected is the winning raw record of one identifier group.
type Selected struct {
	Record types.RawRecord
	// VersionsFound counts the raw records that shared the identifier.
	VersionsFound int
}

// SelectBest groups records by Identity and keeps the highest scoring record
// of each group. Ties keep the record encountered first. Groups come back in
// first-seen order; records without identity are skipped.
func SelectBest(batch []types.RawRecord) []Selected {
	index := make(map[string]int)
	var (
		selected []Selected
		scores   []VersionScore
	)
	for _, r := range batch {
		id := Identity(r)
		if id == "" {
			continue
		}
		i, seen := index[id]
		if !seen {
			index[id] = len(selected)
			selected = append(selected, Selected{Record: r, VersionsFound: 1})
			scores = append(scores, Score(r))
			continue
		}
		selected[i].VersionsFound++
		if s := Score(r); scores[i].Less(s) {
			selected[i].Record = r
			scores[i] = s
		}
	}
	return selected
}

// Resolve returns exactly one canonical publication per distinct identifier
// in batch, sorted by production date with the most recent first.
func Resolve(batch []types.RawRecord) []types.Publication {
	selected := SelectBest(batch)
	pubs := make([]types.Publication, len(selected))
	for i, s := range selected {
		pubs[i] = Normalize(s.Record, s.VersionsFound)
	}
	slices.SortStableFunc(pubs, func(a, b types.Publication) int {
		return strings.Compare(b.Date, a.Date)
	})
	return pubs
}

// Normalize converts one raw record into a canonical publication.
func Normalize(r types.RawRecord, versionsFound int) types.Publication {
	journal := clean.First(r[fieldJournal])
	conference := clean.First(r[fieldConference])
	doi := clean.First(r[fieldDOI])

	version, _ := clean.Int(r[fieldVersion])
	year, _ := clean.Int(r[fieldYear])

	return types.Publication{
		ID:            Identity(r),
		Version:       version,
		VersionsFound: versionsFound,
		URL:           clean.First(r[fieldURI]),
		Title:         clean.First(r[fieldTitle]),
		Authors:       clean.Strings(r[fieldAuthors]),
		Date:          clean.First(r[fieldProducedDate]),
		Year:          year,
		TypeInfo: classify.Publication(clean.First(r[fieldDocType]), classify.PublicationHints{
			Label:      clean.First(r[fieldDocTypeLabel]),
			Journal:    journal,
			Conference: conference,
			DOI:        doi,
		}),
		Journal:    journal,
		Conference: conference,
		DOI:        doi,
		Abstract:   clean.First(r[fieldAbstract]),
		Keywords:   clean.Strings(r[fieldKeywords]),
		Domains:    clean.Strings(r[fieldDomains]),
		OpenAccess: clean.ParseBool(r[fieldOpenAccess]),
		Citation:   clean.First(r[fieldCitation]),
		PDFURL:     clean.First(r[fieldPDF]),
	}
}
