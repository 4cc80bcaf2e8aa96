// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/harvest/pkg/types"
)

type publicationClass struct {
	Type  types.PublicationType
	Label string
}

var (
	journalArticle  = publicationClass{types.PubJournalArticle, "Article in journal"}
	conferencePaper = publicationClass{types.PubConferencePaper, "Conference paper"}
	otherOutput     = publicationClass{types.PubOther, "Other"}
)

// publicationCodes maps HAL document type codes to publication types.
var publicationCodes = Table[publicationClass]{
	{Equals("art"), journalArticle},
	{Equals("comm"), conferencePaper},
	{Equals("couv"), publicationClass{types.PubBookChapter, "Book chapter"}},
	{Equals("ouv"), publicationClass{types.PubBook, "Book"}},
	{Equals("report"), publicationClass{types.PubReport, "Report"}},
	{Equals("these"), publicationClass{types.PubThesis, "Thesis"}},
	{Equals("hdr"), publicationClass{types.PubThesis, "HDR"}},
	{Equals("poster"), publicationClass{types.PubPoster, "Poster"}},
	{Equals("patent"), publicationClass{types.PubPatent, "Patent"}},
	{Equals("software"), publicationClass{types.PubSoftware, "Software"}},
	{Equals("data"), publicationClass{types.PubDataset, "Dataset"}},
	{Equals("undefined"), publicationClass{types.PubPreprint, "Preprint / unpublished"}},
	{Equals("other"), otherOutput},
}

// PublicationHints are the richer record fields used to refine a weak or
// unknown document type.
type PublicationHints struct {
	Label      string
	Journal    string
	Conference string
	DOI        string
}

// Publication infers the publication type from a source document type code.
// Weak types (preprint, other) and unknown codes are re-derived from the
// hints: a journal title or DOI means journal article, a conference title
// means conference paper. The source code and label are always kept.
func Publication(code string, h PublicationHints) types.TypeInfo {
	code = strings.TrimSpace(code)
	class, known := publicationCodes.Classify(code)
	if !known {
		class = otherOutput
	}
	if class.Type == types.PubPreprint || class.Type == types.PubOther {
		class = promote(class, h)
	}
	return types.TypeInfo{
		Type:        class.Type,
		Label:       class.Label,
		SourceCode:  code,
		SourceLabel: strings.TrimSpace(h.Label),
	}
}

func promote(class publicationClass, h PublicationHints) publicationClass {
	switch {
	case strings.TrimSpace(h.Journal) != "" || strings.TrimSpace(h.DOI) != "":
		return journalArticle
	case strings.TrimSpace(h.Conference) != "":
		return conferencePaper
	}
	return class
}

// IsFinalType reports whether a HAL code denotes an inherently final output
// (book, book chapter, report, thesis).
func IsFinalType(code string) bool {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "COUV", "OUV", "REPORT", "THESE", "HDR":
		return true
	}
	return false
}
