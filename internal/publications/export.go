// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/harvest/pkg/types"
)

// Metadata describes a harvest in the JSON export.
type Metadata struct {
	Source      string    `json:"source"`
	Project     string    `json:"project"`
	ANRID       string    `json:"anr_project_id,omitempty"`
	Query       string    `json:"query"`
	HarvestedAt time.Time `json:"harvested_at"`
	TotalCount  int       `json:"total_count"`
}

type jsonExport struct {
	Metadata     Metadata            `json:"metadata"`
	Publications []types.Publication `json:"publications"`
}

// NewMetadata fills the export header for a harvest of n publications.
func NewMetadata(project types.ProjectConfig, q Query, n int, now time.Time) Metadata {
	name := project.Name
	if project.ANRID != "" {
		name = fmt.Sprintf("%s (%s)", project.Name, project.ANRID)
	}
	return Metadata{
		Source:      "HAL - Hyper Articles en Ligne",
		Project:     name,
		ANRID:       project.ANRID,
		Query:       q.Q,
		HarvestedAt: now,
		TotalCount:  n,
	}
}

// WriteJSON writes pubs with a metadata header as indented JSON.
func WriteJSON(w io.Writer, meta Metadata, pubs []types.Publication) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if pubs == nil {
		pubs = []types.Publication{}
	}
	return enc.Encode(jsonExport{Metadata: meta, Publications: pubs})
}

var csvHeader = []string{
	"hal_id", "hal_version", "hal_versions_found", "title", "authors", "year",
	"type", "publication_type", "publication_type_label", "journal",
	"conference", "doi", "url", "pdf_url", "open_access",
}

// WriteCSV writes one row per publication. Authors are joined with "; ".
func WriteCSV(w io.Writer, pubs []types.Publication) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range pubs {
		row := []string{
			p.ID,
			optionalInt(p.Version),
			strconv.Itoa(p.VersionsFound),
			p.Title,
			strings.Join(p.Authors, "; "),
			optionalInt(p.Year),
			p.SourceCode,
			string(p.Type),
			p.Label,
			p.Journal,
			p.Conference,
			p.DOI,
			p.URL,
			p.PDFURL,
			strconv.FormatBool(p.OpenAccess),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// bibtexTypes maps HAL document codes to BibTeX entry types.
var bibtexTypes = map[string]string{
	"ART":    "article",
	"COMM":   "inproceedings",
	"THESE":  "phdthesis",
	"REPORT": "techreport",
	"POSTER": "misc",
	"COUV":   "incollection",
	"OUV":    "book",
}

// BibTeXType returns the entry type for a HAL document code, "misc" when
// the code has no direct counterpart.
func BibTeXType(code string) string {
	if t, ok := bibtexTypes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return t
	}
	return "misc"
}

var bibtexEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)

// WriteBibTeX writes one entry per publication, separated by blank lines.
func WriteBibTeX(w io.Writer, pubs []types.Publication) error {
	for i, p := range pubs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "@%s{%s,\n", BibTeXType(p.SourceCode), strings.ReplaceAll(p.ID, "-", "_"))
		fmt.Fprintf(&b, "  author = {%s},\n", strings.Join(p.Authors, " and "))
		fmt.Fprintf(&b, "  title = {{%s}},\n", bibtexEscaper.Replace(p.Title))
		fmt.Fprintf(&b, "  year = {%s},\n", optionalInt(p.Year))
		if p.Journal != "" {
			fmt.Fprintf(&b, "  journal = {%s},\n", p.Journal)
		}
		if p.Conference != "" {
			fmt.Fprintf(&b, "  booktitle = {%s},\n", p.Conference)
		}
		if p.DOI != "" {
			fmt.Fprintf(&b, "  doi = {%s},\n", p.DOI)
		}
		fmt.Fprintf(&b, "  url = {%s},\n", p.URL)
		fmt.Fprintf(&b, "  hal_id = {%s},\n", p.ID)
		b.WriteString("}\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
