package publications

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/harvest/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

var cslTypes = map[types.PublicationType]string{
	types.PubJournalArticle:  "article-journal",
	types.PubConferencePaper: "paper-conference",
	types.PubBookChapter:     "chapter",
	types.PubBook:            "book",
	types.PubReport:          "report",
	types.PubThesis:          "thesis",
	types.PubPoster:          "speech",
	types.PubPatent:          "patent",
	types.PubSoftware:        "software",
	types.PubDataset:         "dataset",
	types.PubPreprint:        "article",
}

// WriteCSL writes pubs as a CSL-YAML list.
func WriteCSL(w io.Writer, pubs []types.Publication) error {
	items := make([]CSLItem, len(pubs))
	for i, p := range pubs {
		items[i] = ToCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// ToCSLItem converts a canonical publication.
func ToCSLItem(p types.Publication) CSLItem {
	typ, ok := cslTypes[p.Type]
	if !ok {
		typ = "document"
	}
	item := CSLItem{
		ID:       p.ID,
		Type:     typ,
		Title:    p.Title,
		Abstract: p.Abstract,
		DOI:      p.DOI,
		URL:      p.URL,
		Keyword:  strings.Join(p.Keywords, ", "),
	}
	switch {
	case p.Journal != "":
		item.ContainerTitle = p.Journal
	case p.Conference != "":
		item.ContainerTitle = p.Conference
	}
	for _, a := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	item.Issued = issued(p)
	return item
}

// issued prefers the full production date and falls back to the year.
func issued(p types.Publication) *CSLDate {
	var parts []int
	for _, s := range strings.SplitN(p.Date, "-", 3) {
		n, err := strconv.Atoi(s)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 && p.Year > 0 {
		parts = []int{p.Year}
	}
	if len(parts) == 0 {
		return nil
	}
	return &CSLDate{DateParts: [][]int{parts}}
}

// parseAuthorName splits on the last space: everything before is given,
// the last token is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{Given: name[:idx], Family: name[idx+1:]}
}
