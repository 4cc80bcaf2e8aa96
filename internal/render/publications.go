// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/harvest/internal/publications"
	"github.com/pdiddy/harvest/pkg/types"
)

var publicationIcons = map[string]string{
	"Article in journal":     "newspaper",
	"Preprint / unpublished": "file-alt",
	"Conference paper":       "users",
	"Poster":                 "image",
	"Report":                 "file-text",
	"Thesis":                 "graduation-cap",
	"HDR":                    "user-graduate",
	"Book":                   "book",
	"Book chapter":           "book-open",
	"Software":               "code",
	"Dataset":                "database",
	"Patent":                 "certificate",
}

// maxAuthors is how many authors a table row lists before "et al.".
const maxAuthors = 3

const maxDomains = 5

// Publications renders the statistics overview followed by one table per
// year, most recent year first.
func Publications(c publications.Collection) string {
	var b strings.Builder
	stats := c.Stats()

	fmt.Fprintf(&b, "// Total publications: %d\n\n", stats.Total)
	publicationStats(&b, stats)

	for _, g := range c.ByYear() {
		fmt.Fprintf(&b, "== %s\n\n", g.Key)
		fmt.Fprintf(&b, "_%s_\n\n", plural(len(g.Items), "publication"))
		for _, ys := range stats.ByYear {
			if ys.Year == g.Key && len(ys.ByType) > 0 {
				parts := make([]string, len(ys.ByType))
				for i, tc := range ys.ByType {
					parts[i] = fmt.Sprintf("%d %s", tc.Count, tc.Key)
				}
				fmt.Fprintf(&b, "_%s_\n\n", strings.Join(parts, ", "))
			}
		}

		tableStart(&b, ".publications", "4,2,2,1", "Title", "Authors", "Type", "Links")
		for _, p := range g.Items {
			publicationRow(&b, p)
		}
		tableEnd(&b)
		b.WriteString("\n")
	}
	return b.String()
}

func publicationStats(b *strings.Builder, s publications.Stats) {
	b.WriteString("== icon:chart-pie[] Overview\n\n")
	fmt.Fprintf(b, "icon:list-ol[] Total publications: *%d*\n\n", s.Total)

	if len(s.ByType) > 0 {
		b.WriteString("[.grid.grid-2.gap-2]\n====\n")
		for _, tc := range s.ByType {
			icon := publicationIcons[tc.Key]
			if icon == "" {
				icon = "file"
			}
			card(b, icon, tc.Count, tc.Key, s.Total, "")
		}
		b.WriteString("====\n\n")
	}

	b.WriteString("=== icon:unlock[] Access & Availability\n\n")
	fmt.Fprintf(b, "* icon:fingerprint[] Publications with DOI: *%d* (%.1f%%)\n", s.WithDOI, percent(s.WithDOI, s.Total))
	fmt.Fprintf(b, "* icon:file-pdf[] Publications with PDF: *%d* (%.1f%%)\n", s.WithPDF, percent(s.WithPDF, s.Total))
	fmt.Fprintf(b, "* icon:lock-open[] Open Access: *%d* (%.1f%%)\n\n", s.OpenAccess, percent(s.OpenAccess, s.Total))

	if len(s.ByDomain) > 0 {
		b.WriteString("=== icon:flask[] By Scientific Domain\n\n")
		for i, dc := range s.ByDomain {
			if i == maxDomains {
				break
			}
			fmt.Fprintf(b, "* icon:atom[] %s: *%d*\n", dc.Key, dc.Count)
		}
		b.WriteString("\n")
	}
}

func publicationRow(b *strings.Builder, p types.Publication) {
	authors := p.Authors
	suffix := ""
	if len(authors) > maxAuthors {
		authors, suffix = authors[:maxAuthors], " et al."
	}
	links := []string{fmt.Sprintf("link:%s[icon:external-link-alt[title=HAL]]", p.URL)}
	if p.PDFURL != "" {
		links = append(links, fmt.Sprintf("link:%s[icon:file-pdf[title=PDF]]", p.PDFURL))
	}

	fmt.Fprintf(b, "|*%s*\n", cell(p.Title))
	fmt.Fprintf(b, "|%s%s\n", cell(strings.Join(authors, ", ")), suffix)
	fmt.Fprintf(b, "|%s\n", cell(p.Label))
	fmt.Fprintf(b, "|%s\n\n", strings.Join(links, " "))
}
