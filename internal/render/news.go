// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/harvest/internal/news"
	"github.com/pdiddy/harvest/pkg/types"
)

func flatten(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

// NewsUpcoming renders upcoming events as cards.
func NewsUpcoming(events []types.Event, now time.Time) string {
	upcoming := news.WithStatus(events, types.EventUpcoming, now)
	var b strings.Builder
	fmt.Fprintf(&b, "// Events: %d upcoming\n\n", len(upcoming))
	if len(upcoming) == 0 {
		b.WriteString("_No upcoming events scheduled._\n")
		return b.String()
	}

	b.WriteString("[.grid.grid-2.gap-2.items-start]\n--\n")
	for _, e := range upcoming {
		b.WriteString("[.card]\n====\n")
		fmt.Fprintf(&b, "icon:%s[size=2x,role=%s] *%s*\n\n", news.Icon(e), news.Role(e), title(e))
		if e.Location != "" {
			fmt.Fprintf(&b, "*%s* | %s\n\n", news.FormatDateRange(e), e.Location)
		} else {
			fmt.Fprintf(&b, "*%s*\n\n", news.FormatDateRange(e))
		}
		fmt.Fprintf(&b, "%s\n\n", flatten(e.Description))
		switch {
		case e.Page != "":
			fmt.Fprintf(&b, "xref:%s[View full agenda and details →]\n", e.Page)
		case e.URL != "":
			fmt.Fprintf(&b, "%s[Event details and registration →]\n", e.URL)
		}
		b.WriteString("====\n\n")
	}
	b.WriteString("--\n")
	return b.String()
}

func title(e types.Event) string {
	if e.Title == "" {
		return "Untitled Event"
	}
	return e.Title
}

// NewsRecent renders recent events as a table, newest first.
func NewsRecent(events []types.Event, now time.Time) string {
	recent := news.WithStatus(events, types.EventRecent, now)
	var b strings.Builder
	fmt.Fprintf(&b, "// Events: %d recent\n\n", len(recent))
	eventTable(&b, recent, "")
	return b.String()
}

func eventTable(b *strings.Builder, events []types.Event, class string) {
	if len(events) == 0 {
		b.WriteString("_No events._\n")
		return
	}
	if class != "" {
		class = "." + class + ","
	}
	fmt.Fprintf(b, "[%scols=\"1,5\",frame=none,grid=rows]\n|===\n", class)
	for _, e := range news.NewestFirst(events) {
		location := ""
		if e.Location != "" {
			location = " – " + e.Location
		}
		fmt.Fprintf(b, "|icon:%s[size=2x] *%s*\n", news.Icon(e), news.FormatDateRange(e))
		fmt.Fprintf(b, "|**%s**%s +\n", cell(title(e)), cell(location))
		fmt.Fprintf(b, "%s +\n", cell(flatten(e.Description)))
		switch {
		case e.Page != "":
			fmt.Fprintf(b, "xref:%s[Read full recap →]\n", e.Page)
		case e.URL != "":
			fmt.Fprintf(b, "%s[Event details and presentations]\n", e.URL)
		}
		b.WriteString("\n")
	}
	b.WriteString("|===\n")
}

// NewsArchive renders one partial per archive year, keyed by partial file
// name, plus the archive index. Years alternate between two table styles.
func NewsArchive(events []types.Event, now time.Time) map[string]string {
	years := news.ArchiveByYear(events, now)
	out := make(map[string]string, len(years)+1)
	if len(years) == 0 {
		return out
	}

	var index strings.Builder
	fmt.Fprintf(&index, "// Archive years: %d\n\n", len(years))
	for i, g := range years {
		class := "year-even"
		if i%2 == 1 {
			class = "year-odd"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "// Year: %s, Events: %d\n\n", g.Key, len(g.Items))
		eventTable(&b, g.Items, class)
		out["news-archive-"+g.Key+".adoc"] = b.String()

		fmt.Fprintf(&index, "* <<%s,%s>> (%d events)\n", g.Key, g.Key, len(g.Items))
	}
	out["news-archive-index.adoc"] = index.String()
	return out
}
