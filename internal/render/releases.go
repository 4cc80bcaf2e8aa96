// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/harvest/pkg/types"
)

// Releases renders the release table of one deliverable.
func Releases(deliverableID string, releases []types.Release) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Deliverable: %s\n\n", deliverableID)
	tableStart(&b, "", "1,2,1,2", "Version", "Release", "Date", "Downloads")

	for _, r := range releases {
		var badges []string
		if r.IsLatest {
			badges = append(badges, "icon:star[role=text-warning,title=Latest]")
		}
		if r.IsFeatured && !r.IsLatest {
			badges = append(badges, "icon:bookmark[role=text-info,title=ANR Submission]")
		}
		badge := ""
		if len(badges) > 0 {
			badge = " " + strings.Join(badges, " ")
		}

		downloads := []string{fmt.Sprintf("link:%s[icon:tag[title=Release]]", r.HTMLURL)}
		for _, pdf := range r.PDFs {
			downloads = append(downloads, fmt.Sprintf("link:%s[icon:file-pdf[title=PDF,role=text-danger]]", pdf.URL))
		}

		name := r.Name
		if name == "" {
			name = r.Version
		}
		fmt.Fprintf(&b, "|*%s*%s\n", r.Version, badge)
		fmt.Fprintf(&b, "|%s\n", cell(name))
		fmt.Fprintf(&b, "|%s\n", r.Date)
		fmt.Fprintf(&b, "|%s\n\n", strings.Join(downloads, " "))
	}
	tableEnd(&b)
	return b.String()
}
