// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/harvest/internal/partners"
	"github.com/pdiddy/harvest/pkg/types"
)

func countPartners(ps []types.Partner, keep func(types.Partner) bool) int {
	n := 0
	for _, p := range ps {
		if keep(p) {
			n++
		}
	}
	return n
}

// Partners renders the overview cards and one table per partner type.
func Partners(c partners.Collection) string {
	all := c.All()
	if len(all) == 0 {
		return "_No external partners available._\n"
	}

	var b strings.Builder
	total := len(all)
	fmt.Fprintf(&b, "// Total external partners: %d\n:sectnums!:\n\n", total)

	public, private := c.Public(), c.Private()
	ofType := func(t types.PartnerType) int {
		return countPartners(public, func(p types.Partner) bool { return p.Type == t })
	}
	ofSize := func(s types.CompanySize) int {
		return countPartners(private, func(p types.Partner) bool { return p.Size == s })
	}

	b.WriteString("== icon:chart-pie[] Overview\n\n")
	fmt.Fprintf(&b, "icon:handshake[] Total external partners: *%d*\n\n", total)
	b.WriteString("[.grid.grid-2.gap-2]\n====\n")

	var publicParts []string
	if n := ofType(types.PartnerEPIC); n > 0 {
		publicParts = append(publicParts, fmt.Sprintf("icon:flask[] EPIC: *%d*", n))
	}
	if n := ofType(types.PartnerAcademic); n > 0 {
		publicParts = append(publicParts, fmt.Sprintf("icon:graduation-cap[] Academic: *%d*", n))
	}
	if n := ofType(types.PartnerInfrastructure); n > 0 {
		publicParts = append(publicParts, fmt.Sprintf("icon:microscope[] Research Infra: *%d*", n))
	}
	card(&b, "university", len(public), "Public Partners", total, strings.Join(publicParts, " | "))
	card(&b, "building", len(private), "Private Partners", total,
		fmt.Sprintf("icon:industry[] Large Groups: *%d* | icon:briefcase[] SMEs: *%d*", ofSize(types.SizeLarge), ofSize(types.SizeSME)))
	card(&b, "hand-holding-usd", len(c.Cofunding()), "Co-funding Arrangements", total,
		fmt.Sprintf("icon:user-graduate[] PhD Co-funding: *%d*", countPartners(all, partners.HasPhDCofunding)))
	if n := countPartners(all, partners.HasFundedProjects); n > 0 {
		card(&b, "project-diagram", n, "Funded Projects", total, "")
	}
	b.WriteString("====\n\n")

	for _, g := range c.ByType() {
		heading := types.PartnerType(g.Key).Display()
		if len(g.Items) > 0 {
			heading = g.Items[0].TypeDisplay()
		}
		fmt.Fprintf(&b, "=== %s\n\n", heading)
		tableStart(&b, ".partners", "3,2,3,2", "Partner", "Status", "Collaboration", "Topics")
		for _, p := range g.Items {
			name := p.Name
			if p.Icon != "" {
				name = fmt.Sprintf("icon:%s[] %s", p.Icon, p.Name)
			}
			fmt.Fprintf(&b, "|*%s*\n", cell(name))
			fmt.Fprintf(&b, "|%s\n", cell(p.StatusDisplay()))
			fmt.Fprintf(&b, "|%s\n", cell(strings.Join(p.CollaborationTypes, ", ")))
			fmt.Fprintf(&b, "|%s\n\n", cell(strings.Join(p.Topics, ", ")))
		}
		tableEnd(&b)
		b.WriteString("\n")
	}
	return b.String()
}
