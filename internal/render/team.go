// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/internal/team"
	"github.com/pdiddy/harvest/pkg/types"
)

type positionSection struct {
	position types.PositionType
	title    string
	icon     string
}

var positionSections = []positionSection{
	{types.PositionPhD, "PhD Students", "graduation-cap"},
	{types.PositionPostdoc, "Postdoctoral Researchers", "flask"},
	{types.PositionResearchEngineer, "Research Engineers", "cogs"},
}

// Team renders one table per recruited position followed by key
// indicators. People are deduplicated by full name first.
func Team(c team.Collection) string {
	unique := c.Unique()
	byPosition := make(map[string][]types.Person)
	for _, g := range unique.ByPosition() {
		byPosition[g.Key] = g.Items
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Total recruited personnel: %d\n:sectnums!:\n\n", unique.Len())

	for _, sec := range positionSections {
		people := byPosition[string(sec.position)]
		if len(people) == 0 {
			continue
		}
		fmt.Fprintf(&b, "[discrete]\n== icon:%s[] %s\n\n", sec.icon, sec.title)
		fmt.Fprintf(&b, "_%d personnel_\n\n", len(people))
		tableStart(&b, ".recruited", "2,2,2,2,2,2",
			"Last Name", "First Name", "Work Package", "Institution", "Period", "Advisor(s)")
		for _, p := range sortedByWorkPackage(people) {
			personRow(&b, p)
		}
		tableEnd(&b)
		b.WriteString("\n")
	}

	stats := unique.GenderStats()
	b.WriteString("[discrete]\n== Key Indicators\n\n")
	tableStart(&b, "", "2,1", "Indicator", "Value")
	fmt.Fprintf(&b, "|Total Recruited Personnel |*%d*\n", unique.Len())
	for _, sec := range positionSections {
		fmt.Fprintf(&b, "|%s |%d\n", sec.title, len(byPosition[string(sec.position)]))
	}
	fmt.Fprintf(&b, "|Women |%d (%.0f%%)\n", stats.Female, stats.FemalePercentage())
	fmt.Fprintf(&b, "|Men |%d (%.0f%%)\n", stats.Male, stats.MalePercentage())
	tableEnd(&b)
	return b.String()
}

// sortedByWorkPackage orders people by first WP number, unknown last, then
// by surname ignoring case.
func sortedByWorkPackage(people []types.Person) []types.Person {
	out := slices.Clone(people)
	first := func(p types.Person) int {
		if nums := team.WPNumbers(p); len(nums) > 0 {
			return nums[0]
		}
		return 99
	}
	slices.SortStableFunc(out, func(a, b types.Person) int {
		return cmp.Or(
			cmp.Compare(first(a), first(b)),
			cmp.Compare(strings.ToLower(a.Surname), strings.ToLower(b.Surname)),
		)
	})
	return out
}

func personRow(b *strings.Builder, p types.Person) {
	institution := team.InstitutionDisplay(p)
	if p.Partner != "" && p.Institution != "" {
		partner, employer := classify.Institution(p.Partner), classify.Institution(p.Institution)
		if partner != employer {
			institution = fmt.Sprintf("%s +\n_(Partner: %s)_", employer, partner)
		}
	}
	end := "Present"
	if p.EndDate != nil {
		end = team.DateDisplay(p.EndDate, "")
	}
	period := team.DateDisplay(p.StartDate, "Project start") + " - " + end

	fmt.Fprintf(b, "|*%s*\n", cell(p.Surname))
	fmt.Fprintf(b, "|%s\n", cell(p.FirstName))
	fmt.Fprintf(b, "|%s\n", strings.Join(p.WorkPackages, " +\n"))
	fmt.Fprintf(b, "|%s\n", cell(institution))
	fmt.Fprintf(b, "|%s\n", period)
	fmt.Fprintf(b, "|%s\n\n", cell(strings.Join(p.Advisors, " +\n")))
}

// PersonPage renders the dedicated page of a person with detailed info.
func PersonPage(p types.Person, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s\n:page-tags: team\n\n", p.FullName())
	fmt.Fprintf(&b, "*Position*: %s +\n", p.PositionDisplay())
	fmt.Fprintf(&b, "*Institution*: %s +\n", team.InstitutionDisplay(p))
	if len(p.WorkPackages) > 0 {
		fmt.Fprintf(&b, "*Work Packages*: %s +\n", strings.Join(p.WorkPackages, ", "))
	}
	fmt.Fprintf(&b, "*Duration*: %s\n\n", team.Duration(p, now))
	if len(p.Advisors) > 0 {
		b.WriteString("== Advisors\n\n")
		for _, a := range p.Advisors {
			fmt.Fprintf(&b, "* %s\n", a)
		}
		b.WriteString("\n")
	}
	if p.OtherInfo != "" {
		fmt.Fprintf(&b, "== About\n\n%s\n", strings.TrimSpace(p.OtherInfo))
	}
	return b.String()
}
