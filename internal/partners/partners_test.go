// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package partners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/harvest/pkg/types"
)

func row(name, dept, contact string) types.RawRecord {
	return types.RawRecord{
		"Entreprises":                           name,
		"Equipe ou departement de l'entreprise": dept,
		"Contact Entreprise":                    contact,
	}
}

func TestParseRow(t *testing.T) {
	p, ok := ParseRow(types.RawRecord{
		"Entreprises":                           " Safran Tech ",
		"Type of External Partners":             "Entreprise - Large group",
		"Status":                                "Positive response",
		"Equipe ou departement de l'entreprise": "Academic",
		"Type of Collaboration":                 "PhD co-funding",
		"Commentaires":                          "",
		"Topics 1":                              "CFD",
		"topics 2":                              "UQ",
		"Topics 3":                              "CFD",
	})
	require.True(t, ok)
	assert.Equal(t, "Safran Tech", p.Name)
	assert.Equal(t, types.PartnerCompany, p.Type)
	assert.Equal(t, types.SizeLarge, p.Size)
	assert.Equal(t, types.StatusPositive, p.Status)
	assert.Empty(t, p.Departments, "type label in department column is dropped")
	assert.Equal(t, []string{"PhD co-funding"}, p.CollaborationTypes)
	assert.Empty(t, p.Comments)
	assert.Equal(t, []string{"CFD", "UQ"}, p.Topics)
	assert.Equal(t, "rocket", p.Icon)
}

func TestParseRow_NoName(t *testing.T) {
	_, ok := ParseRow(types.RawRecord{"Entreprises": "  ", "Status": "Positive"})
	assert.False(t, ok)
	_, ok = ParseRow(types.RawRecord{})
	assert.False(t, ok)
}

func TestParseRow_UnrecognizedStatusKeepsLabel(t *testing.T) {
	p, ok := ParseRow(types.RawRecord{"Entreprises": "Acme", "Status": "Meeting planned"})
	require.True(t, ok)
	assert.Equal(t, types.StatusOther, p.Status)
	assert.Equal(t, "Meeting planned", p.StatusDisplay())
}

func TestMerge_UnionNotOverwrite(t *testing.T) {
	rows := ParseRows([]types.RawRecord{
		row("Acme", "R&D", "Alice"),
		row("ACME", "Sales", "Bob"),
	})

	merged := Merge(rows)
	require.Len(t, merged, 1)
	assert.Equal(t, "Acme", merged[0].Name)
	assert.Equal(t, []string{"R&D", "Sales"}, merged[0].Departments)
	assert.Equal(t, "Alice", merged[0].ContactPartner)
}

func TestMerge_SkipsValuesAlreadyPresent(t *testing.T) {
	merged := Merge([]types.Partner{
		{Name: "EDF", Topics: []string{"CFD", "HPC"}, Comments: []string{"first"}},
		{Name: "edf", Topics: []string{"HPC", "UQ"}, Comments: []string{"first", "second"}},
		{Name: "Edf ", Topics: []string{"CFD"}},
	})
	require.Len(t, merged, 1)
	assert.Equal(t, []string{"CFD", "HPC", "UQ"}, merged[0].Topics)
	assert.Equal(t, []string{"first", "second"}, merged[0].Comments)
}

func TestMerge_ExcludedNamesDropped(t *testing.T) {
	merged := Merge(ParseRows([]types.RawRecord{
		row("Hidalgo2", "WP1", "x"),
		row("Acme", "", ""),
		row("HIDALGO2", "WP2", "y"),
		row("CoE-Hidalgo2", "", ""),
	}))
	require.Len(t, merged, 1)
	assert.Equal(t, "Acme", merged[0].Name)
	assert.True(t, Excluded(" hidalgo2 "))
	assert.False(t, Excluded("Hidalgo2 Labs"))
}

func TestMerge_DepartmentDenylist(t *testing.T) {
	tests := []struct {
		name string
		rows []types.Partner
		want []string
	}{
		{
			name: "later row",
			rows: []types.Partner{
				{Name: "Inria", Departments: []string{"Datamove"}},
				{Name: "INRIA", Departments: []string{"Academic", "other", "Camus"}},
			},
			want: []string{"Datamove", "Camus"},
		},
		{
			name: "first row",
			rows: []types.Partner{
				{Name: "Acme", Departments: []string{"Academic"}},
				{Name: "ACME", Departments: []string{"R&D", "Academic"}},
			},
			want: []string{"R&D"},
		},
		{
			name: "single row",
			rows: []types.Partner{{Name: "Acme", Departments: []string{"Other", "R&D"}}},
			want: []string{"R&D"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(tt.rows)
			require.Len(t, merged, 1)
			assert.Equal(t, tt.want, merged[0].Departments)
		})
	}
}

func TestMerge_FirstSeenOrder(t *testing.T) {
	merged := Merge([]types.Partner{{Name: "B"}, {Name: "A"}, {Name: "b"}, {Name: "C"}})
	names := make([]string, len(merged))
	for i, p := range merged {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"B", "A", "C"}, names)
}

func TestFold_DoesNotModifyInput(t *testing.T) {
	acc := Fold(Accumulator{}, types.Partner{Name: "Acme", Topics: []string{"CFD"}})
	next := Fold(acc, types.Partner{Name: "acme", Topics: []string{"UQ"}})

	before, ok := acc.Lookup("ACME")
	require.True(t, ok)
	assert.Equal(t, []string{"CFD"}, before.Topics)

	after, ok := next.Lookup("acme")
	require.True(t, ok)
	assert.Equal(t, []string{"CFD", "UQ"}, after.Topics)

	grown := Fold(acc, types.Partner{Name: "Other"})
	assert.Equal(t, 1, acc.Len())
	assert.Equal(t, 2, grown.Len())
}

func TestMerge_Deterministic(t *testing.T) {
	rows := []types.Partner{
		{Name: "A", Topics: []string{"x"}},
		{Name: "B"},
		{Name: "a", Topics: []string{"y"}},
	}
	assert.Equal(t, Merge(rows), Merge(rows))
	assert.Equal(t, Merge(rows), Merge(Merge(rows)))
}

func TestCollection(t *testing.T) {
	c := FromRows([]types.RawRecord{
		{"Entreprises": "Safran", "Type of External Partners": "Entreprise - Large group", "Type of Collaboration": "PhD co-funding"},
		{"Entreprises": "ONERA", "Type of External Partners": "EPIC", "Type of Collaboration": "Funded projects (ANR PRCI)"},
		{"Entreprises": "Kitware", "Type of External Partners": "Entreprise - SME"},
		{"Entreprises": "U Luxembourg", "Type of External Partners": "Academic", "Type of Collaboration": "Co-funding"},
	})
	require.Equal(t, 4, c.Len())

	byType := c.ByType()
	require.Len(t, byType, 3)
	assert.Equal(t, string(types.PartnerCompany), byType[0].Key)
	assert.Len(t, byType[0].Items, 2)

	bySize := c.BySize()
	assert.Equal(t, string(types.SizeLarge), bySize[0].Key)
	assert.Equal(t, string(types.SizeResearch), bySize[1].Key)

	assert.Len(t, c.Private(), 2)
	assert.Len(t, c.Public(), 2)
	assert.Len(t, c.Cofunding(), 2)

	all := c.All()
	assert.True(t, HasPhDCofunding(all[0]))
	assert.False(t, HasPhDCofunding(all[3]))
	assert.True(t, HasFundedProjects(all[1]))
	assert.Equal(t, "university", all[3].Icon)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "u-luxembourg", Slug(types.Partner{Name: "U Luxembourg"}))
	assert.Equal(t, "totalenergies-se", Slug(types.Partner{Name: "TotalEnergies (SE)"}))
	assert.Equal(t, "ifp-energies-nouvelles", Slug(types.Partner{Name: "IFP Energies  nouvelles"}))
}
