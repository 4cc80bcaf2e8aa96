// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pdiddy/harvest/internal/clean"
	"github.com/pdiddy/harvest/pkg/types"
)

var positions = Table[types.PositionType]{
	{Contains("phd", "thèse"), types.PositionPhD},
	{Contains("post"), types.PositionPostdoc},
	{Contains("ir", "engineer", "ingénieur"), types.PositionResearchEngineer},
	{Contains("permanent", "cdi"), types.PositionPermanent},
}

// Position classifies a position label.
func Position(label string) types.PositionType {
	return positions.ClassifyOr(label, types.PositionOther)
}

var femaleNames = mapset.NewThreadUnsafeSet(
	"alice", "amélie", "amelie", "anna", "anne", "béatrice", "beatrice", "camille",
	"caroline", "catherine", "céline", "celine", "charlotte", "chloé", "chloe",
	"claire", "clémence", "clemence", "daria", "delphine", "diane", "elise", "élise",
	"elisabeth", "émilie", "emilie", "emma", "florence", "françoise", "francoise",
	"gabrielle", "hélène", "helene", "isabelle", "jeanne", "julie", "juliette",
	"laure", "laurence", "léa", "lea", "lise", "louise", "lucie", "madeleine",
	"manon", "margot", "marguerite", "marie", "marine", "marion", "martine",
	"mathilde", "mélanie", "melanie", "nathalie", "nicole", "pauline", "sarah",
	"sophie", "stéphanie", "stephanie", "sylvie", "valérie", "valerie", "véronique",
	"veronique", "virginie", "zineb", "fatima", "leila", "nadia", "sofia", "maria",
	"elena", "olga", "natalia", "ekaterina", "alexandra", "victoria",
)

var maleNames = mapset.NewThreadUnsafeSet(
	"adrien", "alexandre", "alexis", "alain", "antoine", "arnaud", "arthur",
	"benjamin", "benoit", "benoît", "bernard", "bertrand", "bruno", "charles",
	"christian", "christophe", "claude", "clément", "clement", "damien", "daniel",
	"david", "denis", "didier", "dominique", "édouard", "edouard", "emmanuel",
	"eric", "éric", "etienne", "étienne", "fabien", "fabrice", "florian",
	"franck", "françois", "francois", "frédéric", "frederic", "gabriel", "gaël",
	"gael", "georges", "gérard", "gerard", "guillaume", "guy", "henri", "hervé",
	"herve", "hugo", "jacques", "jean", "jérôme", "jerome", "jonathan", "joseph",
	"julien", "laurent", "lionel", "louis", "luc", "lucas", "ludovic", "marc",
	"marcel", "martin", "mathieu", "matthieu", "maurice", "maxime", "michel",
	"nicolas", "olivier", "pascal", "patrick", "paul", "philippe", "pierre",
	"quentin", "raphaël", "raphael", "raymond", "rémi", "remi", "renaud", "richard",
	"robert", "romain", "samuel", "sébastien", "sebastien", "serge", "simon",
	"stéphane", "stephane", "sylvain", "thierry", "thomas", "vincent", "xavier",
	"yann", "yannick", "yves", "hassan", "mohamed", "ahmed", "ali", "omar",
	"karim", "samir", "mahamat", "pape", "mahmoud", "christos", "lukas", "utpal",
	"hung", "dinh", "xinye", "amaury", "brieuc", "tom", "mikaël", "mikael",
)

// GenderFromName looks up the first token of a first name. Compound names
// such as "Jean-Pierre" use their first part.
func GenderFromName(firstName string) types.Gender {
	name := Normalize(firstName)
	name, _, _ = strings.Cut(name, "-")
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return types.GenderUnknown
	}
	switch first := fields[0]; {
	case femaleNames.Contains(first):
		return types.GenderFemale
	case maleNames.Contains(first):
		return types.GenderMale
	}
	return types.GenderUnknown
}

// GenderFromColumn reads the tri-state "Woman" column: 1 is female, 0 is
// male. Any other value, blank included, is undecided.
func GenderFromColumn(v any) (types.Gender, bool) {
	n, ok := clean.Int(v)
	if !ok {
		return "", false
	}
	switch n {
	case 1:
		return types.GenderFemale, true
	case 0:
		return types.GenderMale, true
	}
	return "", false
}

// Gender prefers a decided column value and falls back to the first-name
// lookup.
func Gender(column any, firstName string) types.Gender {
	if g, ok := GenderFromColumn(column); ok {
		return g
	}
	return GenderFromName(firstName)
}

var institutions = map[string]string{
	"CEA":           "CEA",
	"INRIA":         "Inria",
	"Inria":         "Inria",
	"EP":            "École Polytechnique",
	"Polytechnique": "École Polytechnique",
	"Unistra":       "Université de Strasbourg",
	"SorbonneU":     "Sorbonne Université",
	"Sorbonne":      "Sorbonne Université",
	"CNRS":          "CNRS",
	"Lille":         "Université de Lille",
}

// Institution returns the display name of an employer abbreviation.
func Institution(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Unknown"
	}
	if full, ok := institutions[name]; ok {
		return full
	}
	return name
}
