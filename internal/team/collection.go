// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package team

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pdiddy/harvest/internal/classify"
	"github.com/pdiddy/harvest/pkg/types"
)

// ProjectStart stands in for a missing start date.
var ProjectStart = time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

// UnknownGroup is the key of people with no work package or partner.
const UnknownGroup = "Unknown"

// Unique keeps the first record per exact full name and drops later rows
// with the same name whole. Two different people sharing a full name
// collapse into one.
func Unique(people []types.Person) []types.Person {
	seen := mapset.NewThreadUnsafeSet[string]()
	var out []types.Person
	for _, p := range people {
		if seen.Add(p.FullName()) {
			out = append(out, p)
		}
	}
	return out
}

// Collection is an immutable, ordered list of personnel.
type Collection struct {
	items []types.Person
}

func NewCollection(people []types.Person) Collection {
	return Collection{items: slices.Clone(people)}
}

func (c Collection) All() []types.Person { return slices.Clone(c.items) }
func (c Collection) Len() int            { return len(c.items) }

// Unique returns the collection deduplicated by full name.
func (c Collection) Unique() Collection { return Collection{items: Unique(c.items)} }

func (c Collection) filter(keep func(types.Person) bool) []types.Person {
	var out []types.Person
	for _, p := range c.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Active returns the people active at now. The answer depends on now, so
// two calls may disagree without any change to the data.
func (c Collection) Active(now time.Time) []types.Person {
	return c.filter(func(p types.Person) bool { return p.IsActiveAt(now) })
}

func (c Collection) Funded() []types.Person {
	return c.filter(func(p types.Person) bool { return p.Funded })
}

// GenderStats counts people per gender.
type GenderStats struct {
	Male    int `json:"male" yaml:"male"`
	Female  int `json:"female" yaml:"female"`
	Unknown int `json:"unknown" yaml:"unknown"`
}

func (s GenderStats) Total() int { return s.Male + s.Female + s.Unknown }

// FemalePercentage is the share of women in percent, 0 for an empty set.
func (s GenderStats) FemalePercentage() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Female) / float64(s.Total()) * 100
}

func (s GenderStats) MalePercentage() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Male) / float64(s.Total()) * 100
}

func (c Collection) GenderStats() GenderStats {
	var s GenderStats
	for _, p := range c.items {
		switch p.Gender {
		case types.GenderMale:
			s.Male++
		case types.GenderFemale:
			s.Female++
		default:
			s.Unknown++
		}
	}
	return s
}

// ByWorkPackage groups people under each of their work packages, so a
// person on two WPs appears twice. Groups are ordered by WP number; people
// without a work package come last under UnknownGroup.
func (c Collection) ByWorkPackage() []types.Group[types.Person] {
	groups := types.GroupByMany(c.items, func(p types.Person) []string {
		if len(p.WorkPackages) == 0 {
			return []string{UnknownGroup}
		}
		return p.WorkPackages
	})
	slices.SortStableFunc(groups, func(a, b types.Group[types.Person]) int {
		return cmp.Compare(wpOrder(a.Key), wpOrder(b.Key))
	})
	return groups
}

func wpOrder(key string) int {
	if rest, ok := strings.CutPrefix(key, "WP"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			return n
		}
	}
	return 99
}

// ByPosition groups people by position in first-seen order.
func (c Collection) ByPosition() []types.Group[types.Person] {
	return types.GroupBy(c.items, func(p types.Person) string { return string(p.Position) })
}

// ByPartner groups people by partner, else employer, sorted by name.
func (c Collection) ByPartner() []types.Group[types.Person] {
	groups := types.GroupBy(c.items, func(p types.Person) string {
		return cmp.Or(p.Partner, p.Institution, UnknownGroup)
	})
	slices.SortStableFunc(groups, func(a, b types.Group[types.Person]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return groups
}

var wpNumber = regexp.MustCompile(`(?i)WP\s*(\d+)`)

// WPNumbers extracts the sorted work package numbers of a person.
func WPNumbers(p types.Person) []int {
	var out []int
	for _, wp := range p.WorkPackages {
		if m := wpNumber.FindStringSubmatch(wp); m != nil {
			n, _ := strconv.Atoi(m[1])
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}

// HasDetailedInfo reports whether the free-text description is long or
// multi-line enough for a dedicated page.
func HasDetailedInfo(p types.Person) bool {
	return len(p.OtherInfo) > 100 || strings.Contains(p.OtherInfo, "\n")
}

// InstitutionDisplay names the employer, falling back to the partner.
func InstitutionDisplay(p types.Person) string {
	return classify.Institution(cmp.Or(p.Institution, p.Partner))
}

// Duration renders the time spent on the project, counting whole calendar
// months from the start date (project start when unknown) to the end date
// (now when still active).
func Duration(p types.Person, now time.Time) string {
	start := ProjectStart
	if p.StartDate != nil {
		start = *p.StartDate
	}
	end := now
	if p.EndDate != nil {
		end = *p.EndDate
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years, rest := months/12, months%12
	unit := "year"
	if years > 1 {
		unit = "years"
	}
	if rest == 0 {
		return fmt.Sprintf("%d %s", years, unit)
	}
	return fmt.Sprintf("%d %s, %d months", years, unit, rest)
}

var slugAccents = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a", "ä", "a",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)

// Slug returns a URL-safe page name for the person.
func Slug(p types.Person) string {
	s := slugAccents.Replace(strings.ToLower(p.FirstName + "-" + p.Surname))
	return slugInvalid.ReplaceAllString(s, "-")
}

// DateDisplay formats a date as "June 2023", or fallback when nil.
func DateDisplay(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("January 2006")
}
