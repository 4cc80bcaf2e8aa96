// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news loads project events and sorts them onto the upcoming,
// recent and archive pages.
package news

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/harvest/pkg/types"
)

// recentWindow is how long a past event without an explicit status stays
// on the recent page.
const recentWindow = 180 * 24 * time.Hour

var typeIcons = map[string]string{
	"assembly":   "users",
	"conference": "chalkboard-teacher",
	"training":   "laptop-code",
	"webinar":    "box",
	"workshop":   "users",
	"external":   "building",
}

var typeRoles = map[string]string{
	"assembly":   "text-primary",
	"conference": "text-info",
	"training":   "text-success",
	"webinar":    "text-warning",
	"workshop":   "text-primary",
	"external":   "text-info",
}

type file struct {
	Events []types.Event `yaml:"events"`
}

// Load reads the events list of a news YAML file.
func Load(path string) ([]types.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading news file: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing news file %s: %w", path, err)
	}
	return f.Events, nil
}

// Events returns the configured events: those of cfg.File when set,
// followed by the inline ones.
func Events(cfg types.NewsConfig) ([]types.Event, error) {
	var out []types.Event
	if cfg.File != "" {
		loaded, err := Load(cfg.File)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded...)
	}
	return append(out, cfg.Events...), nil
}

// Icon is the explicit icon of e, else the icon of its type, else calendar.
func Icon(e types.Event) string {
	if e.Icon != "" {
		return e.Icon
	}
	return cmp.Or(typeIcons[e.Type], "calendar")
}

// Role is the styling role of the event type.
func Role(e types.Event) string {
	return cmp.Or(typeRoles[e.Type], "text-primary")
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, s)
	return t, err == nil
}

// Status returns the explicit status of e. An event without one is
// upcoming until its last day has passed, recent for a while after, then
// archived.
func Status(e types.Event, now time.Time) types.EventStatus {
	if e.Status != "" {
		return e.Status
	}
	last, ok := parseDay(cmp.Or(e.EndDate, e.Date))
	if !ok {
		return types.EventUpcoming
	}
	end := last.Add(24 * time.Hour)
	switch {
	case now.Before(end):
		return types.EventUpcoming
	case now.Sub(end) < recentWindow:
		return types.EventRecent
	default:
		return types.EventArchived
	}
}

// WithStatus returns the events whose status at now is s, in input order.
func WithStatus(events []types.Event, s types.EventStatus, now time.Time) []types.Event {
	var out []types.Event
	for _, e := range events {
		if Status(e, now) == s {
			out = append(out, e)
		}
	}
	return out
}

// NewestFirst sorts a copy of events by start date, latest first.
func NewestFirst(events []types.Event) []types.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b types.Event) int { return cmp.Compare(b.Date, a.Date) })
	return out
}

// FormatDateRange renders the event dates as "Mar 05, 2025", "Mar 05-07,
// 2025" or "Mar 30 - Apr 02, 2025". A missing date is TBD; an unparseable
// one is returned as written.
func FormatDateRange(e types.Event) string {
	if e.Date == "" {
		return "TBD"
	}
	start, ok := parseDay(e.Date)
	if !ok {
		return e.Date
	}
	if e.EndDate == "" {
		return start.Format("Jan 02, 2006")
	}
	end, ok := parseDay(e.EndDate)
	if !ok {
		return e.Date
	}
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return start.Format("Jan 02") + "-" + end.Format("02, 2006")
	}
	return start.Format("Jan 02") + " - " + end.Format("Jan 02, 2006")
}

// Year is the year of the event start date, 0 when unknown.
func Year(e types.Event) int {
	if t, ok := parseDay(e.Date); ok {
		return t.Year()
	}
	return 0
}

// ArchiveByYear groups archived events by start year, latest year first.
// Events are newest first within a year; undated events are left out.
func ArchiveByYear(events []types.Event, now time.Time) []types.Group[types.Event] {
	dated := slices.DeleteFunc(WithStatus(events, types.EventArchived, now), func(e types.Event) bool {
		return Year(e) == 0
	})
	groups := types.GroupBy(NewestFirst(dated), func(e types.Event) string { return strconv.Itoa(Year(e)) })
	slices.SortStableFunc(groups, func(a, b types.Group[types.Event]) int {
		return cmp.Compare(b.Key, a.Key)
	})
	return groups
}
