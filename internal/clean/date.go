// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"strings"
	"time"
)

// isoDateTimeLayouts are tried against the whole value.
var isoDateTimeLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// numericDateLayouts are tried against the first whitespace-separated token
// so that a trailing time of day is ignored. Day comes before month.
var numericDateLayouts = []string{
	time.DateOnly,
	"2/1/2006",
	"2-1-2006",
}

// monthDateLayouts accept English month names in any letter case.
var monthDateLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// frenchMonths maps French month names and abbreviations to English ones.
// Longer names come first so "décembre" is replaced before "déc".
var frenchMonths = []struct{ fr, en string }{
	{"septembre", "September"},
	{"décembre", "December"},
	{"decembre", "December"},
	{"novembre", "November"},
	{"février", "February"},
	{"fevrier", "February"},
	{"janvier", "January"},
	{"juillet", "July"},
	{"octobre", "October"},
	{"avril", "April"},
	{"févr", "Feb"},
	{"fevr", "Feb"},
	{"janv", "Jan"},
	{"juil", "Jul"},
	{"août", "August"},
	{"aout", "August"},
	{"sept", "Sep"},
	{"mars", "March"},
	{"juin", "June"},
	{"aoû", "Aug"},
	{"avr", "Apr"},
	{"mai", "May"},
	{"oct", "Oct"},
	{"nov", "Nov"},
	{"déc", "Dec"},
	{"dec", "Dec"},
}

// ParseDate parses a date written as ISO date or datetime, day/month/year
// with slash or dash separators, or "Month Year" and "Day Month Year" in
// English or French. It returns nil when no format matches; callers must
// read nil as unknown.
func ParseDate(v any) *time.Time {
	switch x := v.(type) {
	case time.Time:
		return &x
	case *time.Time:
		return x
	}
	s := String(v)
	if s == "" {
		return nil
	}

	if t, ok := parseLayouts(s, []string{time.DateOnly}); ok {
		return t
	}
	if t, ok := parseLayouts(s, isoDateTimeLayouts); ok {
		return t
	}
	if t, ok := parseLayouts(strings.Fields(s)[0], numericDateLayouts); ok {
		return t
	}
	if t, ok := parseLayouts(s, monthDateLayouts); ok {
		return t
	}

	lower := strings.ToLower(s)
	for _, m := range frenchMonths {
		if !strings.Contains(lower, m.fr) {
			continue
		}
		if t, ok := parseLayouts(strings.Replace(lower, m.fr, m.en, 1), monthDateLayouts); ok {
			return t
		}
	}
	return nil
}

func parseLayouts(s string, layouts []string) (*time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	return nil, false
}
