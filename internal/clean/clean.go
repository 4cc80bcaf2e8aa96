// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean coerces loosely-typed source values (spreadsheet cells, JSON
// fields) into trimmed strings, lists, booleans, integers, and dates.
// Nothing here returns an error: a value that cannot be coerced becomes the
// zero value, and callers treat that as "unknown".
package clean

import (
	"math"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cast"
)

// trueTokens are the case-insensitive strings ParseBool accepts as true.
var trueTokens = mapset.NewSet("true", "yes", "1", "x", "available")

// IsBlank reports whether v is nil, a NaN float, or a whitespace-only string.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	case string:
		return strings.TrimSpace(x) == ""
	case *time.Time:
		return x == nil
	}
	return false
}

// String returns v as trimmed text, or "" when v is blank. Integral floats
// render without a fractional part, so a numeric cell 3.0 becomes "3".
func String(v any) string {
	if IsBlank(v) {
		return ""
	}
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.DateOnly)
	case *time.Time:
		return x.Format(time.DateOnly)
	case []string, []any:
		return strings.Join(Strings(x), ", ")
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// First returns the first non-blank element when v is a list, otherwise
// String(v). Bibliographic sources report some fields either as a string or
// as a single-element array.
func First(v any) string {
	switch x := v.(type) {
	case []string:
		for _, s := range x {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
		return ""
	case []any:
		for _, e := range x {
			if s := String(e); s != "" {
				return s
			}
		}
		return ""
	}
	return String(v)
}

// Strings returns the non-blank elements of a list value, or a one-element
// list for a scalar. Unlike SplitMultiValue it never splits text.
func Strings(v any) []string {
	switch x := v.(type) {
	case []string:
		out := make([]string, 0, len(x))
		for _, s := range x {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s := String(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := String(v); s != "" {
		return []string{s}
	}
	return nil
}

// SplitMultiValue splits a free-text multi-valued cell. Lists are returned
// as they are; text has newlines folded into commas, is split on commas, and
// each piece is trimmed with empty pieces dropped. Duplicates are kept.
func SplitMultiValue(v any) []string {
	if IsBlank(v) {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		return Strings(x)
	}

	text := strings.ReplaceAll(String(v), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", ",")
	var out []string
	for _, piece := range strings.Split(text, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// ParseBool reports whether v is boolean true, numeric 1, or one of the
// tokens true, yes, 1, x, available. Anything else, blank included, is false.
func ParseBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x == 1
	case int64:
		return x == 1
	case float64:
		return x == 1
	}
	return trueTokens.Contains(strings.ToLower(String(v)))
}

// Int returns v as an integer when it is a whole number or numeric text.
func Int(v any) (int, bool) {
	if IsBlank(v) {
		return 0, false
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(String(v)))
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Number returns v as a float when it is numeric or numeric text.
func Number(v any) (float64, bool) {
	if IsBlank(v) {
		return 0, false
	}
	switch v.(type) {
	case bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(String(v)))
	if err != nil {
		return 0, false
	}
	return f, true
}
