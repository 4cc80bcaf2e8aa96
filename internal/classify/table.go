// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps free-text source labels to closed enumerations
// through ordered rule tables. Each table is evaluated top to bottom and the
// first matching rule wins; unmatched input yields the table's fallback.
// Adding a recognized label is a table edit.
package classify

import (
	"strings"
)

// Rule pairs a predicate over a normalized label with the result it selects.
type Rule[T any] struct {
	Match  func(label string) bool
	Result T
}

// Table is an ordered list of rules. Labels are lower-cased and trimmed
// before predicates see them.
type Table[T any] []Rule[T]

// Classify returns the result of the first rule matching label and true, or
// the zero value and false when no rule matches.
func (t Table[T]) Classify(label string) (T, bool) {
	norm := Normalize(label)
	for _, r := range t {
		if r.Match(norm) {
			return r.Result, true
		}
	}
	var zero T
	return zero, false
}

// ClassifyOr is Classify with an explicit fallback.
func (t Table[T]) ClassifyOr(label string, fallback T) T {
	if v, ok := t.Classify(label); ok {
		return v
	}
	return fallback
}

// Normalize lower-cases and trims a label.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Contains matches labels containing any of words.
func Contains(words ...string) func(string) bool {
	return func(label string) bool {
		for _, w := range words {
			if strings.Contains(label, w) {
				return true
			}
		}
		return false
	}
}

// Equals matches labels equal to any of words.
func Equals(words ...string) func(string) bool {
	return func(label string) bool {
		for _, w := range words {
			if label == w {
				return true
			}
		}
		return false
	}
}

// All matches labels satisfying every predicate.
func All(preds ...func(string) bool) func(string) bool {
	return func(label string) bool {
		for _, p := range preds {
			if !p(label) {
				return false
			}
		}
		return true
	}
}
