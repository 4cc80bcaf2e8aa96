// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between harvesting stages: raw
// source rows, the canonical records built from them, and configuration.
package types

// RawRecord is one source-native record keyed by field name or column header
// exactly as the source delivers it. Values are strings, float64, int, bool,
// nil, or slices of those.
type RawRecord map[string]any

// Group is one bucket of a collection grouping. Collections return groups as
// ordered slices so rendering is deterministic.
type Group[T any] struct {
	Key   string `json:"key" yaml:"key"`
	Items []T    `json:"items" yaml:"items"`
}

// GroupBy buckets items by key in first-seen key order. Items keep their
// relative order within a bucket. Items with an empty key are dropped.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// GroupByMany is GroupBy for items that belong to several buckets.
func GroupByMany[T any](items []T, keys func(T) []string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, it := range items {
		for _, k := range keys(it) {
			if k == "" {
				continue
			}
			i, ok := index[k]
			if !ok {
				i = len(groups)
				index[k] = i
				groups = append(groups, Group[T]{Key: k})
			}
			groups[i].Items = append(groups[i].Items, it)
		}
	}
	return groups
}
