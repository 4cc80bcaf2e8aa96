// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns canonical collections into AsciiDoc partials for
// the project website. Renderers are pure: they return the partial text and
// WritePartial puts it on disk.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WritePartial writes content to dir/name, creating dir when needed.
func WritePartial(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating partials directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing partial %s: %w", name, err)
	}
	return path, nil
}

var cellEscaper = strings.NewReplacer("|", `\|`)

// cell escapes table separators in s.
func cell(s string) string { return cellEscaper.Replace(s) }

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// card writes one statistics card of a grid.
func card(b *strings.Builder, icon string, n int, label string, total int, extra string) {
	b.WriteString("____\n")
	fmt.Fprintf(b, "icon:%s[size=2x,role=text-primary] *%d* %s\n\n", icon, n, label)
	fmt.Fprintf(b, "_%.1f%% of total_\n", percent(n, total))
	if extra != "" {
		fmt.Fprintf(b, "\n%s\n", extra)
	}
	b.WriteString("____\n\n")
}

// tableStart opens a striped table with a header row.
func tableStart(b *strings.Builder, role, cols string, headers ...string) {
	fmt.Fprintf(b, "[.striped%s,cols=\"%s\",options=\"header\"]\n", role, cols)
	b.WriteString("|===\n")
	b.WriteString("|" + strings.Join(headers, " |") + "\n\n")
}

func tableEnd(b *strings.Builder) {
	b.WriteString("|===\n")
}
