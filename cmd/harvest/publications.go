// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/publications"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/pkg/types"
)

const publicationsPartial = "publications-hal.adoc"

var publicationsCmd = &cobra.Command{
	Use:     "publications",
	Aliases: []string{"hal"},
	Short:   "Harvest publications from HAL",
	Long: `Publications queries the HAL search API for the project's publications,
keeps the best revision of each document, and writes the AsciiDoc partial.

With --format json, csv, bibtex or csl the publications are exported instead,
to --out or stdout.`,
	RunE: runPublications,
}

func init() {
	publicationsCmd.Flags().String("format", "asciidoc", "output format: asciidoc, json, csv, bibtex, csl")
	publicationsCmd.Flags().String("out", "", "export file (default stdout)")
	publicationsCmd.Flags().IntSlice("years", nil, "publication years (overrides publications.years)")
	publicationsCmd.Flags().StringSlice("domains", nil, "HAL level-0 domains (overrides publications.domains)")

	rootCmd.AddCommand(publicationsCmd)
}

func runPublications(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("years") {
		cfg.Publications.Years, _ = cmd.Flags().GetIntSlice("years")
	}
	if cmd.Flags().Changed("domains") {
		cfg.Publications.Domains, _ = cmd.Flags().GetStringSlice("domains")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	format, _ := cmd.Flags().GetString("format")
	if format == "asciidoc" {
		_, err := s.publications()
		return err
	}

	c, q, err := s.fetchPublications()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	pubs := c.All()
	switch format {
	case "json":
		return publications.WriteJSON(w, publications.NewMetadata(cfg.Project, q, len(pubs), s.now), pubs)
	case "csv":
		return publications.WriteCSV(w, pubs)
	case "bibtex":
		return publications.WriteBibTeX(w, pubs)
	case "csl":
		return publications.WriteCSL(w, pubs)
	default:
		return fmt.Errorf("unknown format %q (want asciidoc, json, csv, bibtex or csl)", format)
	}
}

func (s *session) fetchPublications() (publications.Collection, publications.Query, error) {
	q := publications.QueryFromConfig(cfg.Publications, cfg.Project)
	pubs, err := cache.Fetch(s.store, "publications:"+q.Values().Encode(), s.refresh, func() ([]types.Publication, error) {
		client := &publications.Client{HTTP: s.http, Logger: logger}
		return client.Fetch(s.ctx, q)
	})
	if err != nil {
		return publications.Collection{}, q, fmt.Errorf("harvesting publications: %w", err)
	}
	logger.Info("harvested publications", zap.Int("records", len(pubs)))
	return publications.NewCollection(pubs), q, nil
}

// publications harvests and writes the publications partial.
func (s *session) publications() (int, error) {
	c, _, err := s.fetchPublications()
	if err != nil {
		return 0, err
	}
	if c.Len() == 0 {
		fmt.Println("No publications found!")
		return 0, nil
	}
	fmt.Printf("Found %d publications\n", c.Len())
	return c.Len(), writePartial(publicationsPartial, render.Publications(c))
}
