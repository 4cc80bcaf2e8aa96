// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/partners"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/pkg/types"
)

const partnersPartial = "external-partners.adoc"

var partnersCmd = &cobra.Command{
	Use:   "partners",
	Short: "Harvest external partners from the partners sheet",
	Long: `Partners reads the external partners sheet, merges the rows of each
organization into one record, and writes the partners partial.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			c, err := s.fetchPartners()
			if err != nil {
				return err
			}
			return printJSON(c.All())
		}
		_, err = s.partners()
		return err
	},
}

func init() {
	partnersCmd.Flags().Bool("json", false, "print the merged partners as JSON instead of writing the partial")
	rootCmd.AddCommand(partnersCmd)
}

func (s *session) fetchPartners() (partners.Collection, error) {
	src := cfg.Partners.SheetSource
	items, err := cache.Fetch(s.store, "partners:"+src.Source()+"#"+cfg.Partners.SheetName, s.refresh, func() ([]types.Partner, error) {
		rows, err := s.rows(src, cfg.Partners.SheetName)
		if err != nil {
			return nil, err
		}
		return partners.FromRows(rows).All(), nil
	})
	if err != nil {
		return partners.Collection{}, fmt.Errorf("harvesting partners: %w", err)
	}
	logger.Info("harvested partners", zap.Int("records", len(items)))
	return partners.NewCollection(items), nil
}

func (s *session) partners() (int, error) {
	c, err := s.fetchPartners()
	if err != nil {
		return 0, err
	}
	fmt.Printf("Found %d external partners\n", c.Len())
	return c.Len(), writePartial(partnersPartial, render.Partners(c))
}
