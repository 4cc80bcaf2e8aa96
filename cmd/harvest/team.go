// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/internal/team"
	"github.com/pdiddy/harvest/pkg/types"
)

const teamPartial = "recruited-personnel.adoc"

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Harvest recruited personnel from the team sheet",
	Long: `Team reads the personnel sheet, keeps the people selected by
team.filter, and writes the recruited personnel partial. People with detailed
information also get a page under team/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("all") {
			all, _ := cmd.Flags().GetBool("all")
			cfg.Team.Filter.FundedOnly = !all
		}
		if cmd.Flags().Changed("active") {
			cfg.Team.Filter.ActiveOnly, _ = cmd.Flags().GetBool("active")
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			c, err := s.fetchTeam()
			if err != nil {
				return err
			}
			return printJSON(c.Unique().All())
		}
		_, err = s.team()
		return err
	},
}

func init() {
	teamCmd.Flags().Bool("all", false, "include personnel not funded by the project")
	teamCmd.Flags().Bool("active", false, "only include personnel active today")
	teamCmd.Flags().Bool("json", false, "print the personnel as JSON instead of writing the partial")
	rootCmd.AddCommand(teamCmd)
}

func (s *session) fetchTeam() (team.Collection, error) {
	src := cfg.Team.SheetSource
	f := cfg.Team.Filter
	// Activity depends on the day, so it is part of the key.
	key := fmt.Sprintf("team:%s#%s?funded=%t&active=%t", src.Source(), cfg.Team.SheetName, f.FundedOnly, f.ActiveOnly)
	if f.ActiveOnly {
		key += "&day=" + s.now.Format("2006-01-02")
	}
	people, err := cache.Fetch(s.store, key, s.refresh, func() ([]types.Person, error) {
		rows, err := s.rows(src, cfg.Team.SheetName)
		if err != nil {
			return nil, err
		}
		return team.ParseRows(rows, f, s.now), nil
	})
	if err != nil {
		return team.Collection{}, fmt.Errorf("harvesting team: %w", err)
	}
	logger.Info("harvested personnel", zap.Int("records", len(people)))
	return team.NewCollection(people), nil
}

func (s *session) team() (int, error) {
	c, err := s.fetchTeam()
	if err != nil {
		return 0, err
	}
	unique := c.Unique()
	if unique.Len() == 0 {
		fmt.Println("No recruited personnel found!")
		return 0, nil
	}
	fmt.Printf("Found %d recruited personnel\n", unique.Len())
	if err := writePartial(teamPartial, render.Team(c)); err != nil {
		return 0, err
	}

	pages := filepath.Join(cfg.Output.PartialsDir, "team")
	for _, p := range unique.All() {
		if !team.HasDetailedInfo(p) {
			continue
		}
		if _, err := render.WritePartial(pages, team.Slug(p)+".adoc", render.PersonPage(p, s.now)); err != nil {
			return 0, err
		}
	}
	return unique.Len(), nil
}
