// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/releases"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/internal/secrets"
	"github.com/pdiddy/harvest/pkg/types"
)

var releasesCmd = &cobra.Command{
	Use:     "releases",
	Aliases: []string{"deliverables"},
	Short:   "Harvest deliverable releases from GitHub",
	Long: `Releases lists the GitHub releases of every configured deliverable
repository, selects the ones to show, and writes one partial per deliverable.
Set GITHUB_TOKEN (or .secrets/github-token) to raise the API rate limit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := &cfg.Deliverables.Settings
		if cmd.Flags().Changed("latest-only") {
			settings.LatestOnly, _ = cmd.Flags().GetBool("latest-only")
		}
		if cmd.Flags().Changed("include-prereleases") {
			settings.IncludePrereleases, _ = cmd.Flags().GetBool("include-prereleases")
		}
		if cmd.Flags().Changed("max") {
			settings.MaxReleases, _ = cmd.Flags().GetInt("max")
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		_, err = s.releases()
		return err
	},
}

func init() {
	releasesCmd.Flags().Bool("latest-only", false, "only keep the latest release of each deliverable")
	releasesCmd.Flags().Bool("include-prereleases", false, "keep prereleases")
	releasesCmd.Flags().Int("max", 0, "releases kept per deliverable (overrides deliverables.settings.max_releases)")
	rootCmd.AddCommand(releasesCmd)
}

func releasesKey(d types.DeliverablesConfig) string {
	repos := make([]string, len(d.Items))
	for i, it := range d.Items {
		repos[i] = it.ID + "=" + it.Repo
	}
	return fmt.Sprintf("releases:%s?max=%d&pre=%t&latest=%t", strings.Join(repos, ","),
		d.Settings.MaxReleases, d.Settings.IncludePrereleases, d.Settings.LatestOnly)
}

func (s *session) releases() (int, error) {
	if len(cfg.Deliverables.Items) == 0 {
		fmt.Println("No deliverables configured!")
		return 0, nil
	}
	list, err := cache.Fetch(s.store, releasesKey(cfg.Deliverables), s.refresh, func() ([]types.Release, error) {
		h := &releases.Harvester{
			GitHub: releases.NewGitHubClient(s.ctx, secrets.Token(loadedSecrets), s.http.HTTP),
			Logger: logger,
		}
		return h.Harvest(s.ctx, cfg.Deliverables), nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("harvested releases", zap.Int("records", len(list)))
	if len(list) == 0 {
		fmt.Println("No releases found!")
		return 0, nil
	}
	fmt.Printf("Found %d releases\n", len(list))

	for _, g := range releases.ByDeliverable(list) {
		if err := writePartial(releases.PartialName(g.Key), render.Releases(g.Key, g.Items)); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}
