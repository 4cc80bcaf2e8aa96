// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/news"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/pkg/types"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Generate the news and events partials",
	Long: `News reads events from news.file and the inline news.events list and
writes the upcoming, recent and per-year archive partials. Events without an
explicit status are placed by their dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		_, err = s.news()
		return err
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
}

func (s *session) news() (int, error) {
	events, err := news.Events(cfg.News)
	if err != nil {
		return 0, fmt.Errorf("loading news: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No events found!")
		return 0, nil
	}

	count := func(st types.EventStatus) int { return len(news.WithStatus(events, st, s.now)) }
	fmt.Printf("Found %d events\n", len(events))
	fmt.Printf("  Upcoming: %d, Recent: %d, Archived: %d\n",
		count(types.EventUpcoming), count(types.EventRecent), count(types.EventArchived))
	logger.Info("loaded events", zap.Int("records", len(events)))

	if err := writePartial("news-upcoming.adoc", render.NewsUpcoming(events, s.now)); err != nil {
		return 0, err
	}
	if err := writePartial("news-recent.adoc", render.NewsRecent(events, s.now)); err != nil {
		return 0, err
	}
	archive := render.NewsArchive(events, s.now)
	for _, name := range slices.Sorted(maps.Keys(archive)) {
		if err := writePartial(name, archive[name]); err != nil {
			return 0, err
		}
	}
	return len(events), nil
}
