// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/pkg/types"
)

func TestReleasesKey(t *testing.T) {
	d := types.DeliverablesConfig{
		Settings: types.DeliverablesSettings{MaxReleases: 3},
		Items: []types.DeliverableItem{
			{ID: "D7.1", Repo: "exa-ma/d7-1"},
			{ID: "D7.2", Repo: "exa-ma/d7-2"},
		},
	}
	assert.Equal(t, "releases:D7.1=exa-ma/d7-1,D7.2=exa-ma/d7-2?max=3&pre=false&latest=false", releasesKey(d))

	d.Settings.LatestOnly = true
	assert.Contains(t, releasesKey(d), "latest=true")
}

func TestUnset(t *testing.T) {
	assert.True(t, unset(types.SheetSource{})())
	assert.False(t, unset(types.SheetSource{File: "team.xlsx"})())
	assert.False(t, unset(types.SheetSource{SheetID: "abc"})())
	assert.False(t, never())
}

func TestNewsWritesPartials(t *testing.T) {
	dir := t.TempDir()
	cfg = types.DefaultHarvestConfig()
	cfg.Output.PartialsDir = dir
	cfg.News.Events = []types.Event{
		{Title: "Kickoff", Date: "2023-02-01", Status: types.EventArchived},
		{Title: "Annual meeting", Date: "2099-01-10", Status: types.EventUpcoming},
	}

	n, err := (&session{}).news()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, name := range []string{"news-upcoming.adoc", "news-recent.adoc", "news-archive-2023.adoc", "news-archive-index.adoc"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestWithCache(t *testing.T) {
	cfg = types.DefaultHarvestConfig()
	cfg.Cache.Path = filepath.Join(t.TempDir(), "cache.db")

	require.NoError(t, withCache(func(s *cache.Store) error {
		return s.Set("partners:x.xlsx#Overview", []string{"Acme"})
	}))
	require.NoError(t, withCache(func(s *cache.Store) error {
		var got []string
		hit, err := s.Get("partners:x.xlsx#Overview", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, []string{"Acme"}, got)
		return nil
	}))
}
