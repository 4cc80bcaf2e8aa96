// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package releases

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/pkg/types"
)

func release(tag string, published time.Time, opts ...func(*github.RepositoryRelease)) *github.RepositoryRelease {
	r := &github.RepositoryRelease{
		TagName:     github.String(tag),
		Name:        github.String("Release " + tag),
		HTMLURL:     github.String("https://github.com/o/r/releases/tag/" + tag),
		PublishedAt: &github.Timestamp{Time: published},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func draft(r *github.RepositoryRelease)      { r.Draft = github.Bool(true) }
func prerelease(r *github.RepositoryRelease) { r.Prerelease = github.Bool(true) }

func day(d int) time.Time { return time.Date(2025, time.January, d, 10, 0, 0, 0, time.UTC) }

func versions(rs []types.Release) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Version
	}
	return out
}

func TestSelect(t *testing.T) {
	list := []*github.RepositoryRelease{
		release("v5", day(20), draft),
		release("v4-rc", day(15), prerelease),
		release("v3", day(10)),
		release("v2", day(5)),
		release("v1", day(1)),
	}
	item := types.DeliverableItem{ID: "D7.1", Repo: "o/r", FeaturedVersions: []string{"v1"}}

	tests := []struct {
		name     string
		settings types.DeliverablesSettings
		want     []string
	}{
		{"limit plus featured", types.DeliverablesSettings{MaxReleases: 1}, []string{"v3", "v1"}},
		{"prereleases included", types.DeliverablesSettings{MaxReleases: 2, IncludePrereleases: true}, []string{"v4-rc", "v3", "v1"}},
		{"latest only", types.DeliverablesSettings{MaxReleases: 5, LatestOnly: true}, []string{"v3", "v1"}},
		{"featured inside limit not duplicated", types.DeliverablesSettings{MaxReleases: 5}, []string{"v3", "v2", "v1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versions(Select(list, item, tt.settings)))
		})
	}
}

func TestSelect_Flags(t *testing.T) {
	list := []*github.RepositoryRelease{
		release("v2", day(5)),
		release("v1", day(1), func(r *github.RepositoryRelease) {
			r.Assets = []*github.ReleaseAsset{
				{Name: github.String("report.PDF"), BrowserDownloadURL: github.String("https://x/report.PDF"), Size: github.Int(42)},
				{Name: github.String("source.tar.gz"), BrowserDownloadURL: github.String("https://x/source.tar.gz")},
			}
		}),
		release("v0", time.Time{}, func(r *github.RepositoryRelease) { r.PublishedAt = nil }),
	}
	item := types.DeliverableItem{ID: "D1", Title: "Report", Repo: "o/r", WorkPackages: []string{"WP1"}, FeaturedVersions: []string{"v1"}}

	got := Select(list, item, types.DeliverablesSettings{MaxReleases: 3})
	require.Len(t, got, 3)

	assert.Equal(t, "v0", got[0].Version)
	assert.Equal(t, "N/A", got[0].Date)

	assert.Equal(t, "v2", got[1].Version)
	assert.True(t, got[1].IsLatest)
	assert.False(t, got[1].IsFeatured)
	assert.Equal(t, "2025-01-05", got[1].Date)
	assert.Equal(t, "Report", got[1].Title)
	assert.Equal(t, []string{"WP1"}, got[1].WorkPackages)

	assert.Equal(t, "v1", got[2].Version)
	assert.False(t, got[2].IsLatest)
	assert.True(t, got[2].IsFeatured)
	assert.Equal(t, []types.Asset{{Name: "report.PDF", URL: "https://x/report.PDF", Size: 42}}, got[2].PDFs)
}

func TestHarvest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/feelpp/d7-1/releases", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[
			{"tag_name": "v1.1", "name": "Second", "published_at": "2025-02-01T12:00:00Z", "html_url": "https://github.com/feelpp/d7-1/releases/tag/v1.1"},
			{"tag_name": "v1.0", "name": "First", "published_at": "2024-11-30T12:00:00Z", "draft": true}
		]`)
	})
	mux.HandleFunc("/repos/feelpp/missing/releases", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	h := &Harvester{GitHub: gh, Logger: zap.NewNop()}
	got := h.Harvest(context.Background(), types.DeliverablesConfig{
		Items: []types.DeliverableItem{
			{ID: "D7.1", Repo: "feelpp/d7-1"},
			{ID: "D0", Repo: "feelpp/missing"},
			{ID: "D9", Repo: "not-a-repo"},
		},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "v1.1", got[0].Version)
	assert.Equal(t, "2025-02-01", got[0].Date)
	assert.Equal(t, "D7.1", got[0].DeliverableID)
}

func TestNewGitHubClient_SendsToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	gh := NewGitHubClient(context.Background(), "ghp_test", nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	_, _, err = gh.Repositories.ListReleases(context.Background(), "o", "r", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_test", auth)
}

func TestPartialName(t *testing.T) {
	assert.Equal(t, "releases-d7-1.adoc", PartialName("D7.1"))
}

func TestByDeliverable(t *testing.T) {
	groups := ByDeliverable([]types.Release{{DeliverableID: "D2"}, {DeliverableID: "D1"}, {DeliverableID: "D2"}})
	require.Len(t, groups, 2)
	assert.Equal(t, "D2", groups[0].Key)
	assert.Len(t, groups[0].Items, 2)
}
