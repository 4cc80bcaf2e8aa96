// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package releases lists the published releases of deliverable repositories
// on GitHub and selects the ones shown on the deliverables page.
package releases

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/pdiddy/harvest/pkg/types"
)

// fetchLimit is the page size requested per repository. It is larger than
// max_releases so featured versions further back are still seen.
const fetchLimit = 20

const defaultMaxReleases = 5

// NewGitHubClient returns a GitHub client, authenticated when token is set.
func NewGitHubClient(ctx context.Context, token string, base *http.Client) *github.Client {
	if token == "" {
		return github.NewClient(base)
	}
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// Harvester fetches and selects deliverable releases.
type Harvester struct {
	GitHub *github.Client
	Logger *zap.Logger
}

// Harvest returns the selected releases of every configured deliverable,
// in configuration order. A repository that cannot be listed is logged and
// contributes nothing.
func (h *Harvester) Harvest(ctx context.Context, cfg types.DeliverablesConfig) []types.Release {
	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var all []types.Release
	for _, item := range cfg.Items {
		owner, repo, ok := strings.Cut(item.Repo, "/")
		if !ok {
			logger.Warn("deliverable repo is not owner/name", zap.String("id", item.ID), zap.String("repo", item.Repo))
			continue
		}
		list, _, err := h.GitHub.Repositories.ListReleases(ctx, owner, repo, &github.ListOptions{PerPage: fetchLimit})
		if err != nil {
			logger.Warn("listing releases failed", zap.String("repo", item.Repo), zap.Error(err))
			continue
		}
		selected := Select(list, item, cfg.Settings)
		logger.Debug("selected releases",
			zap.String("repo", item.Repo),
			zap.Int("listed", len(list)),
			zap.Int("selected", len(selected)),
		)
		all = append(all, selected...)
	}
	return all
}

// Select filters one repository's releases, newest first as GitHub lists
// them. Drafts are dropped, and prereleases too unless enabled. The first
// MaxReleases survivors are kept (one with LatestOnly) plus every featured
// version; a version is never kept twice. The result is sorted by date,
// newest first.
func Select(list []*github.RepositoryRelease, item types.DeliverableItem, s types.DeliverablesSettings) []types.Release {
	limit := s.MaxReleases
	if limit <= 0 {
		limit = defaultMaxReleases
	}
	if s.LatestOnly {
		limit = 1
	}
	featured := mapset.NewThreadUnsafeSet(item.FeaturedVersions...)
	seen := mapset.NewThreadUnsafeSet[string]()

	var out []types.Release
	first := true
	for _, r := range list {
		if r.GetDraft() {
			continue
		}
		if r.GetPrerelease() && !s.IncludePrereleases {
			continue
		}
		version := r.GetTagName()
		isFeatured := featured.Contains(version)
		if (len(out) < limit || isFeatured) && seen.Add(version) {
			out = append(out, format(r, item, first, isFeatured))
		}
		first = false
	}

	slices.SortStableFunc(out, func(a, b types.Release) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

func format(r *github.RepositoryRelease, item types.DeliverableItem, latest, featured bool) types.Release {
	date := "N/A"
	if r.PublishedAt != nil {
		date = r.GetPublishedAt().UTC().Format("2006-01-02")
	}
	return types.Release{
		DeliverableID: item.ID,
		Title:         item.Title,
		Description:   item.Description,
		WorkPackages:  item.WorkPackages,
		Repo:          item.Repo,
		Version:       r.GetTagName(),
		Name:          r.GetName(),
		Date:          date,
		HTMLURL:       r.GetHTMLURL(),
		Body:          r.GetBody(),
		Prerelease:    r.GetPrerelease(),
		IsLatest:      latest,
		IsFeatured:    featured,
		PDFs:          pdfAssets(r.Assets),
	}
}

func pdfAssets(assets []*github.ReleaseAsset) []types.Asset {
	var out []types.Asset
	for _, a := range assets {
		if strings.HasSuffix(strings.ToLower(a.GetName()), ".pdf") {
			out = append(out, types.Asset{
				Name: a.GetName(),
				URL:  a.GetBrowserDownloadURL(),
				Size: a.GetSize(),
			})
		}
	}
	return out
}

// PartialName is the partial file name of a deliverable: D7.1 becomes
// releases-d7-1.adoc.
func PartialName(deliverableID string) string {
	return fmt.Sprintf("releases-%s.adoc", strings.ReplaceAll(strings.ToLower(deliverableID), ".", "-"))
}

// ByDeliverable groups releases by deliverable id in first-seen order.
func ByDeliverable(releases []types.Release) []types.Group[types.Release] {
	return types.GroupBy(releases, func(r types.Release) string { return r.DeliverableID })
}
