// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/harvest/pkg/types"
)

// halSearchBase is the HAL search endpoint. Declared as a var so tests can
// substitute an httptest server.
var halSearchBase = "https://api.archives-ouvertes.fr/search/"

const defaultRows = 100

// Query selects a page of HAL search results.
type Query struct {
	Q       string
	Domains []string
	Years   []int
	Rows    int
	Start   int
}

// QueryFromConfig builds the first-page query for cfg. An empty query string
// falls back to the project's ANR reference.
func QueryFromConfig(cfg types.PublicationsConfig, project types.ProjectConfig) Query {
	q := cfg.Query
	if q == "" && project.ANRID != "" {
		q = "anrProjectReference_s:" + project.ANRID
	}
	rows := cfg.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	return Query{Q: q, Domains: cfg.Domains, Years: cfg.Years, Rows: rows}
}

// Values encodes the query as HAL search parameters.
func (q Query) Values() url.Values {
	v := url.Values{
		"q":     {q.Q},
		"fl":    {strings.Join(Fields, ",")},
		"rows":  {strconv.Itoa(q.Rows)},
		"start": {strconv.Itoa(q.Start)},
		"sort":  {fieldProducedDate + " desc"},
		"wt":    {"json"},
	}
	if len(q.Domains) > 0 {
		v.Add("fq", "level0_domain_s:("+strings.Join(q.Domains, " OR ")+")")
	}
	if len(q.Years) > 0 {
		years := make([]string, len(q.Years))
		for i, y := range q.Years {
			years[i] = strconv.Itoa(y)
		}
		v.Add("fq", fieldYear+":("+strings.Join(years, " OR ")+")")
	}
	return v
}

// JSONGetter fetches and decodes a JSON document.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, v any) error
}

// Client pages through the HAL search API.
type Client struct {
	HTTP   JSONGetter
	Logger *zap.Logger
}

type halResponse struct {
	Response struct {
		NumFound int               `json:"numFound"`
		Docs     []types.RawRecord `json:"docs"`
	} `json:"response"`
}

// FetchRaw returns every raw record matching q, in the order HAL served
// them. Paging stops once numFound records were read or a page is empty.
func (c *Client) FetchRaw(ctx context.Context, q Query) ([]types.RawRecord, error) {
	if strings.TrimSpace(q.Q) == "" {
		return nil, fmt.Errorf("empty HAL query")
	}
	if q.Rows <= 0 {
		q.Rows = defaultRows
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var all []types.RawRecord
	for {
		var page halResponse
		reqURL := halSearchBase + "?" + q.Values().Encode()
		if err := c.HTTP.GetJSON(ctx, reqURL, &page); err != nil {
			return nil, fmt.Errorf("HAL search at start=%d: %w", q.Start, err)
		}

		docs := page.Response.Docs
		if len(docs) == 0 {
			break
		}
		all = append(all, docs...)
		q.Start += len(docs)

		logger.Debug("fetched HAL page",
			zap.Int("fetched", len(all)),
			zap.Int("total", page.Response.NumFound),
		)
		if q.Start >= page.Response.NumFound {
			break
		}
	}
	return all, nil
}

// Fetch returns the canonical publications matching q.
func (c *Client) Fetch(ctx context.Context, q Query) ([]types.Publication, error) {
	raw, err := c.FetchRaw(ctx, q)
	if err != nil {
		return nil, err
	}
	pubs := Resolve(raw)
	if c.Logger != nil {
		c.Logger.Info("resolved publications",
			zap.Int("raw", len(raw)),
			zap.Int("canonical", len(pubs)),
		)
	}
	return pubs, nil
}
