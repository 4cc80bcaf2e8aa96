// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/httputil"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/internal/sheets"
	"github.com/pdiddy/harvest/pkg/types"
)

// session carries what one harvest run shares between sources.
type session struct {
	ctx     context.Context
	http    *httputil.Client
	store   *cache.Store
	refresh bool
	now     time.Time
}

func newSession(cmd *cobra.Command) (*session, error) {
	s := &session{
		ctx:  cmd.Context(),
		http: httputil.NewClient(cfg.HTTP, logger),
		now:  time.Now(),
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	s.refresh, _ = cmd.Flags().GetBool("refresh")

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Cache.Enabled && !noCache {
		store, err := cache.Open(cfg.Cache.Path, cfg.Cache.TTL, logger)
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	return s, nil
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logger.Warn("closing cache", zap.Error(err))
		}
	}
}

// rows loads one sheet of a spreadsheet source.
func (s *session) rows(src types.SheetSource, sheet string) ([]types.RawRecord, error) {
	book, err := sheets.Load(s.ctx, s.http, src)
	if err != nil {
		return nil, err
	}
	rows, err := book.Rows(sheet)
	if err != nil {
		return nil, err
	}
	logger.Debug("read sheet", zap.String("source", src.Source()), zap.String("sheet", sheet), zap.Int("rows", len(rows)))
	return rows, nil
}

// writePartial writes one partial under the configured partials directory.
func writePartial(name, content string) error {
	path, err := render.WritePartial(cfg.Output.PartialsDir, name, content)
	if err != nil {
		return err
	}
	fmt.Printf("  Saved to: %s\n", path)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
