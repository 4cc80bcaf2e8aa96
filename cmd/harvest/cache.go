// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/harvest/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the collection cache",
	Long: `Cache manages the SQLite cache of harvested collections at cache.path.
Entries are keyed by source, for example "partners:data/partners.xlsx#Overview".`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(store *cache.Store) error {
			st, err := store.Stats()
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(st)
			}
			fmt.Printf("Cache: %s\n", st.Path)
			fmt.Printf("  Entries: %d (%d valid, %d expired)\n", st.Total, st.Valid, st.Expired)
			fmt.Printf("  Data: %d bytes\n", st.DataBytes)
			return nil
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cache entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(store *cache.Store) error {
			n, err := store.Clear()
			if err != nil {
				return err
			}
			fmt.Printf("Cleared %d cache entries\n", n)
			return nil
		})
	},
}

var cacheInvalidateCmd = &cobra.Command{
	Use:   "invalidate [source]",
	Short: "Delete the cache entry of one source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(store *cache.Store) error {
			ok, err := store.Invalidate(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("No cache entry for %s\n", args[0])
				return nil
			}
			fmt.Printf("Invalidated %s\n", args[0])
			return nil
		})
	},
}

func init() {
	cacheStatsCmd.Flags().Bool("json", false, "print stats as JSON")

	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd, cacheInvalidateCmd)
	rootCmd.AddCommand(cacheCmd)
}

// withCache opens the cache regardless of cache.enabled.
func withCache(fn func(*cache.Store) error) error {
	store, err := cache.Open(cfg.Cache.Path, cfg.Cache.TTL, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
