// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/pkg/types"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every harvest and write all partials",
	Long: `All runs the publications, releases, team, partners, software and news
harvests in turn. A failing source is reported and the others still run; the
command fails when any source failed.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

type step struct {
	name string
	run  func(*session) (int, error)
	// skip reports a source that is not configured.
	skip func() bool
}

func never() bool { return false }

func unset(src types.SheetSource) func() bool {
	return func() bool { return src.File == "" && src.SheetID == "" }
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	steps := []step{
		{"Publications", (*session).publications, never},
		{"Releases", (*session).releases, never},
		{"Personnel", (*session).team, unset(cfg.Team.SheetSource)},
		{"Partners", (*session).partners, unset(cfg.Partners.SheetSource)},
		{"Software", (*session).software, unset(cfg.Software.SheetSource)},
		{"Events", (*session).news, never},
	}

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Printf("%s harvest: running all harvesting operations\n", cfg.Project.Name)
	fmt.Println(rule)

	counts := make([]int, len(steps))
	failed := 0
	for i, st := range steps {
		fmt.Printf("\n[%d/%d] Harvesting %s...\n", i+1, len(steps), strings.ToLower(st.name))
		fmt.Println(strings.Repeat("-", 40))
		if st.skip() {
			fmt.Println("Not configured, skipping")
			continue
		}
		n, err := st.run(s)
		if err != nil {
			logger.Error("harvest failed", zap.String("source", st.name), zap.Error(err))
			fmt.Printf("Error harvesting %s: %v\n", strings.ToLower(st.name), err)
			failed++
			continue
		}
		counts[i] = n
	}

	fmt.Println("\n" + rule)
	fmt.Println("Harvesting complete!")
	for i, st := range steps {
		fmt.Printf("  %s: %d\n", st.name, counts[i])
	}
	if failed > 0 {
		fmt.Printf("  Errors: %d\n", failed)
	}
	fmt.Println(rule)

	if failed > 0 {
		return fmt.Errorf("%d harvest(s) failed", failed)
	}
	return nil
}
