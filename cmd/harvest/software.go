// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/harvest/internal/cache"
	"github.com/pdiddy/harvest/internal/render"
	"github.com/pdiddy/harvest/internal/sheets"
	"github.com/pdiddy/harvest/internal/software"
	"github.com/pdiddy/harvest/pkg/types"
)

const (
	frameworksPartial   = "frameworks.adoc"
	applicationsPartial = "applications.adoc"
)

// softwareStack is the cached form of the software workbook.
type softwareStack struct {
	Packages     []types.SoftwarePackage `json:"packages"`
	Applications []types.Application     `json:"applications"`
}

var softwareCmd = &cobra.Command{
	Use:   "software",
	Short: "Harvest the software stack from the software workbook",
	Long: `Software reads the frameworks, packaging and applications sheets of the
software workbook and writes the frameworks and applications partials, plus
one page per eligible package under software/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			stack, err := s.fetchSoftware()
			if err != nil {
				return err
			}
			return printJSON(stack)
		}
		_, err = s.software()
		return err
	},
}

func init() {
	softwareCmd.Flags().Bool("json", false, "print the software stack as JSON instead of writing partials")
	rootCmd.AddCommand(softwareCmd)
}

// optionalSheet reads sheet, treating a missing sheet as empty.
func optionalSheet(book *sheets.Book, sheet string) ([]types.RawRecord, error) {
	rows, err := book.Rows(sheet)
	if errors.Is(err, sheets.ErrSheetNotFound) {
		logger.Warn("sheet not found, skipping", zap.String("sheet", sheet))
		return nil, nil
	}
	return rows, err
}

func (s *session) fetchSoftware() (softwareStack, error) {
	src := cfg.Software.SheetSource
	names := cfg.Software.Sheets
	stack, err := cache.Fetch(s.store, "software:"+src.Source(), s.refresh, func() (softwareStack, error) {
		book, err := sheets.Load(s.ctx, s.http, src)
		if err != nil {
			return softwareStack{}, err
		}
		frameworks, err := book.Rows(names.Frameworks)
		if err != nil {
			return softwareStack{}, err
		}
		packaging, err := optionalSheet(book, names.Packaging)
		if err != nil {
			return softwareStack{}, err
		}
		apps, err := optionalSheet(book, names.Applications)
		if err != nil {
			return softwareStack{}, err
		}
		return softwareStack{
			Packages:     software.ParsePackages(frameworks, packaging).All(),
			Applications: software.ParseApplications(apps).All(),
		}, nil
	})
	if err != nil {
		return softwareStack{}, fmt.Errorf("harvesting software: %w", err)
	}
	logger.Info("harvested software",
		zap.Int("packages", len(stack.Packages)),
		zap.Int("applications", len(stack.Applications)))
	return stack, nil
}

func (s *session) software() (int, error) {
	stack, err := s.fetchSoftware()
	if err != nil {
		return 0, err
	}
	pkgs := software.NewPackages(stack.Packages)
	apps := software.NewApplications(stack.Applications)
	fmt.Printf("Found %d software packages (%d eligible), %d applications\n",
		pkgs.Len(), len(pkgs.Eligible()), apps.Len())

	if err := writePartial(frameworksPartial, render.Software(pkgs)); err != nil {
		return 0, err
	}
	if err := writePartial(applicationsPartial, render.Applications(apps)); err != nil {
		return 0, err
	}
	pages := filepath.Join(cfg.Output.PartialsDir, "software")
	for _, p := range pkgs.Eligible() {
		if _, err := render.WritePartial(pages, software.Slug(p)+".adoc", render.Package(p)); err != nil {
			return 0, err
		}
	}
	return pkgs.Len(), nil
}
