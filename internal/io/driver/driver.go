// Package driver orchestrates the indexer's phases (C7): parses the
// invocation options gnindexer's CLI resolves from flags, sequences
// the loading-index build, hierarchy walk, synonym phase, vernacular
// join, and optional IRMNG homonym build, and manages the
// target-directory backup spec.md §4.7 and §6 describe. It is the one
// package that wires every other component together; nothing here is
// a novel algorithm.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnindexer/internal/io/dwca"
	"github.com/gnames/gnindexer/internal/io/hierarchy"
	"github.com/gnames/gnindexer/internal/io/irmng"
	"github.com/gnames/gnindexer/internal/io/loadindex"
	"github.com/gnames/gnindexer/internal/io/searchindex"
	"github.com/gnames/gnindexer/internal/io/sqliteindex"
	"github.com/gnames/gnindexer/internal/io/vernacular"
	"github.com/gnames/gnindexer/internal/iofs"
	"github.com/gnames/gnindexer/pkg/canon"
	"github.com/gnames/gnindexer/pkg/config"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// Target subdirectory names (spec.md §6 "Output: target directory layout").
const (
	searchSubdir     = "cb"
	vernacularSubdir = "vernacular"
	irmngSubdir      = "irmng"
)

// Phases selects which of the indexer's phases to run for one
// invocation. Load and Search are independent switches; when neither
// is set, both run (spec.md §4.7 "Default behavior when no phase flag
// is given is all").
type Phases struct {
	Load   bool
	Search bool
}

// resolved reports the effective load/search phases, applying the
// "all" default.
func (p Phases) resolved() (load, search bool) {
	if !p.Load && !p.Search {
		return true, true
	}
	return p.Load, p.Search
}

// Run executes the phases selected by phases against cfg, logging
// progress to log. It is the sole entry point cmd/gnindexer's CLI
// calls for anything other than -testSearch.
func Run(ctx context.Context, cfg *config.Config, phases Phases, log *slog.Logger) error {
	load, search := phases.resolved()

	tmpIndexPath := filepath.Join(cfg.Paths.TmpDir, "index.db")

	if load {
		if err := iofs.EnsureDir(cfg.Paths.TmpDir); err != nil {
			return err
		}
		conceptSrc, err := dwca.OpenConcepts(cfg.Paths.DwcaDir, log)
		if err != nil {
			return err
		}
		n, err := loadindex.Build(ctx, sqliteindex.OpenWriter, cfg.Paths.TmpDir, conceptSrc, cfg.JobsNumber, log)
		conceptSrc.Close()
		if err != nil {
			return err
		}
		if log != nil {
			log.Info("Loading index phase complete", "concepts", n, "skipped_rows", conceptSrc.Skipped())
		}
	}

	if !search {
		return nil
	}

	if !load {
		if _, err := os.Stat(tmpIndexPath); err != nil {
			return LoadIndexMissing(cfg.Paths.TmpDir)
		}
	}

	searchDir := filepath.Join(cfg.Paths.TargetDir, searchSubdir)
	if err := iofs.BackupIfExists(searchDir); err != nil {
		return TargetUnwritable(searchDir, err)
	}

	loadReader, err := sqliteindex.OpenReader(ctx, cfg.Paths.TmpDir)
	if err != nil {
		return err
	}
	defer loadReader.Close()

	canonicalizer := canon.New(cfg.JobsNumber)
	defer canonicalizer.Close()

	searchWriter, err := searchindex.Open(ctx, sqliteindex.OpenWriter, searchDir)
	if err != nil {
		return err
	}

	walker := hierarchy.New(loadReader, canonicalizer, log)
	if err := walker.Walk(ctx, searchWriter); err != nil {
		searchWriter.Close()
		return err
	}

	synonymSrc, err := dwca.OpenConcepts(cfg.Paths.DwcaDir, log)
	if err != nil {
		searchWriter.Close()
		return err
	}
	synCount, err := searchindex.RunSynonymPhase(ctx, searchWriter, synonymSrc, loadReader, canonicalizer)
	synonymSrc.Close()
	if err != nil {
		searchWriter.Close()
		return err
	}
	if log != nil {
		log.Info("Synonym phase complete", "synonyms", synCount)
	}

	if err := searchWriter.Commit(ctx); err != nil {
		searchWriter.Close()
		return err
	}
	if err := searchWriter.ForceMerge(ctx); err != nil {
		searchWriter.Close()
		return err
	}
	if err := searchWriter.Close(); err != nil {
		return err
	}

	// The vernacular and IRMNG sub-indexes belong to a full (load and
	// search) run only, and each is skipped when its source path is
	// blank or does not exist.
	if !load {
		return nil
	}

	if _, err := os.Stat(cfg.Paths.CommonNameFile); cfg.Paths.CommonNameFile != "" && err == nil {
		if err := runVernacularPhase(ctx, cfg, loadReader, log); err != nil {
			return err
		}
	}

	if _, err := os.Stat(cfg.Paths.IrmngDir); cfg.Paths.IrmngDir != "" && err == nil {
		if err := runIrmngPhase(ctx, cfg, log); err != nil {
			return err
		}
	}

	return nil
}

func runVernacularPhase(ctx context.Context, cfg *config.Config, loadReader index.Reader, log *slog.Logger) error {
	vernDir := filepath.Join(cfg.Paths.TargetDir, vernacularSubdir)
	if err := iofs.BackupIfExists(vernDir); err != nil {
		return TargetUnwritable(vernDir, err)
	}

	src, err := dwca.OpenVernaculars(cfg.Paths.CommonNameFile, log)
	if err != nil {
		return err
	}
	defer src.Close()

	written, discarded, err := vernacular.Build(ctx, sqliteindex.OpenWriter, vernDir, src, loadReader, log)
	if err != nil {
		return err
	}
	if log != nil {
		log.Info("Vernacular phase complete", "written", written, "discarded", discarded, "skipped_rows", src.Skipped())
	}
	return nil
}

func runIrmngPhase(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	irmngDir := filepath.Join(cfg.Paths.TargetDir, irmngSubdir)
	if err := iofs.BackupIfExists(irmngDir); err != nil {
		return TargetUnwritable(irmngDir, err)
	}

	src, err := dwca.OpenConcepts(cfg.Paths.IrmngDir, log)
	if err != nil {
		return err
	}
	defer src.Close()

	canonicalizer := canon.New(cfg.JobsNumber)
	defer canonicalizer.Close()

	written, err := irmng.Build(ctx, sqliteindex.OpenWriter, irmngDir, src, canonicalizer, log)
	if err != nil {
		return err
	}
	if log != nil {
		log.Info("IRMNG homonym phase complete", "written", written, "skipped_rows", src.Skipped())
	}
	return nil
}

// TestSearch opens the committed search index under cfg.Paths.TargetDir
// and runs a single diagnostic name query, printing the matching
// accepted-concept or synonym documents (spec.md §4.7, §6 "testSearch").
// Search-index documents are keyed by canonical name (searchindex.go's
// EmitAccepted/EmitSynonym), so name is run through the same
// canonicalizer the build phases use before querying.
func TestSearch(ctx context.Context, cfg *config.Config, name string) error {
	searchDir := filepath.Join(cfg.Paths.TargetDir, searchSubdir)
	reader, err := sqliteindex.OpenReader(ctx, searchDir)
	if err != nil {
		return err
	}
	defer reader.Close()

	canonicalizer := canon.New(cfg.JobsNumber)
	defer canonicalizer.Close()
	canonicalName := canonicalizer.Canonical(name)

	docs, err := reader.TermQuery(ctx, taxon.FieldName, canonicalName, 0)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return NoTestSearchMatch(name)
	}

	for _, d := range docs {
		fmt.Printf("id=%s lsid=%s name=%s rank=%s left=%s right=%s accepted_id=%s\n",
			d.Get(taxon.FieldID), d.Get(taxon.FieldLSID), d.Get(taxon.FieldName),
			d.Get(taxon.FieldRank), d.Get(taxon.FieldLeft), d.Get(taxon.FieldRight),
			d.Get(taxon.FieldAcceptedID))
	}
	return nil
}
