package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/internal/io/driver"
	"github.com/gnames/gnindexer/pkg/config"
	"github.com/gnames/gnindexer/pkg/logger"
	"github.com/spf13/cobra"
)

// getIndexCmd returns the index command, which carries spec.md §6's
// flag surface one-to-one: -all/-load/-search select the phases,
// -dwca/-irmng/-common/-target/-tmp name the archive and output
// locations, and -testSearch is a diagnostic query mode that short
// circuits the build entirely.
func getIndexCmd() *cobra.Command {
	var (
		all, load, search bool
		dwcaDir           string
		irmngDir          string
		commonNameFile    string
		targetDir         string
		tmpDir            string
		testSearchName    string
		jobsNumber        int
	)

	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Build (or query) the name-matching indexes",
		Long: `Builds the loading index, the search index, and the optional
vernacular and IRMNG homonym sub-indexes from a Darwin Core Archive.

Examples:
  gnindexer index --all --dwca /data/dwca-col --target /data/namematching --tmp /data/nmload-tmp
  gnindexer index --load --dwca /data/dwca-col --tmp /data/nmload-tmp
  gnindexer index --search --target /data/namematching --tmp /data/nmload-tmp
  gnindexer index --testSearch "Felis catus" --target /data/namematching`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("dwca") {
				opts = append(opts, config.OptDwcaDir(dwcaDir))
			}
			if cmd.Flags().Changed("irmng") {
				opts = append(opts, config.OptIrmngDir(irmngDir))
			}
			if cmd.Flags().Changed("common") {
				opts = append(opts, config.OptCommonNameFile(commonNameFile))
			}
			if cmd.Flags().Changed("target") {
				opts = append(opts, config.OptTargetDir(targetDir))
			}
			if cmd.Flags().Changed("tmp") {
				opts = append(opts, config.OptTmpDir(tmpDir))
			}
			if cmd.Flags().Changed("jobs") {
				opts = append(opts, config.OptJobsNumber(jobsNumber))
			}
			cfg.Update(opts)

			log := logger.New(cfg.Log)
			ctx := context.Background()

			if testSearchName != "" {
				err := driver.TestSearch(ctx, cfg, testSearchName)
				if err != nil {
					gn.PrintErrorMessage(err)
				}
				return err
			}

			phases := driver.Phases{Load: load, Search: search}
			if all {
				phases = driver.Phases{}
			}

			gn.Info("Starting gnindexer run")
			if err := driver.Run(ctx, cfg, phases, log); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("gnindexer run complete")
			return nil
		},
	}

	indexCmd.Flags().BoolVar(&all, "all", false, "build loading and search indexes, plus vernacular/irmng if configured (default when no phase flag is given)")
	indexCmd.Flags().BoolVar(&load, "load", false, "build the loading index only")
	indexCmd.Flags().BoolVar(&search, "search", false, "build the search index only (requires an existing loading index)")
	indexCmd.Flags().StringVar(&dwcaDir, "dwca", config.DefaultDwcaDir, "source Darwin Core Archive directory")
	indexCmd.Flags().StringVar(&irmngDir, "irmng", config.DefaultIrmngDir, "IRMNG Darwin Core Archive directory (enables homonym index)")
	indexCmd.Flags().StringVar(&commonNameFile, "common", config.DefaultCommonNameFile, "tab-delimited vernacular name file (enables vernacular sub-index)")
	indexCmd.Flags().StringVar(&targetDir, "target", config.DefaultTargetDir, "output directory for the search, vernacular, and irmng indexes")
	indexCmd.Flags().StringVar(&tmpDir, "tmp", config.DefaultTmpDir, "loading-index directory")
	indexCmd.Flags().StringVar(&testSearchName, "testSearch", "", "query the built search index for name, print the result, and exit")
	indexCmd.Flags().IntVar(&jobsNumber, "jobs", 0, "number of concurrent canonicalization workers (default: number of CPUs)")

	return indexCmd
}
