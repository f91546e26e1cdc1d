package main

import (
	"fmt"

	"github.com/gnames/gnindexer/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logLevel  string
	logFormat string
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gnindexer",
		Version: fmt.Sprintf("version: %s\nbuild:   %s", Version, Build),
		Short:   "Builds taxonomic name-matching indexes from a Darwin Core Archive",
		Long: `gnindexer ingests a Darwin Core Archive of biological names and builds
the inverted indexes backing fast name-to-concept resolution: a
temporary loading index, a final search index of accepted concepts and
synonyms carrying nested-set intervals and higher classification, and
optional vernacular-name and IRMNG homonym sub-indexes.

Run 'gnindexer index --help' for the full set of phase and path flags.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.New()
			cfg.Update([]config.Option{
				config.OptLogLevel(logLevel),
				config.OptLogFormat(logFormat),
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "logging format: text, json")

	rootCmd.Flags().BoolP("version", "v", false, "print build/version info, exit")

	rootCmd.AddCommand(getIndexCmd())

	return rootCmd
}
