package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/frameprof/frameprof/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "frameprof",
	Short: "An exploratory data analysis report generator",
	Long: `frameprof profiles tabular data and generates a standalone HTML
report: per-column distributions, null value analysis, duplicated rows,
data types and temporal breakdowns.

Features:
  • CSV ingestion with type inference and glob patterns
  • Discrete and continuous column distributions with SVG charts
  • Declarative report schemas resolved through an analyzer registry`,
	Version: version.Short(),
}

func init() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	cobra.OnInitialize(func() {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})

	// Add main subcommands
	rootCmd.AddCommand(NewReportCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
