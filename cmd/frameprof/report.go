package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/frameprof/frameprof/internal/analyzer"
	"github.com/frameprof/frameprof/internal/config"
	"github.com/frameprof/frameprof/internal/ingest"
	"github.com/frameprof/frameprof/internal/reporter"
)

// ReportCommand represents the report command
type ReportCommand struct {
	configPath  string
	output      string
	title       string
	schema      string
	maxTOCDepth int
	top         int
	open        bool
}

// NewReportCommand creates a new report command
func NewReportCommand() *ReportCommand {
	return &ReportCommand{}
}

// CreateCobraCommand creates the cobra command for report generation
func (r *ReportCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Generate an HTML data report",
		Long: `Analyze one or more CSV files and generate a standalone HTML
report with per-column distributions, null value analysis, duplicated rows
and data types.

Input paths support glob patterns, including ** for recursive matching.
Multiple files must share the same header and are concatenated.

Examples:
  # Profile a single file
  frameprof report data.csv

  # Profile every CSV under data/ into a custom output
  frameprof report "data/**/*.csv" --output out/report.html

  # Use a declarative report schema and open the result
  frameprof report data.csv --schema report.yaml --open`,
		Args: cobra.ArbitraryArgs,
		RunE: r.runReport,
	}

	r.registerFlags(cmd.Flags())

	return cmd
}

func (r *ReportCommand) registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&r.configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&r.output, "output", "o", "", "Output HTML file path")
	flags.StringVarP(&r.title, "title", "t", "", "Report title")
	flags.StringVar(&r.schema, "schema", "", "Declarative report schema (YAML)")
	flags.IntVar(&r.maxTOCDepth, "max-toc-depth", 0, "Depth of the table of contents")
	flags.IntVar(&r.top, "top", 0, "Most frequent values shown per column")
	flags.BoolVar(&r.open, "open", false, "Open the generated report in the browser")
}

// runReport executes the report command
func (r *ReportCommand) runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(r.configPath)
	if err != nil {
		return err
	}
	r.applyFlags(cfg, args)
	if len(cfg.Input) == 0 {
		return fmt.Errorf("no input file: pass CSV paths or set `input` in the configuration")
	}

	frame, err := ingest.LoadCSV(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().Int("rows", frame.NumRows()).Int("columns", frame.NumColumns()).Msg("frame loaded")

	root, err := r.buildAnalyzer(frame.Columns(), cfg)
	if err != nil {
		return err
	}
	sec, err := root.Analyze(frame)
	if err != nil {
		return err
	}

	rep := reporter.New(cfg.Title, cfg.MaxTOCDepth)
	if err := rep.Write(sec, cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.Output)

	if cfg.Open {
		if err := reporter.OpenBrowser(cfg.Output); err != nil {
			log.Warn().Err(err).Msg("failed to open report in browser")
		}
	}
	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func (r *ReportCommand) applyFlags(cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Input = args
	}
	if r.output != "" {
		cfg.Output = r.output
	}
	if r.title != "" {
		cfg.Title = r.title
	}
	if r.schema != "" {
		cfg.Schema = r.schema
	}
	if r.maxTOCDepth > 0 {
		cfg.MaxTOCDepth = r.maxTOCDepth
	}
	if r.top > 0 {
		cfg.Top = r.top
	}
	if r.open {
		cfg.Open = true
	}
}

func (r *ReportCommand) buildAnalyzer(columns []string, cfg *config.Config) (analyzer.Analyzer, error) {
	if cfg.Schema != "" {
		return config.LoadSchema(cfg.Schema)
	}
	return config.DefaultAnalyzer(columns, cfg)
}

// NewReportCmd creates and returns the report cobra command
func NewReportCmd() *cobra.Command {
	reportCommand := NewReportCommand()
	return reportCommand.CreateCobraCommand()
}
