package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doccover/internal/config"
	"github.com/dgallion1/doccover/internal/pipeline"
	"github.com/dgallion1/doccover/internal/policy"
	"github.com/dgallion1/doccover/internal/report"
)

// errBelowLimits makes the process exit non-zero when coverage limits fail.
var errBelowLimits = errors.New("documentation coverage is below the configured limits")

type analyzeOptions struct {
	configFile string
	publicOnly bool
	format     string
	outputDir  string
	outputName string
	verbose    bool
	noColor    bool
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze <snapshot>",
		Short: "Compute documentation coverage of a snapshot file",
		Long: `Compute documentation coverage of a .json, .yaml or .msgpack snapshot.

The console format prints to stdout; other formats are written to
<output-dir>/<output-name>.<ext>. The command fails when any configured
minimum coverage is not met.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cfg, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "TOML configuration file")
	f.BoolVar(&opts.publicOnly, "public-only", false, "count only public types and members")
	f.StringVarP(&opts.format, "format", "f", "", "report format (console|markdown|html|json)")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for file reports")
	f.StringVar(&opts.outputName, "output-name", "", "report file name without extension")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log analysis progress")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored console output")
	return cmd
}

// resolveConfig layers environment, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts analyzeOptions) (config.Config, error) {
	cfg := config.Load()
	if opts.configFile != "" {
		if err := config.LoadFile(opts.configFile, &cfg); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("public-only") {
		cfg.PublicOnly = opts.publicOnly
	}
	if flags.Changed("format") {
		cfg.ReportFormat = opts.format
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("output-name") {
		cfg.OutputName = opts.outputName
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runAnalyze(ctx context.Context, cfg config.Config, path string, opts analyzeOptions, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := pipeline.NewAnalyzer(cfg.WorkerCount, log).AnalyzeFile(ctx, path, cfg.Coverage())
	if err != nil {
		return err
	}
	result := policy.Evaluate(cfg.Limits, res.Project)
	rep := report.New(res.Project, &result)

	exp, err := report.ForFormat(cfg.ReportFormat)
	if err != nil {
		return err
	}
	if c, ok := exp.(*report.ConsoleExporter); ok {
		c.NoColor = opts.noColor || stdout != io.Writer(os.Stdout)
		if err := c.Export(stdout, rep); err != nil {
			return err
		}
	} else {
		out, err := report.WriteFile(cfg.OutputDir, cfg.OutputName, exp, rep)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "JavaDoc Coverage report saved to %s\n", out)
		fmt.Fprintf(stdout, "Project Documentation Coverage: %.2f%%\n", res.Project.Percent())
	}

	if !result.Passed {
		for _, v := range result.Violations {
			log.Warn("below minimum coverage", "element", v.String())
		}
		return errBelowLimits
	}
	return nil
}
