// Package main provides the CLI entry point for rebarcollapse.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/config"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/logging"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/messages"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/notify"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/output"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/workbook"
)

var (
	outputPath string
	configPath string
	envFile    string
	selection  []string
	dryRun     bool
	jsonOut    bool
	pretty     bool
	language   string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rebarcollapse [input.xlsx]",
		Short: "Hide empty weight columns in rebar schedules",
		Long: `rebarcollapse hides the weight columns of an exported rebar schedule
that hold only text and zeros, and shows hidden ones that hold positive values.
Weight columns run from the first field whose name starts with a digit up to
the first field whose name starts with "=".`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Env file with COLLAPSE_* overrides")
	rootCmd.Flags().StringArrayVar(&selection, "select", nil, "Selected sheet holding a placed schedule (repeatable)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without saving")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&language, "language", "", "Message language: en, ru")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	stdout := cmd.OutOrStdout()

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return err
	}
	if language != "" {
		cfg.Language = language
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, true)
	if err != nil {
		return err
	}
	logging.SetLogger(&logger)

	doc, err := workbook.Open(inputPath, cfg.WorkbookOptions(selection))
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer doc.Close()

	terminal := notify.NewTerminal(stdout)
	var notifier collapse.Notifier = terminal
	if jsonOut {
		notifier = nil
	}

	opts := cfg.CollapseOptions()
	report, err := collapse.Run(doc, notifier, opts)
	if err != nil {
		return reportFailure(stdout, terminal, opts, err)
	}

	if !dryRun && (doc.Dirty() || outputPath != "") {
		if err := doc.Save(outputPath); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info().Str("path", savedPath(inputPath)).Msg("workbook saved")
	}

	if jsonOut {
		data, err := output.ReportToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}

	return nil
}

// reportFailure shows a failed run to the user and returns err.
func reportFailure(w io.Writer, terminal *notify.Terminal, opts collapse.Options, err error) error {
	msg := err.Error()
	var opErr *collapse.OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		msg = opErr.Message
	}

	if jsonOut {
		data, jerr := output.FailureToJSON(output.Failure{Error: err.Error(), Message: msg}, pretty)
		if jerr == nil {
			fmt.Fprintln(w, string(data))
		}
		return err
	}

	terminal.Failure(messages.Get(opts.Language, messages.Failed), msg)
	return err
}

func savedPath(inputPath string) string {
	if outputPath != "" {
		return outputPath
	}
	return inputPath
}
