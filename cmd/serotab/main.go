// Package main provides the CLI entry point for serotab.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/serotab-go/internal/logging"
	"github.com/ukaji3/serotab-go/pkg/serotab"
	"github.com/ukaji3/serotab-go/pkg/serotab/datafix"
	"github.com/ukaji3/serotab-go/pkg/serotab/models"
	"github.com/ukaji3/serotab-go/pkg/serotab/output"
)

// errBatchFailed is returned when at least one input file failed.
var errBatchFailed = errors.New("one or more files failed")

type config struct {
	outputPath string
	outputDir  string
	pretty     bool
	format     string
	mode       string
	rulesPath  string
	separator  string
	encoding   string
	sheetName  string
	printArea  bool
	noInfer    bool
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}
	rootCmd := &cobra.Command{
		Use:   "serotab [input.csv|input.xlsx]...",
		Short: "Extract antigen and titer tables from serology reports",
		Long: `serotab finds the antigen rows, titer block and antigen name, date and
passage columns of HI / PRN report tables (CSV, TSV or xlsx) and outputs
JSON or a fixed-width text table.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args, stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&cfg.outputDir, "output-dir", "", "Directory for per-input output files")
	flags.BoolVar(&cfg.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&cfg.format, "format", "json", "Output format: json, text")
	flags.StringVar(&cfg.mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	flags.StringVar(&cfg.rulesPath, "rules", "", "YAML file of correction rules")
	flags.StringVar(&cfg.separator, "separator", "", `Field separator for delimited text (single character or "tab"; default by extension)`)
	flags.StringVar(&cfg.encoding, "encoding", "", "Text encoding of delimited input, e.g. windows-1252 (default: utf-8)")
	flags.StringVar(&cfg.sheetName, "sheet", "", "Only extract this workbook sheet")
	flags.BoolVar(&cfg.printArea, "print-area", false, "Crop workbook sheets to their first print area")
	flags.BoolVar(&cfg.noInfer, "no-infer", false, "Keep delimited text cells as strings")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&cfg.logFormat, "log-format", "text", "Log format: text, json")

	return rootCmd
}

func run(ctx context.Context, cfg *config, inputs []string, stdout, stderr io.Writer) error {
	logging.Setup(stderr, cfg.logLevel, cfg.logFormat)

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if cfg.format != "json" && cfg.format != "text" {
		return fmt.Errorf("invalid format: %s (must be json or text)", cfg.format)
	}
	if cfg.outputDir != "" {
		if err := os.MkdirAll(cfg.outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	opts.RunID = runID
	opts.Logger = logging.FromContext(ctx)

	out := stdout
	if cfg.outputPath != "" {
		f, err := os.Create(cfg.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	failed := 0
	for _, input := range inputs {
		log := logging.WithFields(ctx, "file", input)
		wb, err := serotab.Extract(input, opts)
		if err != nil {
			log.Error("extraction failed", "error", err)
			failed++
			continue
		}
		if err := cfg.write(out, input, wb); err != nil {
			log.Error("failed to write output", "error", err)
			failed++
			continue
		}
		log.Debug("file done", "sheets", len(wb.Sheets))
	}

	logging.FromContext(ctx).Info("batch finished", "files", len(inputs), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, failed, len(inputs))
	}
	return nil
}

func (cfg *config) options() (serotab.Options, error) {
	mode, err := serotab.ParseMode(cfg.mode)
	if err != nil {
		return serotab.Options{}, err
	}
	sep, err := parseSeparator(cfg.separator)
	if err != nil {
		return serotab.Options{}, err
	}

	opts := serotab.Options{
		Mode:         mode,
		Separator:    sep,
		Encoding:     cfg.encoding,
		SheetName:    cfg.sheetName,
		UsePrintArea: cfg.printArea,
	}
	if cfg.noInfer {
		infer := false
		opts.InferTypes = &infer
	}
	if cfg.rulesPath != "" {
		rules, err := datafix.Load(cfg.rulesPath)
		if err != nil {
			return serotab.Options{}, err
		}
		opts.Rules = rules
	}
	return opts, nil
}

// write renders wb either into its own file under the output directory or
// onto out.
func (cfg *config) write(out io.Writer, input string, wb *models.WorkbookReport) error {
	data, err := cfg.render(wb)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.outputDir != "" {
		return os.WriteFile(filepath.Join(cfg.outputDir, cfg.outputName(input)), data, 0644)
	}
	_, err = out.Write(data)
	return err
}

// outputName keeps the input's extension so that t.csv and t.xlsx in one
// batch land in t.csv.json and t.xlsx.json.
func (cfg *config) outputName(input string) string {
	if cfg.format == "text" {
		return filepath.Base(input) + ".txt"
	}
	return filepath.Base(input) + ".json"
}

func (cfg *config) render(wb *models.WorkbookReport) ([]byte, error) {
	if cfg.format == "text" {
		var b strings.Builder
		if err := output.WriteText(&b, wb); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	}
	data, err := output.ToJSON(wb, cfg.pretty)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func parseSeparator(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid separator %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
