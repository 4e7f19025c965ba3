// Package serotab extracts antigen and titer tables from serology report
// spreadsheets (delimited text or xlsx workbooks).
package serotab

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/serotab-go/pkg/serotab/datafix"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight reports the detected structure only: columns, titer block and antigen rows.
	ModeLight Mode = "light"
	// ModeStandard adds antigen and serum records with titers, corrected by the rule set.
	ModeStandard Mode = "standard"
	// ModeVerbose adds the raw cells of every antigen row and table candidates.
	ModeVerbose Mode = "verbose"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// Separator overrides the field separator of delimited text input.
	// Zero picks one from the file extension.
	Separator rune
	// Encoding names the text encoding of delimited input ("" is UTF-8).
	Encoding string
	// SheetName restricts workbook extraction to one sheet.
	SheetName string
	// UsePrintArea crops each workbook sheet to its first print area.
	UsePrintArea bool
	// InferTypes specifies whether delimited text cells are promoted to
	// numbers and dates. If nil, defaults to true.
	InferTypes *bool
	// ApplyFixes specifies whether Rules correct extracted fields.
	// If nil, defaults to false for light mode, true otherwise.
	ApplyFixes *bool
	// Rules holds the correction rules; nil means no correction.
	Rules *datafix.RuleSet
	// Logger receives extraction diagnostics. If nil, they are discarded.
	Logger *slog.Logger
	// RunID is copied into every sheet report.
	RunID string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldInferTypes returns whether delimited text cells are typed.
func (o Options) ShouldInferTypes() bool {
	if o.InferTypes != nil {
		return *o.InferTypes
	}
	return true
}

// ShouldApplyFixes returns whether correction rules are applied.
func (o Options) ShouldApplyFixes() bool {
	if o.ApplyFixes != nil {
		return *o.ApplyFixes
	}
	return o.Mode != ModeLight
}

// ShouldIncludeRecords returns whether antigen and serum records are built.
func (o Options) ShouldIncludeRecords() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeRawCells returns whether antigen rows carry their raw cells
// and table candidates are detected.
func (o Options) ShouldIncludeRawCells() bool {
	return o.Mode == ModeVerbose
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
