package extractor

import (
	"log/slog"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

// New picks the extractor matching the report title in the sheet's first
// cell, falling back to the generic one, and preprocesses it.
func New(s sheet.Sheet, log *slog.Logger) *Extractor {
	var groups []string
	if s.NumberOfRows() > 0 && s.NumberOfColumns() > 0 {
		groups = sheet.Submatch(s, titleRe, 0, 0)
	}

	if groups == nil {
		x := NewWithPhases(s, log, ProfileGeneric, Phases{Metadata: unmatchedMetadata})
		x.Preprocess()
		return x
	}

	subtype, assayPhrase, date := groups[1], groups[2], groups[3]
	var x *Extractor
	if plaqueRe.MatchString(assayPhrase) {
		x = NewCrickPRN(s, log)
	} else {
		x = NewCrick(s, log)
		x.subtype = subtype
	}
	if d := cell.ParseDate(date); d.Valid() {
		x.date = d
	}
	x.Preprocess()
	return x
}

// unmatchedMetadata flags a sheet no lab profile recognised. It runs as a
// phase so that every Preprocess raises it again.
func unmatchedMetadata(x *Extractor) {
	x.warnf("no specific extractor found")
}
