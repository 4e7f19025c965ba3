package extractor

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

// Profile names.
const (
	ProfileGeneric  = "generic"
	ProfileCrick    = "crick"
	ProfileCrickPRN = "crick-prn"
)

// Lab and assay values fixed by the Crick profiles.
const (
	LabCrick        = "CRICK"
	AssayPRN        = "PRN"
	SubtypeCrickPRN = "A(H3N2)"
)

// Phases are the replaceable steps of Preprocess. A lab profile swaps the
// steps it detects differently and keeps the base ones for the rest. A nil
// step falls back to the base implementation, except Metadata which is
// optional.
type Phases struct {
	Titers        func(*Extractor)
	NameColumn    func(*Extractor)
	DateColumn    func(*Extractor)
	PassageColumn func(*Extractor)
	// Metadata runs last and may fill lab level fields (rbc, lineage).
	Metadata func(*Extractor)
}

// BasePhases returns the generic detection steps.
func BasePhases() Phases {
	return Phases{
		Titers:        (*Extractor).FindTiters,
		NameColumn:    (*Extractor).FindAntigenNameColumn,
		DateColumn:    (*Extractor).FindAntigenDateColumn,
		PassageColumn: (*Extractor).FindAntigenPassageColumn,
	}
}

func (p Phases) withDefaults() Phases {
	base := BasePhases()
	if p.Titers == nil {
		p.Titers = base.Titers
	}
	if p.NameColumn == nil {
		p.NameColumn = base.NameColumn
	}
	if p.DateColumn == nil {
		p.DateColumn = base.DateColumn
	}
	if p.PassageColumn == nil {
		p.PassageColumn = base.PassageColumn
	}
	return p
}

// NewCrick returns the extractor for Crick HI reports. Lab is fixed; the
// RBC species and the B lineage are read from the sheet text.
func NewCrick(s sheet.Sheet, log *slog.Logger) *Extractor {
	phases := BasePhases()
	phases.Metadata = crickMetadata
	x := NewWithPhases(s, log, ProfileCrick, phases)
	x.lab = LabCrick
	return x
}

// NewCrickPRN returns the extractor for Crick plaque reduction
// neutralisation reports, which are H3N2 only and use no red blood cells.
func NewCrickPRN(s sheet.Sheet, log *slog.Logger) *Extractor {
	phases := BasePhases()
	phases.Metadata = crickPRNMetadata
	x := NewWithPhases(s, log, ProfileCrickPRN, phases)
	x.lab = LabCrick
	x.assay = AssayPRN
	x.subtype = SubtypeCrickPRN
	return x
}

func crickMetadata(x *Extractor) {
	from, to := sheet.All(x.sheet)
	if matches := sheet.Grep(x.sheet, rbcRe, from, to); len(matches) > 0 {
		x.rbc = normalizeRBC(matches[0].Groups[1])
	} else {
		x.warnf("rbc species not found")
	}

	if x.subtype != "" && !strings.HasPrefix(strings.ToUpper(x.subtype), "B") {
		return
	}
	if matches := sheet.Grep(x.sheet, lineageRe, from, to); len(matches) > 0 {
		x.lineage = strings.ToUpper(matches[0].Groups[1])
	}
}

func crickPRNMetadata(x *Extractor) {
	x.rbc = ""
	x.lineage = ""
}

// normalizeRBC maps "Guinea Pig", "guineapig" and the like to "guinea-pig".
func normalizeRBC(species string) string {
	s := strings.ToLower(species)
	if strings.HasPrefix(s, "guinea") {
		return "guinea-pig"
	}
	return s
}
