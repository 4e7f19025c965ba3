package serotab

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/serotab-go/pkg/serotab/datafix"
	"github.com/ukaji3/serotab-go/pkg/serotab/extractor"
	"github.com/ukaji3/serotab-go/pkg/serotab/models"
	"github.com/ukaji3/serotab-go/pkg/serotab/parser"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

type reportBuilder struct {
	opts Options
	file string
	ns   parser.NamedSheet
	log  *slog.Logger
}

func (b reportBuilder) build() models.SheetReport {
	x := extractor.New(b.ns.Sheet, b.log)

	report := models.SheetReport{
		File:           b.file,
		Sheet:          b.ns.Name,
		RunID:          b.opts.RunID,
		Extractor:      x.Profile(),
		Lab:            x.Lab(),
		Subtype:        x.Subtype(),
		Lineage:        x.Lineage(),
		Assay:          x.Assay(),
		RBC:            x.RBC(),
		Date:           x.Date().String(),
		Columns:        columns(x),
		TiterBlock:     titerBlock(x),
		LongestName:    x.LongestAntigenName(),
		LongestPassage: x.LongestAntigenPassage(),
		PrintArea:      b.ns.Area,
		Warnings:       x.Warnings(),
	}

	if !b.opts.ShouldIncludeRecords() {
		for _, r := range x.AntigenRows() {
			report.AntigenRows = append(report.AntigenRows, int(r))
		}
		return report
	}

	var rules *datafix.RuleSet
	if b.opts.ShouldApplyFixes() {
		rules = b.opts.Rules
	}
	report.Sera = b.sera(x, rules)
	report.Antigens = b.antigens(x, rules)
	for _, a := range report.Antigens {
		report.LongestName = max(report.LongestName, utf8.RuneCountInString(a.Name))
		report.LongestPassage = max(report.LongestPassage, utf8.RuneCountInString(a.Passage))
	}

	if b.opts.ShouldIncludeRawCells() {
		report.TableCandidates = parser.DetectTables(b.ns.Sheet, parser.DefaultTableParams())
	}
	return report
}

func (b reportBuilder) sera(x *extractor.Extractor, rules *datafix.RuleSet) []models.Serum {
	var sera []models.Serum
	x.TiterColumns().Each(func(c sheet.Column) {
		fixed, changed := rules.FixSerum(datafix.Serum{
			Name:    x.SerumName(c),
			Passage: x.SerumPassage(c),
			SerumID: x.SerumID(c),
		})
		if changed {
			b.log.Debug("serum corrected", "column", int(c))
		}
		sera = append(sera, models.Serum{
			Column:  int(c),
			Name:    fixed.Name,
			Passage: fixed.Passage,
			SerumID: fixed.SerumID,
		})
	})
	return sera
}

func (b reportBuilder) antigens(x *extractor.Extractor, rules *datafix.RuleSet) []models.Antigen {
	rows := x.AntigenRows()
	antigens := make([]models.Antigen, 0, len(rows))
	for i, r := range rows {
		fixed, changed := rules.FixAntigen(datafix.Antigen{
			Name:    x.AntigenName(i),
			Passage: x.AntigenPassage(i),
			Date:    x.AntigenDate(i),
		})
		if changed {
			b.log.Debug("antigen corrected", "row", int(r))
		}

		titers := x.Titers(i)
		for j, titer := range titers {
			titers[j], _ = rules.FixTiter(titer)
		}

		a := models.Antigen{
			Row:     int(r),
			Name:    fixed.Name,
			Date:    fixed.Date,
			Passage: fixed.Passage,
			Titers:  titers,
		}
		if b.opts.ShouldIncludeRawCells() {
			for _, v := range sheet.RowCells(x.Sheet(), r) {
				a.Cells = append(a.Cells, strings.TrimSpace(v.String()))
			}
		}
		antigens = append(antigens, a)
	}
	return antigens
}

func columns(x *extractor.Extractor) models.Columns {
	var cols models.Columns
	if c, ok := x.NameColumn(); ok {
		cols.Name = intPtr(int(c))
	}
	if c, ok := x.DateColumn(); ok {
		cols.Date = intPtr(int(c))
	}
	if c, ok := x.PassageColumn(); ok {
		cols.Passage = intPtr(int(c))
	}
	if t := x.TiterColumns(); t.Valid() && t.Length() > 0 {
		cols.TiterFirst = intPtr(int(t.First))
		cols.TiterLast = intPtr(int(t.Second) - 1)
	}
	return cols
}

// titerBlock returns the A1 range spanning the antigen rows and the titer
// columns, in the coordinates of the underlying sheet.
func titerBlock(x *extractor.Extractor) string {
	rows := x.AntigenRows()
	t := x.TiterColumns()
	if len(rows) == 0 || !t.Valid() || t.Length() == 0 {
		return ""
	}
	origin := sheet.OriginOf(x.Sheet())
	first := sheet.Pos{Row: rows[0], Column: t.First}.Add(origin)
	last := sheet.Pos{Row: rows[len(rows)-1], Column: t.Second - 1}.Add(origin)
	return parser.RangeRef(first, last)
}

func intPtr(v int) *int { return &v }
