// Package extractor infers the structure of a serology report sheet: which
// rows hold antigens, where the titer block is, and which columns hold the
// antigen name, collection date and passage.
//
// An Extractor is built for one sheet, run once through Preprocess and is
// read-only afterwards. Failing to find a column is not an error: the column
// stays unset and a warning is logged and recorded.
package extractor

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

// DefaultAssay is the assay of a sheet nothing else is known about.
const DefaultAssay = "HI"

// Extractor holds the structure inferred from one sheet.
type Extractor struct {
	sheet   sheet.Sheet
	log     *slog.Logger
	profile string
	phases  Phases

	lab     string
	subtype string
	lineage string
	assay   string
	rbc     string
	date    cell.Date

	nameColumn    sheet.Column
	dateColumn    sheet.Column
	passageColumn sheet.Column
	titerColumns  sheet.Range[sheet.Column]
	antigenRows   []sheet.Row

	longestName    int
	longestPassage int

	warnings []string
}

// NewWithPhases returns an extractor for s running the given phases. It is
// not preprocessed yet. A nil logger discards diagnostics.
func NewWithPhases(s sheet.Sheet, log *slog.Logger, profile string, phases Phases) *Extractor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	x := &Extractor{
		sheet:   s,
		log:     log.With("extractor", profile),
		profile: profile,
		phases:  phases.withDefaults(),
		assay:   DefaultAssay,
		date:    cell.InvalidDate,
	}
	x.reset()
	return x
}

// NewGeneric returns the lab-independent extractor.
func NewGeneric(s sheet.Sheet, log *slog.Logger) *Extractor {
	return NewWithPhases(s, log, ProfileGeneric, BasePhases())
}

// reset clears everything Preprocess computes. Metadata set by the factory
// (lab, subtype, date) is kept.
func (x *Extractor) reset() {
	x.nameColumn = sheet.InvalidColumn
	x.dateColumn = sheet.InvalidColumn
	x.passageColumn = sheet.InvalidColumn
	x.titerColumns = sheet.InvalidRange[sheet.Column]()
	x.antigenRows = nil
	x.longestName = 0
	x.longestPassage = 0
	x.warnings = nil
}

// Preprocess runs the detection phases in order: titers, antigen name
// column, date column, passage column, then the profile's metadata hook.
// Running it again on the same sheet gives the same result.
func (x *Extractor) Preprocess() {
	x.reset()
	x.phases.Titers(x)
	x.phases.NameColumn(x)
	x.phases.DateColumn(x)
	x.phases.PassageColumn(x)
	if x.phases.Metadata != nil {
		x.phases.Metadata(x)
	}
	x.log.Debug("preprocessed",
		"antigens", len(x.antigenRows),
		"titer_columns", x.titerColumns.Length(),
		"name_column", x.nameColumn,
		"date_column", x.dateColumn,
		"passage_column", x.passageColumn)
}

func (x *Extractor) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	x.warnings = append(x.warnings, msg)
	x.log.Warn(msg)
}

// FindTiters records every row with a titer-like block as an antigen row.
// The first block found becomes the titer columns; rows whose block differs
// are kept and only warned about.
func (x *Extractor) FindTiters() {
	for r := sheet.Row(0); r < x.sheet.NumberOfRows(); r++ {
		rng := sheet.TiterRange(x.sheet, r)
		if !rng.Valid() {
			continue
		}
		x.antigenRows = append(x.antigenRows, r)
		switch {
		case !x.titerColumns.Valid():
			x.titerColumns = rng
		case rng != x.titerColumns:
			x.warnf("row %d: titer columns [%d, %d) differ from common [%d, %d)",
				r, rng.First, rng.Second, x.titerColumns.First, x.titerColumns.Second)
		}
	}
	if len(x.antigenRows) == 0 {
		x.warnf("no titer block found")
	}
}

// FindAntigenNameColumn adopts the leftmost column before the titer block in
// which every antigen row holds an antigen name.
func (x *Extractor) FindAntigenNameColumn() {
	if len(x.antigenRows) == 0 || !x.titerColumns.Valid() {
		x.warnf("antigen name column not found: no antigen rows")
		return
	}
	for c := sheet.Column(0); c < x.titerColumns.First; c++ {
		longest, ok := 0, true
		for _, r := range x.antigenRows {
			groups := sheet.Submatch(x.sheet, antigenNameRe, r, c)
			if groups == nil {
				ok = false
				break
			}
			longest = max(longest, utf8.RuneCountInString(groups[1]))
		}
		if ok {
			x.nameColumn = c
			x.longestName = longest
			return
		}
	}
	x.warnf("antigen name column not found")
}

// FindAntigenDateColumn adopts the leftmost column in which at least half
// (rounded down) of the antigen rows hold a date.
func (x *Extractor) FindAntigenDateColumn() {
	c, _ := x.majorityColumn(func(r sheet.Row, c sheet.Column) int {
		if sheet.IsDate(x.sheet, r, c) {
			return 0
		}
		return -1
	})
	if !c.Valid() {
		x.warnf("antigen date column not found")
		return
	}
	x.dateColumn = c
}

// FindAntigenPassageColumn adopts the leftmost column in which at least
// half (rounded down) of the antigen rows hold a passage annotation.
func (x *Extractor) FindAntigenPassageColumn() {
	c, longest := x.majorityColumn(func(r sheet.Row, c sheet.Column) int {
		groups := sheet.Submatch(x.sheet, passageRe, r, c)
		if groups == nil {
			return -1
		}
		return utf8.RuneCountInString(groups[1])
	})
	if !c.Valid() {
		x.warnf("antigen passage column not found")
		return
	}
	x.passageColumn = c
	x.longestPassage = longest
}

// majorityColumn scans all columns left to right and returns the first one
// where match succeeds (returns >= 0) for at least len(antigenRows)/2 rows,
// and at least one. It also returns the largest width match reported there.
func (x *Extractor) majorityColumn(match func(sheet.Row, sheet.Column) int) (sheet.Column, int) {
	threshold := len(x.antigenRows) / 2
	for c := sheet.Column(0); c < x.sheet.NumberOfColumns(); c++ {
		hits, longest := 0, 0
		for _, r := range x.antigenRows {
			if width := match(r, c); width >= 0 {
				hits++
				longest = max(longest, width)
			}
		}
		if hits > 0 && hits >= threshold {
			return c, longest
		}
	}
	return sheet.InvalidColumn, 0
}

// Sheet returns the sheet the extractor works on.
func (x *Extractor) Sheet() sheet.Sheet { return x.sheet }

// Profile names the lab profile (generic, crick, crick-prn).
func (x *Extractor) Profile() string { return x.profile }

func (x *Extractor) Lab() string     { return x.lab }
func (x *Extractor) Subtype() string { return x.subtype }
func (x *Extractor) Lineage() string { return x.lineage }
func (x *Extractor) Assay() string   { return x.assay }
func (x *Extractor) RBC() string     { return x.rbc }

// Date is the report date; cell.InvalidDate when unknown.
func (x *Extractor) Date() cell.Date { return x.date }

// SetLab, SetSubtype, SetLineage, SetAssay, SetRBC and SetDate record sheet
// metadata known from outside the grid (e.g. the report title).
func (x *Extractor) SetLab(v string)     { x.lab = v }
func (x *Extractor) SetSubtype(v string) { x.subtype = v }
func (x *Extractor) SetLineage(v string) { x.lineage = v }
func (x *Extractor) SetAssay(v string)   { x.assay = v }
func (x *Extractor) SetRBC(v string)     { x.rbc = v }
func (x *Extractor) SetDate(d cell.Date) { x.date = d }

// NameColumn returns the antigen name column and whether it was found.
func (x *Extractor) NameColumn() (sheet.Column, bool) {
	return x.nameColumn, x.nameColumn.Valid()
}

// DateColumn returns the antigen date column and whether it was found.
func (x *Extractor) DateColumn() (sheet.Column, bool) {
	return x.dateColumn, x.dateColumn.Valid()
}

// PassageColumn returns the antigen passage column and whether it was found.
func (x *Extractor) PassageColumn() (sheet.Column, bool) {
	return x.passageColumn, x.passageColumn.Valid()
}

// TiterColumns returns the common titer block; invalid when none was found.
func (x *Extractor) TiterColumns() sheet.Range[sheet.Column] { return x.titerColumns }

// AntigenRows returns the antigen rows in sheet order.
func (x *Extractor) AntigenRows() []sheet.Row {
	return append([]sheet.Row(nil), x.antigenRows...)
}

// NumberOfAntigens is len(AntigenRows()).
func (x *Extractor) NumberOfAntigens() int { return len(x.antigenRows) }

// LongestAntigenName is the widest matched antigen name, in runes.
func (x *Extractor) LongestAntigenName() int { return x.longestName }

// LongestAntigenPassage is the widest matched passage, in runes.
func (x *Extractor) LongestAntigenPassage() int { return x.longestPassage }

// Warnings returns the diagnostics raised by the last Preprocess.
func (x *Extractor) Warnings() []string {
	return append([]string(nil), x.warnings...)
}

// AntigenName returns the name of the i-th antigen, "" when the name column
// is unset.
func (x *Extractor) AntigenName(i int) string {
	if !x.nameColumn.Valid() {
		return ""
	}
	return strings.TrimSpace(x.sheet.Cell(x.antigenRows[i], x.nameColumn).String())
}

// AntigenDate returns the collection date of the i-th antigen in ISO form
// when it parses, the raw text otherwise, "" when the date column is unset.
func (x *Extractor) AntigenDate(i int) string {
	if !x.dateColumn.Valid() {
		return ""
	}
	v := x.sheet.Cell(x.antigenRows[i], x.dateColumn)
	if cell.IsString(v) {
		if d := cell.ParseDate(v.Text()); d.Valid() {
			return d.String()
		}
	}
	return strings.TrimSpace(v.String())
}

// AntigenPassage returns the passage of the i-th antigen, "" when the
// passage column is unset.
func (x *Extractor) AntigenPassage(i int) string {
	if !x.passageColumn.Valid() {
		return ""
	}
	return strings.TrimSpace(x.sheet.Cell(x.antigenRows[i], x.passageColumn).String())
}

// Titers returns the i-th antigen's values across the common titer block.
func (x *Extractor) Titers(i int) []string {
	var out []string
	x.titerColumns.Each(func(c sheet.Column) {
		out = append(out, strings.TrimSpace(x.sheet.Cell(x.antigenRows[i], c).String()))
	})
	return out
}

// SerumName returns the header of titer column c: the nearest non-empty
// string cell above the first antigen row.
func (x *Extractor) SerumName(c sheet.Column) string {
	if len(x.antigenRows) == 0 {
		return ""
	}
	for r := x.antigenRows[0] - 1; r >= 0; r-- {
		if v := x.sheet.Cell(r, c); cell.IsString(v) && strings.TrimSpace(v.Text()) != "" {
			return strings.TrimSpace(v.Text())
		}
	}
	return ""
}

// SerumPassage returns the passage annotation of the serum in titer column c:
// the nearest cell above the first antigen row that reads as a passage.
func (x *Extractor) SerumPassage(c sheet.Column) string {
	return x.serumHeader(c, passageRe)
}

// SerumID returns the serum identifier (e.g. F12/20) of titer column c.
func (x *Extractor) SerumID(c sheet.Column) string {
	return x.serumHeader(c, serumIDRe)
}

func (x *Extractor) serumHeader(c sheet.Column, re *regexp.Regexp) string {
	if len(x.antigenRows) == 0 {
		return ""
	}
	for r := x.antigenRows[0] - 1; r >= 0; r-- {
		if groups := sheet.Submatch(x.sheet, re, r, c); groups != nil {
			return strings.TrimSpace(groups[1])
		}
	}
	return ""
}
