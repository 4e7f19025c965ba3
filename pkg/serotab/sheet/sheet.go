// Package sheet provides the rectangular typed-cell grid the extractors work
// on, and the algorithms shared by every grid source.
//
// Row and column indexes are 0-based. Accessing a cell outside
// [0, NumberOfRows) x [0, NumberOfColumns) is a programming error and panics.
package sheet

import (
	"regexp"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
)

// Sheet is a read-only grid of typed cells. The CSV parser and the xlsx
// reader both produce one.
type Sheet interface {
	NumberOfRows() Row
	NumberOfColumns() Column
	Cell(r Row, c Column) cell.Cell
}

// Pos addresses a single cell.
type Pos struct {
	Row    Row
	Column Column
}

// CellMatch is one hit of Grep. Groups[0] is the whole match.
type CellMatch struct {
	Row    Row
	Column Column
	Groups []string
}

// Matches reports whether the cell at (r, c) is a string that re finds a
// match in. Non-string cells never match.
func Matches(s Sheet, re *regexp.Regexp, r Row, c Column) bool {
	v := s.Cell(r, c)
	return cell.IsString(v) && re.MatchString(v.Text())
}

// Submatch returns the groups of the first match of re in the cell at (r, c),
// or nil when the cell is not a string or does not match.
func Submatch(s Sheet, re *regexp.Regexp, r Row, c Column) []string {
	v := s.Cell(r, c)
	if !cell.IsString(v) {
		return nil
	}
	return re.FindStringSubmatch(v.Text())
}

// IsDate reports whether the cell at (r, c) holds a date.
func IsDate(s Sheet, r Row, c Column) bool {
	return cell.IsDate(s.Cell(r, c))
}

// MaybeTiter reports whether the cell at (r, c) looks like a titer.
func MaybeTiter(s Sheet, r Row, c Column) bool {
	return cell.MaybeTiter(s.Cell(r, c))
}

// TiterRange returns the longest run of consecutive titer-like cells in row
// r. A run replaces the best one only when strictly longer, so on a tie the
// leftmost run wins. The result is invalid when the row has no titer-like
// cell.
func TiterRange(s Sheet, r Row) Range[Column] {
	best := InvalidRange[Column]()
	current := InvalidRange[Column]()
	closeRun := func() {
		if current.Valid() && current.Length() > best.Length() {
			best = current
		}
		current = InvalidRange[Column]()
	}

	for c := Column(0); c < s.NumberOfColumns(); c++ {
		if MaybeTiter(s, r, c) {
			if current.Valid() {
				current.Second = c + 1
			} else {
				current = Range[Column]{First: c, Second: c + 1}
			}
			continue
		}
		closeRun()
	}
	closeRun()
	return best
}

// Grep returns every string cell in the region [from, to) that re matches,
// scanning row by row. to is clipped to the sheet size.
func Grep(s Sheet, re *regexp.Regexp, from, to Pos) []CellMatch {
	lastRow := to.Row
	if n := s.NumberOfRows(); lastRow > n {
		lastRow = n
	}
	lastCol := to.Column
	if n := s.NumberOfColumns(); lastCol > n {
		lastCol = n
	}

	var result []CellMatch
	for r := from.Row; r < lastRow; r++ {
		for c := from.Column; c < lastCol; c++ {
			if groups := Submatch(s, re, r, c); groups != nil {
				result = append(result, CellMatch{Row: r, Column: c, Groups: groups})
			}
		}
	}
	return result
}

// All returns the region covering the whole sheet, for use with Grep.
func All(s Sheet) (Pos, Pos) {
	return Pos{}, Pos{Row: s.NumberOfRows(), Column: s.NumberOfColumns()}
}
