package parser

import (
	"fmt"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet. Blocks of rows
// separated by blank rows are candidates; a block is kept when it is dense
// enough. Returns A1 ranges such as "A1:D10", in the coordinates of the
// underlying sheet when s is a window.
func DetectTables(s sheet.Sheet, params TableDetectionParams) []string {
	var result []string
	start := sheet.InvalidRow
	for r := sheet.Row(0); r <= s.NumberOfRows(); r++ {
		blank := r == s.NumberOfRows() || isBlankRow(s, r)
		switch {
		case !blank && !start.Valid():
			start = r
		case blank && start.Valid():
			if ref, ok := blockCandidate(s, sheet.Range[sheet.Row]{First: start, Second: r}, params); ok {
				result = append(result, ref)
			}
			start = sheet.InvalidRow
		}
	}
	return result
}

func blockCandidate(s sheet.Sheet, rows sheet.Range[sheet.Row], params TableDetectionParams) (string, bool) {
	minCol, maxCol := sheet.InvalidColumn, sheet.Column(-1)
	nonEmpty := 0
	rows.Each(func(r sheet.Row) {
		for c := sheet.Column(0); c < s.NumberOfColumns(); c++ {
			if cell.IsEmpty(s.Cell(r, c)) {
				continue
			}
			nonEmpty++
			if c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	})

	if nonEmpty < params.MinNonemptyCells {
		return "", false
	}
	total := rows.Length() * int(maxCol-minCol+1)
	if float64(nonEmpty)/float64(total) < params.DensityMin {
		return "", false
	}

	origin := sheet.OriginOf(s)
	first := sheet.Pos{Row: rows.First, Column: minCol}.Add(origin)
	last := sheet.Pos{Row: rows.Second - 1, Column: maxCol}.Add(origin)
	return RangeRef(first, last), true
}

func isBlankRow(s sheet.Sheet, r sheet.Row) bool {
	for c := sheet.Column(0); c < s.NumberOfColumns(); c++ {
		if !cell.IsEmpty(s.Cell(r, c)) {
			return false
		}
	}
	return true
}

// CellRef converts a 0-based position to an A1 reference.
func CellRef(p sheet.Pos) string {
	ref, err := excelize.CoordinatesToCellName(int(p.Column)+1, int(p.Row)+1)
	if err != nil {
		return ""
	}
	return ref
}

// RangeRef converts an inclusive pair of positions to "A1:D10".
func RangeRef(first, last sheet.Pos) string {
	return fmt.Sprintf("%s:%s", CellRef(first), CellRef(last))
}
