package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
)

// InferTypes returns a Grid where string cells holding an integer, a decimal
// number or a date are promoted to the matching variant. Other cells are
// copied unchanged; blank strings become empty cells.
func InferTypes(s Sheet) *Grid {
	rows := make([][]cell.Cell, s.NumberOfRows())
	for r := range rows {
		rows[r] = RowCells(s, Row(r))
		for c, v := range rows[r] {
			if cell.IsString(v) {
				rows[r][c] = InferValue(v.Text())
			}
		}
	}
	return NewGrid(rows)
}

// InferValue converts text to the most specific cell variant: compact
// yyyymmdd date, Integer, Number, Date, otherwise String.
func InferValue(s string) cell.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return cell.Empty()
	}
	if d, ok := compactDate(trimmed); ok {
		return cell.DateOf(d)
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return cell.Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return cell.Num(f)
	}
	if d := cell.ParseDate(trimmed); d.Valid() {
		return cell.DateOf(d)
	}
	return cell.Str(s)
}

// compactDate reads eight digits as a yyyymmdd calendar date. It runs before
// the integer check so that such a column is not taken for titers.
func compactDate(s string) (cell.Date, bool) {
	if len(s) != 8 || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return cell.InvalidDate, false
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return cell.InvalidDate, false
	}
	d := cell.FromTime(t)
	return d, d.Valid()
}
