package sheet

import (
	"fmt"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
)

// Grid is an in-memory Sheet. Rows may be shorter than the column count;
// missing trailing cells read as empty.
type Grid struct {
	rows    [][]cell.Cell
	columns Column
}

// NewGrid takes ownership of rows. The column count is the longest row.
func NewGrid(rows [][]cell.Cell) *Grid {
	var columns Column
	for _, row := range rows {
		if n := Column(len(row)); n > columns {
			columns = n
		}
	}
	return &Grid{rows: rows, columns: columns}
}

// NewStringGrid builds a Grid of string cells; empty strings become empty
// cells. Convenient for tests and for sources that only know text.
func NewStringGrid(rows [][]string) *Grid {
	cells := make([][]cell.Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]cell.Cell, len(row))
		for c, v := range row {
			if v != "" {
				cells[r][c] = cell.Str(v)
			}
		}
	}
	return NewGrid(cells)
}

func (g *Grid) NumberOfRows() Row       { return Row(len(g.rows)) }
func (g *Grid) NumberOfColumns() Column { return g.columns }

// Cell panics when (r, c) lies outside the grid.
func (g *Grid) Cell(r Row, c Column) cell.Cell {
	if r < 0 || r >= g.NumberOfRows() || c < 0 || c >= g.columns {
		panic(&IndexError{Row: r, Column: c, Rows: g.NumberOfRows(), Columns: g.columns})
	}
	row := g.rows[r]
	if int(c) >= len(row) {
		return cell.Empty()
	}
	return row[c]
}

// IndexError is the panic value of an out-of-range Cell access.
type IndexError struct {
	Row     Row
	Column  Column
	Rows    Row
	Columns Column
	// Window is set when the access went through a Window.
	Window bool
}

func (e *IndexError) Error() string {
	what := "cell"
	if e.Window {
		what = "window cell"
	}
	return fmt.Sprintf("sheet: %s (%d, %d) out of range %dx%d", what, int(e.Row), int(e.Column), int(e.Rows), int(e.Columns))
}

// RowCells returns a copy of row r padded to the column count.
func RowCells(s Sheet, r Row) []cell.Cell {
	n := s.NumberOfColumns()
	out := make([]cell.Cell, n)
	for c := Column(0); c < n; c++ {
		out[c] = s.Cell(r, c)
	}
	return out
}
