package sheet

import "github.com/ukaji3/serotab-go/pkg/serotab/cell"

// Window is a rectangular view of another sheet, re-based at (0, 0). It is
// used to restrict extraction to a print area.
type Window struct {
	base    Sheet
	rows    Range[Row]
	columns Range[Column]
}

// NewWindow returns the view of base covering rows x columns, clipped to
// base's size.
func NewWindow(base Sheet, rows Range[Row], columns Range[Column]) *Window {
	if !rows.Valid() {
		rows = Range[Row]{}
	}
	if !columns.Valid() {
		columns = Range[Column]{}
	}
	if n := base.NumberOfRows(); rows.Second > n {
		rows.Second = n
	}
	if rows.First > rows.Second {
		rows.First = rows.Second
	}
	if n := base.NumberOfColumns(); columns.Second > n {
		columns.Second = n
	}
	if columns.First > columns.Second {
		columns.First = columns.Second
	}
	return &Window{base: base, rows: rows, columns: columns}
}

func (w *Window) NumberOfRows() Row       { return Row(w.rows.Length()) }
func (w *Window) NumberOfColumns() Column { return Column(w.columns.Length()) }

// Cell panics when (r, c) lies outside the window.
func (w *Window) Cell(r Row, c Column) cell.Cell {
	if r < 0 || r >= w.NumberOfRows() || c < 0 || c >= w.NumberOfColumns() {
		panic(&IndexError{Row: r, Column: c, Rows: w.NumberOfRows(), Columns: w.NumberOfColumns(), Window: true})
	}
	return w.base.Cell(w.rows.First+r, w.columns.First+c)
}

// Origin returns the position of the window's (0, 0) in the base sheet.
func (w *Window) Origin() Pos {
	return Pos{Row: w.rows.First, Column: w.columns.First}
}

// OriginOf returns where s's (0, 0) lies in its underlying sheet: the
// window origin for a Window, (0, 0) otherwise.
func OriginOf(s Sheet) Pos {
	if o, ok := s.(interface{ Origin() Pos }); ok {
		return o.Origin()
	}
	return Pos{}
}

// Add returns p shifted by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Column: p.Column + d.Column}
}
