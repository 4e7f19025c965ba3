package sheet

import (
	"math"
	"strconv"
)

// Row is a 0-based row index.
type Row int

// Column is a 0-based column index.
type Column int

// InvalidRow and InvalidColumn mark an unset index. They are never valid
// positions and never advance.
const (
	InvalidRow    Row    = math.MaxInt
	InvalidColumn Column = math.MaxInt
)

// Valid reports whether r is not the sentinel.
func (r Row) Valid() bool { return r != InvalidRow }

// Valid reports whether c is not the sentinel.
func (c Column) Valid() bool { return c != InvalidColumn }

// Next returns the following row, or InvalidRow if r is unset.
func (r Row) Next() Row {
	if !r.Valid() {
		return InvalidRow
	}
	return r + 1
}

// Next returns the following column, or InvalidColumn if c is unset.
func (c Column) Next() Column {
	if !c.Valid() {
		return InvalidColumn
	}
	return c + 1
}

func (r Row) String() string {
	if !r.Valid() {
		return "row:unset"
	}
	return "row:" + strconv.Itoa(int(r))
}

func (c Column) String() string {
	if !c.Valid() {
		return "col:unset"
	}
	return "col:" + strconv.Itoa(int(c))
}

// Index is the set of index types a Range can span.
type Index interface {
	Row | Column
}

// Range is the half-open interval [First, Second). A Range whose First is
// the sentinel means "not found".
type Range[I Index] struct {
	First  I
	Second I
}

// InvalidRange returns the "not found" range.
func InvalidRange[I Index]() Range[I] {
	return Range[I]{First: I(math.MaxInt), Second: I(math.MaxInt)}
}

// Valid reports whether the range denotes a found interval.
func (r Range[I]) Valid() bool {
	return r.First != I(math.MaxInt) && r.First <= r.Second
}

// Length is Second-First for a valid range and 0 otherwise.
func (r Range[I]) Length() int {
	if !r.Valid() {
		return 0
	}
	return int(r.Second - r.First)
}

// Contains reports whether idx falls inside a valid range.
func (r Range[I]) Contains(idx I) bool {
	return r.Valid() && idx >= r.First && idx < r.Second
}

// Each calls fn for every index of a valid range in ascending order.
func (r Range[I]) Each(fn func(I)) {
	if !r.Valid() {
		return
	}
	for i := r.First; i < r.Second; i++ {
		fn(i)
	}
}
