// Package cell defines the typed cell value shared by every sheet source.
package cell

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind identifies the active variant of a Cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindError
	KindBoolean
	KindString
	KindNumber
	KindInteger
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	default:
		panic(fmt.Sprintf("cell: unknown kind %d", uint8(k)))
	}
}

// Cell is a closed variant: exactly one of the payload fields is meaningful,
// selected by Kind. The zero value is an empty cell.
type Cell struct {
	kind Kind
	text string // String and Error
	num  float64
	i    int64
	b    bool
	date Date
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Err returns an error cell carrying the source's error text (e.g. "#N/A").
func Err(text string) Cell { return Cell{kind: KindError, text: text} }

// Bool returns a boolean cell.
func Bool(v bool) Cell { return Cell{kind: KindBoolean, b: v} }

// Str returns a string cell.
func Str(s string) Cell { return Cell{kind: KindString, text: s} }

// Num returns a floating point cell.
func Num(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// Int returns an integer cell.
func Int(v int64) Cell { return Cell{kind: KindInteger, i: v} }

// DateOf returns a date cell.
func DateOf(d Date) Cell { return Cell{kind: KindDate, date: d} }

// Kind reports the active variant.
func (c Cell) Kind() Kind { return c.kind }

// Text returns the payload of a String or Error cell, "" otherwise.
func (c Cell) Text() string {
	if c.kind == KindString || c.kind == KindError {
		return c.text
	}
	return ""
}

// Float returns the value of a KindNumber cell and 0 for any other kind.
func (c Cell) Float() float64 { return c.num }

// Integer returns the value of a KindInteger cell and 0 for any other kind.
func (c Cell) Integer() int64 { return c.i }

// Boolean returns the value of a KindBoolean cell and false for any other kind.
func (c Cell) Boolean() bool { return c.b }

// Date returns the value of a KindDate cell and the zero Date for any other
// kind.
func (c Cell) Date() Date { return c.date }

// String renders the cell value the way it would appear in a report.
func (c Cell) String() string {
	switch c.kind {
	case KindEmpty:
		return ""
	case KindError, KindString:
		return c.text
	case KindBoolean:
		return strconv.FormatBool(c.b)
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindInteger:
		return strconv.FormatInt(c.i, 10)
	case KindDate:
		return c.date.String()
	default:
		panic(fmt.Sprintf("cell: unknown kind %d", uint8(c.kind)))
	}
}

// IsEmpty reports whether c is the Empty variant.
func IsEmpty(c Cell) bool { return c.kind == KindEmpty }

// IsDate reports whether c is the Date variant.
func IsDate(c Cell) bool { return c.kind == KindDate }

// IsString reports whether c is the String variant.
func IsString(c Cell) bool { return c.kind == KindString }

// titerRe accepts values such as "40", "<10", ">1280".
var titerRe = regexp.MustCompile(`^[<>]?\d+$`)

// MaybeTiter reports whether c looks like a titer value. Numbers always do,
// strings must be an optional < or > followed by digits. This approves
// plausible values, not only valid ones.
func MaybeTiter(c Cell) bool {
	switch c.kind {
	case KindNumber, KindInteger:
		return true
	case KindString:
		return titerRe.MatchString(c.text)
	case KindEmpty, KindError, KindBoolean, KindDate:
		return false
	default:
		panic(fmt.Sprintf("cell: unknown kind %d", uint8(c.kind)))
	}
}
