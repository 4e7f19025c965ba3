// Package parser turns raw input (delimited text or xlsx workbooks) into
// sheets of typed cells.
package parser

import (
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

// CSV parser defaults.
const (
	DefaultSeparator = ','
	DefaultQuote     = '"'
	DefaultEscape    = '\\'
)

type csvState int

const (
	stateCell csvState = iota
	stateQuoted
	stateEscaped
)

// CSVParser splits text into rows and cells with a small state machine.
//
// An escape character makes the following character literal, whatever it
// is. A quote toggles quoted mode, in which separators and newlines are
// literal. Doubled quotes have no special meaning: `"ab""cd"` reads as abcd.
// Malformed input never fails; whatever was collected is kept.
type CSVParser struct {
	Separator rune
	Quote     rune
	Escape    rune
}

// NewCSVParser returns a parser using the default separator, quote and
// escape characters.
func NewCSVParser() *CSVParser {
	return &CSVParser{Separator: DefaultSeparator, Quote: DefaultQuote, Escape: DefaultEscape}
}

// Split parses text into rows of raw cell strings.
func (p *CSVParser) Split(text string) [][]string {
	var (
		rows    [][]string
		row     []string
		current strings.Builder
		states  = []csvState{stateCell}
	)
	top := func() csvState { return states[len(states)-1] }
	push := func(s csvState) { states = append(states, s) }
	pop := func() {
		if len(states) > 1 {
			states = states[:len(states)-1]
		}
	}
	finishCell := func() {
		row = append(row, current.String())
		current.Reset()
	}

	for _, ch := range text {
		if top() == stateEscaped {
			current.WriteRune(ch)
			pop()
			continue
		}
		switch ch {
		case p.Separator:
			if top() == stateQuoted {
				current.WriteRune(ch)
			} else {
				finishCell()
			}
		case '\n':
			if top() == stateQuoted {
				current.WriteRune(ch)
			} else {
				finishCell()
				rows = append(rows, row)
				row = nil
			}
		case p.Quote:
			if top() == stateQuoted {
				pop()
			} else {
				push(stateQuoted)
			}
		case p.Escape:
			push(stateEscaped)
		default:
			current.WriteRune(ch)
		}
	}

	// Input not ending with a newline leaves a pending row.
	if current.Len() > 0 || len(row) > 0 {
		finishCell()
		rows = append(rows, row)
	}
	return rows
}

// Parse parses text into a Grid of string cells. Empty fields become empty
// cells. The column count is the longest row.
func (p *CSVParser) Parse(text string) *sheet.Grid {
	raw := p.Split(text)
	rows := make([][]cell.Cell, len(raw))
	for r, fields := range raw {
		rows[r] = make([]cell.Cell, len(fields))
		for c, field := range fields {
			if field != "" {
				rows[r][c] = cell.Str(field)
			}
		}
	}
	return sheet.NewGrid(rows)
}

// ParseCSV parses text with the default settings.
func ParseCSV(text string) *sheet.Grid {
	return NewCSVParser().Parse(text)
}
