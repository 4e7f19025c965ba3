package parser

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

func TestCSVSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{"quoted separator", "a,b,\"c,d\"\n1,2,3\n", [][]string{{"a", "b", "c,d"}, {"1", "2", "3"}}},
		{"escaped separator", "a\\,b\n", [][]string{{"a,b"}}},
		{"doubled quotes are not an escape", "\"ab\"\"cd\"\n", [][]string{{"abcd"}}},
		{"escaped quote", "\"ab\\\"cd\"\n", [][]string{{"ab\"cd"}}},
		{"quoted newline", "\"a\nb\",c\n", [][]string{{"a\nb", "c"}}},
		{"escaped newline", "a\\\nb\n", [][]string{{"a\nb"}}},
		{"escaped escape", "a\\\\b\n", [][]string{{"a\\b"}}},
		{"no trailing newline", "a,b", [][]string{{"a", "b"}}},
		{"trailing separator", "a,\n", [][]string{{"a", ""}}},
		{"blank line", "a\n\nb\n", [][]string{{"a"}, {""}, {"b"}}},
		{"ragged rows", "a\nb,c,d\n", [][]string{{"a"}, {"b", "c", "d"}}},
		{"unterminated quote keeps content", "a,\"b,c\nd", [][]string{{"a", "b,c\nd"}}},
		{"trailing escape is dropped", "a\\", [][]string{{"a"}}},
		{"empty input", "", nil},
		{"utf-8", "A/São Paulo/1/2020,MDCK1\n", [][]string{{"A/São Paulo/1/2020", "MDCK1"}}},
	}

	p := NewCSVParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Split(tt.input))
		})
	}
}

func TestCSVParseGrid(t *testing.T) {
	g := ParseCSV("a,b,\"c,d\"\n1,2,3\nx\n")

	assert.Equal(t, sheet.Row(3), g.NumberOfRows())
	assert.Equal(t, sheet.Column(3), g.NumberOfColumns())
	assert.Equal(t, cell.Str("c,d"), g.Cell(0, 2))
	assert.Equal(t, cell.Str("3"), g.Cell(1, 2), "parser output is string-typed")
	assert.True(t, cell.IsEmpty(g.Cell(2, 1)))
}

func TestCSVCustomSeparator(t *testing.T) {
	p := NewCSVParser()
	p.Separator = '\t'
	assert.Equal(t, [][]string{{"a,b", "c"}}, p.Split("a,b\tc\n"))
}

func TestCSVPlainFieldsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("plain fields split back into the same rows", prop.ForAll(
		func(rows [][]string) bool {
			var b strings.Builder
			var expected [][]string
			for _, row := range rows {
				if len(row) == 0 {
					continue
				}
				b.WriteString(strings.Join(row, ","))
				b.WriteString("\n")
				expected = append(expected, row)
			}
			got := NewCSVParser().Split(b.String())
			if len(got) != len(expected) {
				return false
			}
			for i := range got {
				if strings.Join(got[i], "\x00") != strings.Join(expected[i], "\x00") {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.SliceOf(gen.AlphaString())),
	))

	properties.TestingRun(t)
}
