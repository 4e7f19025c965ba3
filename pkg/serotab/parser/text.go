package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

// SeparatorFor picks the default separator for a file name: tab for .tsv
// and .tab files, comma otherwise.
func SeparatorFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return DefaultSeparator
	}
}

// ReadDelimited reads, decodes and parses a delimited text file. A zero
// separator selects SeparatorFor(path).
func ReadDelimited(path string, separator rune, encodingName string) (*sheet.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data, encodingName)
	if err != nil {
		return nil, err
	}

	p := NewCSVParser()
	p.Separator = separator
	if p.Separator == 0 {
		p.Separator = SeparatorFor(path)
	}
	return p.Parse(text), nil
}
