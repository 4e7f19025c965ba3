package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		expected string
	}{
		{"utf-8 bom and crlf", []byte("\xef\xbb\xbfa,b\r\nc\r\n"), "", "a,b\nc\n"},
		{"bare cr", []byte("a\rb\r"), "", "a\nb\n"},
		{"windows-1252 accent", []byte{'L', 'i', 0xe8, 'g', 'e'}, "windows-1252", "Liège"},
		{"utf-16le bom", []byte{0xff, 0xfe, 'a', 0, ',', 0, 'b', 0}, "", "a,b"},
		{"nfc", []byte("Sa\u0303o"), "", "S\u00e3o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("a"), "no-such-encoding")
	assert.Error(t, err)
}

func TestReadDelimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\tc\r\n1\t2\r\n"), 0644))

	g, err := ReadDelimited(path, 0, "")
	require.NoError(t, err)
	assert.Equal(t, sheet.Row(2), g.NumberOfRows())
	assert.Equal(t, "a,b", g.Cell(0, 0).Text())
	assert.Equal(t, "2", g.Cell(1, 1).Text())

	_, err = ReadDelimited(filepath.Join(dir, "missing.csv"), 0, "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeparatorFor(t *testing.T) {
	assert.Equal(t, '\t', SeparatorFor("x.TSV"))
	assert.Equal(t, '\t', SeparatorFor("x.tab"))
	assert.Equal(t, ',', SeparatorFor("x.csv"))
	assert.Equal(t, ',', SeparatorFor("x.txt"))
}
