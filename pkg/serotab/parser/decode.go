package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decode converts raw file content to normalised text for the CSV parser.
//
// A UTF-8 or UTF-16 byte order mark always wins. Without one the content is
// read as encodingName (any WHATWG label such as "windows-1252" or
// "iso-8859-1"; "" means UTF-8). The result is NFC normalised and line
// endings are converted to "\n".
func Decode(data []byte, encodingName string) (string, error) {
	fallback := encoding.Encoding(unicode.UTF8)
	if encodingName != "" {
		enc, err := htmlindex.Get(encodingName)
		if err != nil {
			return "", fmt.Errorf("unknown encoding %q: %w", encodingName, err)
		}
		fallback = enc
	}

	decoder := unicode.BOMOverride(fallback.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encodingName, err)
	}

	text := norm.NFC.String(string(decoded))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}
