// Package output serialises extraction reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/models"
)

// ToJSON serialises a workbook report.
func ToJSON(wb *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serialises a single sheet report.
func SheetToJSON(s *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteText renders every sheet of wb as a fixed-width table.
func WriteText(w io.Writer, wb *models.WorkbookReport) error {
	for i := range wb.Sheets {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteSheetText(w, &wb.Sheets[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteSheetText renders one sheet report: a metadata header, then one line
// per antigen with the name and passage columns padded to the report's
// longest values.
func WriteSheetText(w io.Writer, s *models.SheetReport) error {
	var b strings.Builder

	title := s.File
	if s.Sheet != "" {
		title += " [" + s.Sheet + "]"
	}
	fmt.Fprintf(&b, "# %s\n", title)
	fmt.Fprintf(&b, "# extractor=%s", s.Extractor)
	for _, kv := range [][2]string{
		{"lab", s.Lab}, {"subtype", s.Subtype}, {"lineage", s.Lineage},
		{"assay", s.Assay}, {"rbc", s.RBC}, {"date", s.Date}, {"titers", s.TiterBlock},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&b, " %s=%s", kv[0], kv[1])
		}
	}
	b.WriteByte('\n')
	for _, warning := range s.Warnings {
		fmt.Fprintf(&b, "# warning: %s\n", warning)
	}

	nameWidth := max(s.LongestName, len("antigen"))
	passageWidth := max(s.LongestPassage, len("passage"))

	if len(s.Antigens) > 0 {
		fmt.Fprintf(&b, "%-*s  %-*s  %-10s", nameWidth, "antigen", passageWidth, "passage", "date")
		for _, serum := range s.Sera {
			fmt.Fprintf(&b, "  %s", serumLabel(serum))
		}
		b.WriteByte('\n')
	}
	for _, a := range s.Antigens {
		fmt.Fprintf(&b, "%-*s  %-*s  %-10s", nameWidth, a.Name, passageWidth, a.Passage, a.Date)
		for i, titer := range a.Titers {
			width := len(titer)
			if i < len(s.Sera) {
				width = len(serumLabel(s.Sera[i]))
			}
			fmt.Fprintf(&b, "  %*s", width, titer)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// serumLabel is the column heading of a serum: its id when known, its name
// otherwise, and the column index as a last resort.
func serumLabel(s models.Serum) string {
	switch {
	case s.SerumID != "":
		return s.SerumID
	case s.Name != "":
		return s.Name
	default:
		return fmt.Sprintf("#%d", s.Column)
	}
}
