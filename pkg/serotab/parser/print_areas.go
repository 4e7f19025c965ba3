package parser

import (
	"strings"

	"github.com/ukaji3/serotab-go/pkg/serotab/models"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// CropToArea returns the part of s covered by area.
func CropToArea(s sheet.Sheet, area models.PrintArea) *sheet.Window {
	rows := sheet.Range[sheet.Row]{First: sheet.Row(area.R1 - 1), Second: sheet.Row(area.R2)}
	cols := sheet.Range[sheet.Column]{First: sheet.Column(area.C1 - 1), Second: sheet.Column(area.C2)}
	return sheet.NewWindow(s, rows, cols)
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		areas     []models.PrintArea
		sheetName string
	)
	ref = strings.TrimPrefix(ref, "=")

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		name := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = name
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10. A single cell
// reference yields a one-cell area.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}
