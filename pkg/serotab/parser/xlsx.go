package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/models"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
	"github.com/xuri/excelize/v2"
)

// NamedSheet is a sheet read from a workbook together with its name.
type NamedSheet struct {
	Name  string
	Sheet sheet.Sheet
	// Area is the print area the sheet was cropped to, if any.
	Area *models.PrintArea
}

// ReadWorkbook reads every sheet of an xlsx file, or only the sheet called
// only when it is not empty. When usePrintArea is set, sheets with a print
// area are cropped to the first one.
func ReadWorkbook(path, only string, usePrintArea bool) ([]NamedSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var printAreas map[string][]models.PrintArea
	if usePrintArea {
		printAreas, err = ExtractPrintAreas(f)
		if err != nil {
			return nil, err
		}
	}

	var result []NamedSheet
	for _, name := range f.GetSheetList() {
		if only != "" && name != only {
			continue
		}
		grid, err := SheetFromExcel(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		named := NamedSheet{Name: name, Sheet: grid}
		if areas := printAreas[name]; len(areas) > 0 {
			area := areas[0]
			named.Sheet = CropToArea(grid, area)
			named.Area = &area
		}
		result = append(result, named)
	}

	if only != "" && len(result) == 0 {
		return nil, fmt.Errorf("sheet %q not found", only)
	}
	return result, nil
}

// SheetFromExcel converts one worksheet into a Grid of typed cells.
func SheetFromExcel(f *excelize.File, sheetName string) (*sheet.Grid, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows := make([][]cell.Cell, len(raw))
	for rowIdx, row := range raw {
		rows[rowIdx] = make([]cell.Cell, len(row))
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			c, err := excelCell(f, sheetName, axis, value, date1904)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", axis, err)
			}
			rows[rowIdx][colIdx] = c
		}
	}
	return sheet.NewGrid(rows), nil
}

// excelCell classifies a raw cell value using the cell type stored in the
// workbook. Numbers shown through a date number format become dates.
func excelCell(f *excelize.File, sheetName, axis, raw string, date1904 bool) (cell.Cell, error) {
	typ, err := f.GetCellType(sheetName, axis)
	if err != nil {
		return cell.Empty(), err
	}

	switch typ {
	case excelize.CellTypeBool:
		return cell.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return cell.Err(raw), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return cell.DateOf(cell.FromTime(t)), nil
		}
		return cell.DateOf(cell.ParseDate(raw)), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return cell.Str(raw), nil
	}

	// Numbers carry no type attribute; formulas keep their cached value.
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if isDateFormatted(f, sheetName, axis) {
			return excelDate(float64(i), date1904), nil
		}
		return cell.Int(i), nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if isDateFormatted(f, sheetName, axis) {
			return excelDate(v, date1904), nil
		}
		if v == float64(int64(v)) {
			return cell.Int(int64(v)), nil
		}
		return cell.Num(v), nil
	}
	return cell.Str(raw), nil
}

// isDateFormatted reports whether the number format of the cell at axis
// displays a date.
func isDateFormatted(f *excelize.File, sheetName, axis string) bool {
	idx, err := f.GetCellStyle(sheetName, axis)
	if err != nil || idx == 0 {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat covers the built-in number formats that show a date,
// including the locale specific ones.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code has year or day
// tokens outside quoted text and bracketed sections.
func isDateFormatCode(code string) bool {
	var plain strings.Builder
	inQuote, inBracket := false, false
	for _, ch := range code {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			plain.WriteRune(ch)
		}
	}
	lower := strings.ToLower(plain.String())
	return strings.ContainsAny(lower, "yd")
}

func excelDate(serial float64, date1904 bool) cell.Cell {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return cell.Num(serial)
	}
	return cell.DateOf(cell.FromTime(t))
}
