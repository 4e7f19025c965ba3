package models

// WorkbookReport is the extraction result for one input file.
type WorkbookReport struct {
	// BookName is the input file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds one report per extracted sheet, in workbook order.
	Sheets []SheetReport `json:"sheets"`
}
