package models

// Columns holds the detected column indexes (0-based, relative to the
// extracted sheet, i.e. the print area when cropped); nil means not found.
type Columns struct {
	Name    *int `json:"name"`
	Date    *int `json:"date"`
	Passage *int `json:"passage"`
	// TiterFirst and TiterLast bound the titer block (inclusive).
	TiterFirst *int `json:"titer_first"`
	TiterLast  *int `json:"titer_last"`
}

// SheetReport represents the structure extracted from a single sheet.
type SheetReport struct {
	// File is the input file name (no path).
	File string `json:"file"`
	// Sheet is the sheet name, empty for delimited text input.
	Sheet string `json:"sheet,omitempty"`
	// RunID identifies the batch run that produced the report.
	RunID string `json:"run_id,omitempty"`
	// Extractor names the lab profile used (generic, crick, crick-prn).
	Extractor string `json:"extractor"`

	Lab     string `json:"lab,omitempty"`
	Subtype string `json:"subtype,omitempty"`
	Lineage string `json:"lineage,omitempty"`
	Assay   string `json:"assay"`
	RBC     string `json:"rbc,omitempty"`
	Date    string `json:"date,omitempty"`

	Columns Columns `json:"columns"`
	// TiterBlock is the A1 range of the titer values in the workbook sheet.
	TiterBlock string `json:"titer_block,omitempty"`
	// LongestName and LongestPassage size fixed-width renderings.
	LongestName    int `json:"longest_name"`
	LongestPassage int `json:"longest_passage"`

	Sera     []Serum   `json:"sera,omitempty"`
	Antigens []Antigen `json:"antigens,omitempty"`
	// AntigenRows lists the antigen row indexes (light mode).
	AntigenRows []int `json:"antigen_rows,omitempty"`

	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintArea is set when the sheet was cropped to a print area.
	PrintArea *PrintArea `json:"print_area,omitempty"`
	// Warnings carries the structural diagnostics raised during extraction.
	Warnings []string `json:"warnings,omitempty"`
}
