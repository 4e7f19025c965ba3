// Package models defines the report structures produced by extraction.
package models

// Antigen is one antigen row of a report.
type Antigen struct {
	// Row is the row index in the sheet (0-based).
	Row int `json:"row"`
	// Name is the antigen name, empty when no name column was found.
	Name string `json:"name"`
	// Date is the collection date (ISO when parseable).
	Date string `json:"date,omitempty"`
	// Passage is the passage annotation.
	Passage string `json:"passage,omitempty"`
	// Titers holds one value per titer column, in column order.
	Titers []string `json:"titers,omitempty"`
	// Cells is the raw row rendered as text (verbose mode only).
	Cells []string `json:"cells,omitempty"`
}

// Serum describes one titer column.
type Serum struct {
	// Column is the column index in the sheet (0-based).
	Column int `json:"column"`
	// Name is the header text found above the antigen rows.
	Name string `json:"name,omitempty"`
	// Passage is the serum passage annotation, when the header carries one.
	Passage string `json:"passage,omitempty"`
	// SerumID is the serum identifier, e.g. F12/20.
	SerumID string `json:"serum_id,omitempty"`
}
