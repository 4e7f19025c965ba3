package models

// PrintArea bounds a sheet's print area in 1-based, inclusive cell
// coordinates (rows R1..R2, columns C1..C2).
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}
