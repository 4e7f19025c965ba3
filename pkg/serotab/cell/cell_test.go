package cell

import (
	"testing"
	"time"
)

func TestPredicates(t *testing.T) {
	d := DateOf(Date{Year: 2020, Month: time.May, Day: 1})
	tests := []struct {
		name     string
		c        Cell
		empty    bool
		date     bool
		str      bool
		maybeTit bool
	}{
		{"empty", Empty(), true, false, false, false},
		{"error", Err("#N/A"), false, false, false, false},
		{"bool", Bool(true), false, false, false, false},
		{"string", Str("A/TEXAS/50/2012"), false, false, true, false},
		{"string titer", Str("<10"), false, false, true, true},
		{"number", Num(2.5), false, false, false, true},
		{"integer", Int(40), false, false, false, true},
		{"date", d, false, true, false, false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.c); got != tt.empty {
			t.Errorf("%s: IsEmpty = %v, expected %v", tt.name, got, tt.empty)
		}
		if got := IsDate(tt.c); got != tt.date {
			t.Errorf("%s: IsDate = %v, expected %v", tt.name, got, tt.date)
		}
		if got := IsString(tt.c); got != tt.str {
			t.Errorf("%s: IsString = %v, expected %v", tt.name, got, tt.str)
		}
		if got := MaybeTiter(tt.c); got != tt.maybeTit {
			t.Errorf("%s: MaybeTiter = %v, expected %v", tt.name, got, tt.maybeTit)
		}
	}
}

func TestMaybeTiterStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"40", true},
		{"<10", true},
		{">1280", true},
		{"1280", true},
		{"", false},
		{"<", false},
		{"<<10", false},
		{"40 ", false},
		{"10.5", false},
		{"*", false},
		{"<10a", false},
	}

	for _, tt := range tests {
		if got := MaybeTiter(Str(tt.input)); got != tt.expected {
			t.Errorf("MaybeTiter(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var c Cell
	if !IsEmpty(c) {
		t.Errorf("zero Cell should be empty, got kind %s", c.Kind())
	}
	if c.String() != "" {
		t.Errorf("empty cell renders as %q", c.String())
	}
}

func TestAccessorsOnOtherKinds(t *testing.T) {
	s := Str("40")
	if got := s.Float(); got != 0 {
		t.Errorf("Str.Float() = %v, expected 0", got)
	}
	if got := s.Integer(); got != 0 {
		t.Errorf("Str.Integer() = %v, expected 0", got)
	}
	if got := s.Boolean(); got {
		t.Errorf("Str.Boolean() = %v, expected false", got)
	}
	if got := s.Date(); got != InvalidDate {
		t.Errorf("Str.Date() = %v, expected the zero Date", got)
	}
	if got := Int(40).Integer(); got != 40 {
		t.Errorf("Int(40).Integer() = %v, expected 40", got)
	}
	if got := Bool(true).Boolean(); !got {
		t.Errorf("Bool(true).Boolean() = %v, expected true", got)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		c        Cell
		expected string
	}{
		{Str("MDCK1"), "MDCK1"},
		{Int(-40), "-40"},
		{Num(2.5), "2.5"},
		{Bool(false), "false"},
		{Err("#REF!"), "#REF!"},
		{DateOf(Date{Year: 2019, Month: time.December, Day: 3}), "2019-12-03"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2020-05-01", "2020-05-01"},
		{"01/05/2020", "2020-05-01"},
		{"1/5/2020", "2020-05-01"},
		{"2020/05/01", "2020-05-01"},
		{"1 May 2020", "2020-05-01"},
		{"01-May-20", "2020-05-01"},
		{"May 1, 2020", "2020-05-01"},
		{" 2020-05-01 ", "2020-05-01"},
		{"2020-02-30", ""},
		{"MDCK1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		d := ParseDate(tt.input)
		if got := d.String(); got != tt.expected {
			t.Errorf("ParseDate(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
		if (tt.expected != "") != d.Valid() {
			t.Errorf("ParseDate(%q).Valid() = %v", tt.input, d.Valid())
		}
	}
}

func TestInvalidDate(t *testing.T) {
	if InvalidDate.Valid() {
		t.Error("InvalidDate must not be valid")
	}
	if (Date{Year: 2021, Month: time.February, Day: 29}).Valid() {
		t.Error("2021-02-29 must not be valid")
	}
}
