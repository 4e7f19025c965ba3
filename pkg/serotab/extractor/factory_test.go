package extractor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
	"github.com/ukaji3/serotab-go/pkg/serotab/sheet"
)

func titled(title string, rows ...[]cell.Cell) *sheet.Grid {
	return sheet.NewGrid(append([][]cell.Cell{{str(title)}}, rows...))
}

var antigenRows = [][]cell.Cell{
	{blank, blank, str("A/DARWIN/6/2021"), str("A/KANSAS/14/2017")},
	{str("A/DARWIN/6/2021"), str("SIAT2"), num(1280), num(160)},
	{str("A/KANSAS/14/2017"), str("SIAT1"), num(80), str("<40")},
}

func TestFactoryCrickPRN(t *testing.T) {
	g := titled("Table 3. Antigenic analysis of influenza A(H3N2) viruses - Plaque Reduction Neutralisation (MDCK-SIAT) (2020-05-01)", antigenRows...)
	x := New(g, nil)

	assert.Equal(t, ProfileCrickPRN, x.Profile())
	assert.Equal(t, "CRICK", x.Lab())
	assert.Equal(t, "PRN", x.Assay())
	assert.Equal(t, "A(H3N2)", x.Subtype())
	assert.Equal(t, cell.Date{Year: 2020, Month: time.May, Day: 1}, x.Date())
	assert.Equal(t, "", x.RBC())

	// preprocessed by the factory
	assert.Equal(t, []sheet.Row{2, 3}, x.AntigenRows())
	c, ok := x.NameColumn()
	require.True(t, ok)
	assert.Equal(t, sheet.Column(0), c)
}

func TestFactoryPlaqueIsCaseInsensitive(t *testing.T) {
	g := titled("Table 12. Antigenic analysis of influenza A(H3N2) viruses - plaque reduction (2021-10-07)", antigenRows...)
	x := New(g, nil)

	assert.Equal(t, ProfileCrickPRN, x.Profile())
	assert.Equal(t, "2021-10-07", x.Date().String())
}

func TestFactoryCrickHI(t *testing.T) {
	rows := append([][]cell.Cell{{blank, blank, blank, str("Guinea Pig RBC")}}, antigenRows...)
	g := titled("Table 1. Antigenic analysis of influenza A(H1N1)pdm09 viruses - Haemagglutination inhibition (2019-02-14)", rows...)
	x := New(g, nil)

	assert.Equal(t, ProfileCrick, x.Profile())
	assert.Equal(t, "CRICK", x.Lab())
	assert.Equal(t, DefaultAssay, x.Assay())
	assert.Equal(t, "A(H1N1)pdm09", x.Subtype())
	assert.Equal(t, "2019-02-14", x.Date().String())
	assert.Equal(t, "guinea-pig", x.RBC())
	assert.Equal(t, "", x.Lineage(), "lineage only applies to B")
}

func TestFactoryCrickWithoutAssayPhrase(t *testing.T) {
	g := titled("Table 2. Antigenic analysis of influenza B viruses (2019-09-12)",
		[]cell.Cell{blank, str("turkey RBC"), str("Yamagata lineage")},
		[]cell.Cell{str("B/PHUKET/3073/2013"), str("E4"), num(40)},
	)
	x := New(g, nil)

	assert.Equal(t, ProfileCrick, x.Profile())
	assert.Equal(t, "B", x.Subtype())
	assert.Equal(t, "turkey", x.RBC())
	assert.Equal(t, "YAMAGATA", x.Lineage())
}

func TestFactoryGeneric(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	g := titled("HI table", antigenRows...)
	x := New(g, log)

	assert.Equal(t, ProfileGeneric, x.Profile())
	assert.Equal(t, "", x.Lab())
	assert.Equal(t, DefaultAssay, x.Assay())
	assert.False(t, x.Date().Valid())
	assert.Contains(t, x.Warnings(), "no specific extractor found")
	assert.True(t, strings.Contains(buf.String(), "no specific extractor found"))
	assert.Len(t, x.AntigenRows(), 2, "generic extractor is preprocessed too")
}

func TestFactoryEmptySheet(t *testing.T) {
	x := New(sheet.NewGrid(nil), nil)
	assert.Equal(t, ProfileGeneric, x.Profile())
	assert.Empty(t, x.AntigenRows())
}

func TestFactoryTitleNotAString(t *testing.T) {
	g := sheet.NewGrid([][]cell.Cell{{num(3)}})
	assert.Equal(t, ProfileGeneric, New(g, nil).Profile())
}

func TestCustomPhases(t *testing.T) {
	called := 0
	phases := Phases{
		NameColumn: func(x *Extractor) {
			called++
			x.nameColumn = 1
		},
	}
	x := NewWithPhases(sheet.NewGrid(antigenRows), nil, "custom", phases)
	x.Preprocess()

	assert.Equal(t, 1, called)
	c, ok := x.NameColumn()
	require.True(t, ok)
	assert.Equal(t, sheet.Column(1), c)
	assert.Equal(t, []sheet.Row{1, 2}, x.AntigenRows(), "other phases keep the base behaviour")
}
