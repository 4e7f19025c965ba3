package sheet

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/ukaji3/serotab-go/pkg/serotab/cell"
)

// rowFromMask builds a single-row grid: true positions hold a titer, false
// positions hold text.
func rowFromMask(mask []bool) *Grid {
	row := make([]cell.Cell, len(mask))
	for i, titer := range mask {
		if titer {
			row[i] = cell.Str("40")
		} else {
			row[i] = cell.Str("x")
		}
	}
	return NewGrid([][]cell.Cell{row})
}

// TestTiterRangeProperties checks that the returned run is made of titers,
// is maximal, and that no other run is strictly longer or equally long and
// further left.
func TestTiterRangeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("titer range is the leftmost longest run", prop.ForAll(
		func(mask []bool) bool {
			g := rowFromMask(mask)
			got := TiterRange(g, 0)

			// Reference: enumerate runs directly.
			bestFirst, bestLen := -1, 0
			for i := 0; i < len(mask); {
				if !mask[i] {
					i++
					continue
				}
				j := i
				for j < len(mask) && mask[j] {
					j++
				}
				if j-i > bestLen {
					bestFirst, bestLen = i, j-i
				}
				i = j
			}

			if bestFirst < 0 {
				return !got.Valid()
			}
			return got.Valid() && int(got.First) == bestFirst && got.Length() == bestLen
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
