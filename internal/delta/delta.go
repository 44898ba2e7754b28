// Package delta computes per-metric changes between two analysis results,
// typically an original document and its revision. Percentages guard the
// zero-baseline case: a change from zero is reported as absolute-only.
package delta

import (
	"github.com/jeduden/prosemeter/internal/analyze"
	"github.com/jeduden/prosemeter/internal/metrics"
)

// Change is the movement of one metric between two results.
type Change struct {
	Metric   metrics.Definition
	Before   float64
	After    float64
	Absolute float64
	Percent  float64
	// PercentOK is false when the baseline is zero and a percentage
	// would be meaningless.
	PercentOK bool
}

// Compare computes the change of every given metric from before to after.
// The output order follows defs, so it is deterministic.
func Compare(before, after *analyze.Result, defs []metrics.Definition) []Change {
	changes := make([]Change, 0, len(defs))
	for _, def := range defs {
		b := def.Compute(before)
		a := def.Compute(after)
		if !b.Available || !a.Available {
			continue
		}

		c := Change{
			Metric:   def,
			Before:   b.Number,
			After:    a.Number,
			Absolute: a.Number - b.Number,
		}
		if b.Number != 0 {
			c.Percent = (a.Number - b.Number) / abs(b.Number) * 100
			c.PercentOK = true
		} else if a.Number == 0 {
			c.PercentOK = true
		}
		changes = append(changes, c)
	}
	return changes
}

func abs(n float64) float64 {
	if n < 0 {
		return -n
	}
	return n
}
