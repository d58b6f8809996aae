// Package report writes the text report for a completed simulation.
package report

import (
	"fmt"
	"io"

	"github.com/cory-johannsen/dicesim/internal/histogram"
	"github.com/cory-johannsen/dicesim/internal/sim"
	"github.com/cory-johannsen/dicesim/internal/stats"
)

// Write prints the face histogram, the sum histogram and the mean comparison
// for res, which must be the result of running p. Sum rows are labelled by
// offset k, where row k counts rolls totalling MinSum+k.
//
// Precondition: p.Validate() == nil; res satisfies the sim.Result invariants for p.
// Postcondition: Returns the first write error, if any.
func Write(w io.Writer, p sim.Params, res sim.Result) error {
	ew := &errWriter{w: w}

	ew.printf("Rolling %dd%d for %d times...\n\n", p.Dice, p.Sides, p.Rolls)

	ew.printf("-- Face frequencies (aggregated across all dice) --\n")
	if ew.err == nil {
		ew.err = histogram.Write(w, res.FaceCounts,
			histogram.Labeled(histogram.FaceLabels(p.Sides)), p.Rolls*int64(p.Dice))
	}

	ew.printf("\n-- Sum of %d dice (%d..=%d, k = sum - %d) --\n", p.Dice, res.MinSum, res.MaxSum, res.MinSum)
	if ew.err == nil {
		ew.err = histogram.Write(w, res.SumCounts,
			histogram.Indexed(), p.Rolls)
	}

	ew.printf("\nTheoretical mean sum: %.4f\n", stats.ExpectedSum(p.Dice, p.Sides))
	ew.printf("Empirical mean sum  : %.4f\n", stats.EmpiricalMeanSum(res.SumCounts, res.MinSum, p.Rolls))

	if ew.err != nil {
		return fmt.Errorf("writing report: %w", ew.err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
