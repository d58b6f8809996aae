// Package sim runs repeated dice-roll simulations and tabulates per-face and
// per-sum frequency distributions.
package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cory-johannsen/dicesim/internal/dice"
)

// Upper bounds on simulation parameters. Each count table is allocated up
// front, so MaxSides and MaxSumRange bound memory at 128 MiB per table.
const (
	// MaxSides is the largest accepted number of faces per die.
	MaxSides = 1 << 24
	// MaxSumRange is the largest accepted number of distinct sums,
	// dice*(sides-1)+1.
	MaxSumRange = 1 << 24
)

// Params describes one simulation run.
type Params struct {
	// Sides is the number of faces on each die.
	Sides int
	// Dice is the number of dice thrown per roll.
	Dice int
	// Rolls is the number of rolls to simulate.
	Rolls int64
}

// Validate checks the parameter invariants.
//
// Postcondition: Returns nil if 2 <= sides <= MaxSides, dice >= 1, rolls >= 1,
// dice*sides fits in an int, the number of distinct sums is at most MaxSumRange
// and rolls*dice fits in an int64; otherwise an error describing all violations.
func (p Params) Validate() error {
	var errs []string
	if p.Sides < 2 {
		errs = append(errs, fmt.Sprintf("sides must be >= 2, got %d", p.Sides))
	}
	if p.Sides > MaxSides {
		errs = append(errs, fmt.Sprintf("sides must be <= %d, got %d", MaxSides, p.Sides))
	}
	if p.Dice < 1 {
		errs = append(errs, fmt.Sprintf("dice must be >= 1, got %d", p.Dice))
	}
	if p.Rolls < 1 {
		errs = append(errs, fmt.Sprintf("rolls must be >= 1, got %d", p.Rolls))
	}
	if p.Sides >= 2 && p.Dice >= 1 {
		switch {
		case p.Dice > math.MaxInt/p.Sides:
			errs = append(errs, fmt.Sprintf("dice*sides overflows: %d x %d", p.Dice, p.Sides))
		case p.Dice > (MaxSumRange-1)/(p.Sides-1):
			errs = append(errs, fmt.Sprintf("dice*(sides-1)+1 must be <= %d distinct sums, got %dd%d", MaxSumRange, p.Dice, p.Sides))
		}
		if p.Rolls >= 1 && p.Rolls > math.MaxInt64/int64(p.Dice) {
			errs = append(errs, fmt.Sprintf("rolls*dice overflows: %d x %d", p.Rolls, p.Dice))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// MinSum is the smallest achievable sum of one roll.
func (p Params) MinSum() int { return p.Dice }

// MaxSum is the largest achievable sum of one roll.
func (p Params) MaxSum() int { return p.Dice * p.Sides }

// String renders the parameters as "NdS x rolls".
func (p Params) String() string {
	return fmt.Sprintf("%dd%d x %d", p.Dice, p.Sides, p.Rolls)
}

// Result holds the frequency tables produced by one simulation run.
//
// Invariants:
//
//	len(FaceCounts) == sides
//	len(SumCounts) == MaxSum - MinSum + 1
//	sum(FaceCounts) == rolls * dice
//	sum(SumCounts) == rolls
type Result struct {
	// FaceCounts[i] is how often face i+1 appeared across all dice.
	FaceCounts []int64
	// SumCounts[i] is how many rolls totalled MinSum+i.
	SumCounts []int64
	MinSum    int
	MaxSum    int
}

// Run simulates p.Rolls rolls of p.Dice dice with p.Sides sides, drawing every
// face from src.
//
// Precondition: p.Validate() == nil; src must be non-nil. Panics otherwise.
// Postcondition: the returned Result satisfies all Result invariants.
func Run(p Params, src dice.Source) Result {
	if err := p.Validate(); err != nil {
		panic("sim: Run precondition violated: " + err.Error())
	}
	if src == nil {
		panic("sim: Run precondition violated: src must be non-nil")
	}

	minSum, maxSum := p.MinSum(), p.MaxSum()
	faceCounts := make([]int64, p.Sides)
	sumCounts := make([]int64, maxSum-minSum+1)

	for r := int64(0); r < p.Rolls; r++ {
		sum := 0
		for d := 0; d < p.Dice; d++ {
			face := dice.Roll(src, p.Sides)
			sum += face
			faceCounts[face-1]++
		}
		sumCounts[sum-minSum]++
	}

	return Result{
		FaceCounts: faceCounts,
		SumCounts:  sumCounts,
		MinSum:     minSum,
		MaxSum:     maxSum,
	}
}
