// Package stats computes theoretical and empirical means of dice sums.
package stats

// ExpectedSum returns the theoretical mean of the sum of dice fair dice with
// the given number of sides: each die contributes (sides+1)/2.
func ExpectedSum(dice, sides int) float64 {
	return float64(dice) * float64(sides+1) / 2.0
}

// EmpiricalMeanSum returns the mean sum recorded in a sum histogram, where
// sumCounts[i] is the number of rolls that totalled minSum+i.
//
// Precondition: rolls == sum(sumCounts) and rolls > 0. Neither is checked;
// rolls == 0 yields NaN.
func EmpiricalMeanSum(sumCounts []int64, minSum int, rolls int64) float64 {
	var acc float64
	for i, c := range sumCounts {
		acc += float64(minSum+i) * float64(c)
	}
	return acc / float64(rolls)
}
