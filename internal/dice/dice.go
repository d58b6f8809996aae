// Package dice provides the randomness abstraction and single-die draws used
// by the simulator.
package dice

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Roll draws one face of a fair die with the given number of sides.
//
// Precondition: sides >= 1; src must be non-nil.
// Postcondition: 1 <= result <= sides.
func Roll(src Source, sides int) int {
	return src.Intn(sides) + 1
}
