package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation is a parsed "NdS" dice notation: Count dice with Sides faces each.
// Precondition: Count >= 1, Sides >= 2 after successful Parse.
type Notation struct {
	Raw   string // original input string
	Count int    // number of dice per roll
	Sides int    // faces per die
}

// String renders the notation in canonical "NdS" form.
func (n Notation) String() string {
	return fmt.Sprintf("%dd%d", n.Count, n.Sides)
}

// Parse parses a dice notation string into a Notation.
// Supported forms: "d20", "2d6", "3D8".
// Precondition: expr must be a non-empty string.
// Postcondition: Returns a valid Notation or a descriptive error.
func Parse(expr string) (Notation, error) {
	if expr == "" {
		return Notation{}, fmt.Errorf("dice: empty notation")
	}

	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Notation{}, fmt.Errorf("dice: missing 'd' in notation %q", raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Notation{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Notation{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	sides, err := strconv.Atoi(s[dIdx+1:])
	if err != nil {
		return Notation{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Notation{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	return Notation{Raw: raw, Count: count, Sides: sides}, nil
}
