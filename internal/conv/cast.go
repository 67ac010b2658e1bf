package conv

import (
	"fmt"
	"math"
)

// Unsigned is the set of unsigned integer types usable as key indices and
// version counters.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// MaxOf returns the largest value representable by U.
func MaxOf[U Unsigned]() U {
	return ^U(0)
}

// MaxIntOf returns the largest int that survives a round trip through U.
func MaxIntOf[U Unsigned]() int {
	if uint64(MaxOf[U]()) > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(MaxOf[U]())
}

// IntTo converts int to U safely.
func IntTo[U Unsigned](v int) (U, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (negative)", v, U(0))
	}
	if uint64(v) > uint64(MaxOf[U]()) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (too large)", v, U(0))
	}
	return U(v), nil
}

// ToInt converts U to int safely.
func ToInt[U Unsigned](v U) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

