// Package century holds the one rule that maps a year to its century bucket.
package century

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix is the label prefix of a century bucket directory.
const DefaultPrefix = "century-"

// ErrInvalidLabel is returned when a bucket label cannot be parsed.
var ErrInvalidLabel = errors.New("invalid century label")

// FromYear returns the century of year y, counting from 1 with no year 0:
// years 1-100 are century 1, 101-200 century 2, and so on.
func FromYear(y int) int {
	return floorDiv(y-1, 100) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// Label formats the bucket label for century n, e.g. "century-16".
func Label(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// ParseLabel extracts the century number from a label such as "century-16".
func ParseLabel(prefix, label string) (int, error) {
	rest, ok := strings.CutPrefix(label, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q lacks prefix %q", ErrInvalidLabel, label, prefix)
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	return n, nil
}
