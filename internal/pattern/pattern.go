package pattern

import (
	"fmt"
	"regexp"
	"strconv"
)

// grammar: <prefix>[<lower>:<upper>], prefix limited to DNS-safe characters.
var patternExpr = regexp.MustCompile(`^([A-Za-z0-9_-]*)\[(\d+):(\d+)\]$`)

// Descriptor is the parsed form of a range pattern. It is immutable and
// safe to copy and share.
type Descriptor struct {
	// Prefix is the literal part preceding the numeric id. May be empty.
	Prefix string
	// Width is the zero-pad width, taken from the length of the lower
	// bound as written in the pattern, not from its integer value.
	Width int
	// Lower and Upper are the inclusive id bounds.
	Lower int
	Upper int
}

// Parse parses a raw pattern string like "web[01:99]".
// It returns an *InvalidPatternError when raw does not match the grammar.
// Inverted ranges (lower > upper) are accepted here and rejected by
// Allocate on first use.
func Parse(raw string) (Descriptor, error) {
	m := patternExpr.FindStringSubmatch(raw)
	if m == nil {
		return Descriptor{}, &InvalidPatternError{Pattern: raw}
	}

	lower, err := strconv.Atoi(m[2])
	if err != nil {
		return Descriptor{}, &InvalidPatternError{Pattern: raw}
	}
	upper, err := strconv.Atoi(m[3])
	if err != nil {
		return Descriptor{}, &InvalidPatternError{Pattern: raw}
	}

	return Descriptor{
		Prefix: m[1],
		Width:  len(m[2]),
		Lower:  lower,
		Upper:  upper,
	}, nil
}

// Render returns the name for id, left-padded with zeros to the
// descriptor width. Ids wider than Width render at their natural length.
func (d Descriptor) Render(id int) string {
	return fmt.Sprintf("%s%0*d", d.Prefix, d.Width, id)
}

// Match reports whether candidate conforms to the descriptor and, if so,
// returns its numeric id. A candidate conforms when it is exactly the
// prefix followed by Width decimal digits forming an id inside the
// bounds. Matching is anchored at both ends: trailing characters after
// the digit run reject the candidate.
func (d Descriptor) Match(candidate string) (int, bool) {
	if len(candidate) != len(d.Prefix)+d.Width {
		return 0, false
	}
	if candidate[:len(d.Prefix)] != d.Prefix {
		return 0, false
	}

	digits := candidate[len(d.Prefix):]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if id < d.Lower || id > d.Upper {
		return 0, false
	}
	return id, true
}
