package detector

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RangeSatisfies reports whether a declared npm-style version range is
// compatible with a required range. The declared range is reduced to its
// floor (the smallest concrete version it can resolve to), which is then
// checked against the required constraint. Malformed input on either side
// fails closed: the result is false, never an error.
func RangeSatisfies(declared, required string) bool {
	constraint, err := semver.NewConstraint(required)
	if err != nil {
		return false
	}

	floor, err := floorVersion(declared)
	if err != nil {
		return false
	}

	return constraint.Check(floor)
}

// floorVersion computes the minimum resolvable version of an npm-style range.
// Alternatives separated by "||" contribute their own floors; the smallest
// wins. Any malformed alternative invalidates the whole range.
func floorVersion(declared string) (*semver.Version, error) {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return semver.New(0, 0, 0, "", ""), nil
	}

	var floor *semver.Version
	for _, alt := range strings.Split(declared, "||") {
		v, err := comparatorSetFloor(alt)
		if err != nil {
			return nil, err
		}
		if floor == nil || v.LessThan(floor) {
			floor = v
		}
	}
	return floor, nil
}

// comparatorSetFloor computes the floor of one space-separated comparator set
// (e.g. ">=1.2.3 <2.0.0"). All comparators must hold at once, so the floor is
// the highest lower bound; upper bounds never raise it.
func comparatorSetFloor(alt string) (*semver.Version, error) {
	alt = strings.TrimSpace(alt)
	if alt == "" || isWildcard(alt) {
		return semver.New(0, 0, 0, "", ""), nil
	}

	// Hyphen ranges are inclusive on the left: "1.2.3 - 2.0.0" floors at 1.2.3.
	if low, _, ok := strings.Cut(alt, " - "); ok {
		return coerceVersion(low)
	}

	fields := strings.Fields(alt)

	var floor *semver.Version
	for i := 0; i < len(fields); i++ {
		op, rest := splitOperator(fields[i])
		// npm tolerates whitespace between an operator and its version
		// ("<= 2.0.0" means "<=2.0.0"); rejoin the split pair.
		if op != "" && rest == "" {
			i++
			if i == len(fields) {
				return nil, fmt.Errorf("dangling operator %q", op)
			}
			rest = fields[i]
		}
		if op == "<" || op == "<=" {
			continue
		}

		v, err := coerceVersion(rest)
		if err != nil {
			return nil, err
		}
		if op == ">" {
			// Exclusive lower bound: the first admissible version is one patch up.
			bumped := v.IncPatch()
			v = &bumped
		}
		if floor == nil || v.GreaterThan(floor) {
			floor = v
		}
	}

	if floor == nil {
		// Only upper bounds were given; everything from 0.0.0 upward qualifies.
		return semver.New(0, 0, 0, "", ""), nil
	}
	return floor, nil
}

// splitOperator strips a leading range operator from a comparator.
func splitOperator(comp string) (op, rest string) {
	for _, candidate := range []string{">=", "<=", ">", "<", "=", "^", "~"} {
		if strings.HasPrefix(comp, candidate) {
			return candidate, comp[len(candidate):]
		}
	}
	return "", comp
}

// coerceVersion parses a version literal, tolerating the partial and
// wildcard forms npm ranges allow ("16", "16.2", "16.x", "1.2.*").
func coerceVersion(s string) (*semver.Version, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "v"))
	if s == "" || isWildcard(s) {
		return semver.New(0, 0, 0, "", ""), nil
	}

	if v, err := semver.NewVersion(s); err == nil {
		return v, nil
	}

	// Substitute wildcard segments ("16.x" -> "16.0") and retry.
	parts := strings.Split(s, ".")
	for i, part := range parts {
		if isWildcard(part) {
			parts[i] = "0"
		}
	}
	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, fmt.Errorf("unparseable version %q: %w", s, err)
	}
	return v, nil
}

func isWildcard(s string) bool {
	return s == "*" || s == "x" || s == "X"
}
