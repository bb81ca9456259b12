package vocset

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ParseLabelset converts a labelset value, as extracted from a
// configuration file by an external layer, into a sorted set of label
// tokens.
//
// A plain string is split into single-character labels: "abc" yields
// ["a" "b" "c"]. A string starting with "range:" is expanded as a
// comma-separated list of integers and integer ranges:
//
//	ParseLabelset("range: 1-3, 5")  // ["1" "2" "3" "5"]
//	ParseLabelset("1235")           // ["1" "2" "3" "5"]
func ParseLabelset(value string) ([]string, error) {
	set := make(map[string]struct{})

	if rest, ok := strings.CutPrefix(value, "range:"); ok {
		if err := expandRange(rest, set); err != nil {
			return nil, err
		}
	} else {
		for _, r := range value {
			if unicode.IsSpace(r) {
				continue
			}
			set[string(r)] = struct{}{}
		}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("empty labelset %q", value)
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// expandRange parses a comma-separated list of integers and integer ranges
// such as "1-3, 5" into string label tokens.
func expandRange(value string, set map[string]struct{}) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("invalid labelset element %q: %w", part, err)
			}
			set[strconv.Itoa(n)] = struct{}{}
			continue
		}

		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return fmt.Errorf("invalid labelset range %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return fmt.Errorf("invalid labelset range %q: %w", part, err)
		}
		if end < start {
			return fmt.Errorf("invalid labelset range %q: end before start", part)
		}

		for n := start; n <= end; n++ {
			set[strconv.Itoa(n)] = struct{}{}
		}
	}
	return nil
}
