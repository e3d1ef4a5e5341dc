// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a score in the format produced by String:
//
//	"-7"                         → SimpleScore
//	"-1hard/-20soft"             → HardSoftScore
//	"0hard/-3medium/-20soft"     → HardMediumSoftScore
//
// Surrounding whitespace is ignored. Any other shape yields ErrParse.
//
// Complexity: O(len(text)).
func Parse(text string) (Score, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrParse)
	}

	parts := strings.Split(text, "/")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}

		return SimpleScore{Score: v}, nil

	case 2:
		hard, err := parseLevel(parts[0], "hard")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}
		soft, err := parseLevel(parts[1], "soft")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}

		return HardSoftScore{Hard: hard, Soft: soft}, nil

	case 3:
		hard, err := parseLevel(parts[0], "hard")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}
		medium, err := parseLevel(parts[1], "medium")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}
		soft, err := parseLevel(parts[2], "soft")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, text)
		}

		return HardMediumSoftScore{Hard: hard, Medium: medium, Soft: soft}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrParse, text)
	}
}

// parseLevel strips the level suffix and parses the remaining integer.
func parseLevel(part, suffix string) (int64, error) {
	if !strings.HasSuffix(part, suffix) {
		return 0, ErrParse
	}

	return strconv.ParseInt(strings.TrimSuffix(part, suffix), 10, 64)
}
