package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLineCountArgument parses a leading line-count flag out of args and
// returns the count and the remaining operands. It accepts both the
// compact `-N` form and the separate `-n N` form; with neither present
// it returns defaultLines unchanged.
func ParseLineCountArgument(args []string, defaultLines int) (int, []string, error) {
	if len(args) == 0 {
		return defaultLines, args, nil
	}

	if args[0] == "-n" {
		if len(args) < 2 {
			return 0, nil, fmt.Errorf("missing operand for -n")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, nil, fmt.Errorf("invalid number: %s", args[1])
		}
		if n < 0 {
			return 0, nil, fmt.Errorf("negative line count: %d", n)
		}
		return n, args[2:], nil
	}

	if strings.HasPrefix(args[0], "-") && len(args[0]) > 1 {
		if n, err := strconv.Atoi(args[0][1:]); err == nil {
			if n < 0 {
				return 0, nil, fmt.Errorf("negative line count: %d", n)
			}
			return n, args[1:], nil
		}
	}

	return defaultLines, args, nil
}
