package product

import (
	"fmt"
	"strconv"
	"strings"
)

func parseProductID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: product id is required", ErrUsage)
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, args[1:])
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: product id must be a positive integer, got %q", ErrUsage, args[0])
	}
	return id, nil
}

func validateNoArgs(cmd string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd, args)
	}
	return nil
}
