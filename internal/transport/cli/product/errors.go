package product

import (
	"context"
	"errors"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
)

// Process exit codes of the catalog command.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitSaveFailed = 4
)

var (
	// ErrUsage marks a malformed command line.
	ErrUsage = errors.New("usage")
	// ErrSaveFailed wraps any failure to write the catalog file.
	ErrSaveFailed = errors.New("save failed")
)

// ExitCode translates domain sentinel errors into process exit codes.
// Unknown errors are treated as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch {
	case errors.Is(err, ErrSaveFailed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return ExitSaveFailed
	case errors.Is(err, domain.ErrProductNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateProductID),
		errors.Is(err, domain.ErrInvalidProductID):
		return ExitValidation
	}

	return ExitUsage
}
