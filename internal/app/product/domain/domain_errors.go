package domain

import "errors"

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductID indicates an identifier below 1.
	ErrInvalidProductID = errors.New("product id must be positive")

	// ErrDuplicateProductID indicates an attempt to add a product whose id is already in the catalog.
	ErrDuplicateProductID = errors.New("product id already exists")
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// Validation reasons, reported in the order they are checked.
var (
	// ErrTitleRequired indicates a blank title.
	ErrTitleRequired = errors.New("title is required")

	// ErrSlugRequired indicates a blank slug that could not be derived from the title.
	ErrSlugRequired = errors.New("slug is required")

	// ErrSlugTaken indicates the slug belongs to another product.
	ErrSlugTaken = errors.New("slug already exists")

	// ErrPriceNotNumeric indicates the price does not parse as a number.
	ErrPriceNotNumeric = errors.New("price not numeric")

	// ErrPriceBoutiqueNotNumeric indicates a non-blank boutique price that does not parse as a number.
	ErrPriceBoutiqueNotNumeric = errors.New("boutique price not numeric")

	// ErrOldPriceNotNumeric indicates a non-blank old price that does not parse as a number.
	ErrOldPriceNotNumeric = errors.New("old price not numeric")

	// ErrStockNotInteger indicates the stock does not parse as an integer.
	ErrStockNotInteger = errors.New("stock not an integer")

	// ErrRatingNotNumeric indicates the rating does not parse as a number.
	ErrRatingNotNumeric = errors.New("rating not numeric")
)
