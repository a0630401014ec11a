package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first field of a candidate product that failed
// validation. errors.Is matches both the specific reason (Err) and ErrValidation.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (got %q)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Excluding names the product whose own slug does not count as taken. A nil
// exclusion means every record counts, whatever its id.
func Excluding(id int64) *int64 {
	return &id
}

// Validator checks candidate products before they reach the catalog.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the text checks used by Validate.
func NewValidator() *Validator {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("float", func(fl validator.FieldLevel) bool {
		_, ok := parseFloat(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, ok := parseInt(fl.Field().String())
		return ok
	})
	return &Validator{validate: v}
}

// Validate runs the checks in a fixed order and stops at the first failure:
// title, slug, slug uniqueness (ignoring exclude), price, boutique price,
// old price, stock, rating. On success the parsed details are returned.
// It never touches the products it is given.
func (v *Validator) Validate(f Fields, products []*Product, exclude *int64) (Details, error) {
	if err := v.check(FieldTitle, f.Title, "notblank", ErrTitleRequired); err != nil {
		return Details{}, err
	}
	if err := v.check(FieldSlug, f.Slug, "notblank", ErrSlugRequired); err != nil {
		return Details{}, err
	}
	slug := strings.TrimSpace(f.Slug)
	if SlugTaken(products, slug, exclude) {
		return Details{}, &ValidationError{Field: FieldSlug, Value: slug, Err: ErrSlugTaken}
	}
	if err := v.check(FieldPrice, f.Price, "float", ErrPriceNotNumeric); err != nil {
		return Details{}, err
	}
	if err := v.check(FieldPriceBoutique, f.PriceBoutique, "omitempty,float", ErrPriceBoutiqueNotNumeric); err != nil {
		return Details{}, err
	}
	if err := v.check(FieldOldPrice, f.OldPrice, "omitempty,float", ErrOldPriceNotNumeric); err != nil {
		return Details{}, err
	}
	if err := v.check(FieldStock, f.Stock, "integer", ErrStockNotInteger); err != nil {
		return Details{}, err
	}
	if err := v.check(FieldRating, f.Rating, "float", ErrRatingNotNumeric); err != nil {
		return Details{}, err
	}

	price, _ := parseFloat(f.Price)
	stock, _ := parseInt(f.Stock)
	rating, _ := parseFloat(f.Rating)

	return Details{
		Slug:          slug,
		Title:         strings.TrimSpace(f.Title),
		Short:         strings.TrimSpace(f.Short),
		Category:      strings.TrimSpace(f.Category),
		Boutique:      strings.TrimSpace(f.Boutique),
		Price:         price,
		PriceBoutique: parseOptionalFloat(f.PriceBoutique),
		OldPrice:      parseOptionalFloat(f.OldPrice),
		Stock:         stock,
		Rating:        rating,
		Images:        append([]string(nil), f.Images...),
		Features:      append([]string(nil), f.Features...),
		Description:   strings.TrimSpace(f.Description),
	}, nil
}

func (v *Validator) check(field, value, tag string, reason error) error {
	if err := v.validate.Var(strings.TrimSpace(value), tag); err != nil {
		return &ValidationError{Field: field, Value: value, Err: reason}
	}
	return nil
}

// SlugTaken reports whether a product other than exclude already uses slug.
// The comparison is exact and case-sensitive.
func SlugTaken(products []*Product, slug string, exclude *int64) bool {
	for _, p := range products {
		if p.Slug() != slug {
			continue
		}
		if exclude == nil || p.ID() != *exclude {
			return true
		}
	}
	return false
}

// parseFloat accepts finite decimal or exponent notation; NaN and infinities
// cannot be written to the catalog file and are rejected.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseOptionalFloat(s string) *float64 {
	f, ok := parseFloat(s)
	if !ok {
		return nil
	}
	return &f
}
