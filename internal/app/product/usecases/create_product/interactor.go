package create_product

import (
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
)

// Request is the application-level create-product request.
type Request struct {
	Fields domain.Fields
}

// Interactor adds a validated product to the working copy.
type Interactor struct {
	Catalog   *domain.Catalog
	Validator *domain.Validator
	Clock     clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(catalog *domain.Catalog, validator *domain.Validator, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:   catalog,
		Validator: validator,
		Clock:     clk,
	}
}

// Execute validates the fields, allocates the next id and appends the
// product. On any error the catalog is left exactly as it was.
func (it *Interactor) Execute(req Request) (*domain.Product, error) {
	// 1. Fill a blank slug from the title
	fields := req.Fields
	fields.SuggestSlug()

	// 2. Validate against every existing record
	details, err := it.Validator.Validate(fields, it.Catalog.Products(), nil)
	if err != nil {
		return nil, err
	}

	// 3. Build the product under a fresh id
	product, err := domain.NewProduct(it.Catalog.NextID(), details)
	if err != nil {
		return nil, err
	}

	// 4. Append; the catalog refreshes its indices and records the event
	if err := it.Catalog.Add(product, it.Clock.Now()); err != nil {
		return nil, err
	}
	return product, nil
}
