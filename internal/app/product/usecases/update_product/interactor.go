package update_product

import (
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
)

// Request replaces every field of the product with the given id.
type Request struct {
	ProductID int64
	Fields    domain.Fields
}

// Interactor replaces a product in place after validation.
type Interactor struct {
	Catalog   *domain.Catalog
	Validator *domain.Validator
	Clock     clock.Clock
}

func NewInteractor(catalog *domain.Catalog, validator *domain.Validator, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:   catalog,
		Validator: validator,
		Clock:     clk,
	}
}

func (it *Interactor) Execute(req Request) (*domain.Product, error) {
	// 1. The product must exist
	if _, err := it.Catalog.Find(req.ProductID); err != nil {
		return nil, err
	}

	// 2. Validate; the product may keep its own slug
	fields := req.Fields
	fields.SuggestSlug()
	details, err := it.Validator.Validate(fields, it.Catalog.Products(), domain.Excluding(req.ProductID))
	if err != nil {
		return nil, err
	}

	// 3. Rebuild under the same id and swap it in at the same position
	product, err := domain.NewProduct(req.ProductID, details)
	if err != nil {
		return nil, err
	}
	if err := it.Catalog.Replace(product, it.Clock.Now()); err != nil {
		return nil, err
	}
	return product, nil
}
