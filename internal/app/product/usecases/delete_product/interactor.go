package delete_product

import (
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
)

type Request struct {
	ProductID int64
}

type Interactor struct {
	Catalog *domain.Catalog
	Clock   clock.Clock
}

func NewInteractor(catalog *domain.Catalog, clk clock.Clock) *Interactor {
	return &Interactor{Catalog: catalog, Clock: clk}
}

// Execute removes the product. Deleting an unknown id is not an error; the
// result tells whether a record was actually removed.
func (it *Interactor) Execute(req Request) bool {
	return it.Catalog.Remove(req.ProductID, it.Clock.Now())
}
