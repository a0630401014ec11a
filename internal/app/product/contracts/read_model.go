package contracts

import "github.com/murkotick/product-catalog-manager/internal/app/product/domain"

// ReadModel is the read side of the working copy.
type ReadModel interface {
	Find(id int64) (*domain.Product, error)
	Products() []*domain.Product
}
