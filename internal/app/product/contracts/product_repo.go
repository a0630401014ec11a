package contracts

import (
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// ProductRepo is the catalog file. Reads happen directly; writes are returned
// as committer operations and never applied by the repo itself.
type ProductRepo interface {
	// Load returns the stored products, or an empty list when the file is
	// missing or unreadable.
	Load() []*domain.Product

	// Read returns the stored products or the reason the file could not be
	// used: missing, unreadable or malformed.
	Read() ([]*domain.Product, error)

	// SaveOp returns the operation that overwrites the file with products.
	SaveOp(products []*domain.Product) (*committer.Op, error)
}
