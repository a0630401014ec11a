package get_product

import (
	contracts "github.com/murkotick/product-catalog-manager/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns the product or domain.ErrProductNotFound.
func (h *Handler) Execute(productID int64) (*domain.Product, error) {
	return h.readModel.Find(productID)
}
