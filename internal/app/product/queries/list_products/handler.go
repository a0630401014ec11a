package list_products

import (
	contracts "github.com/murkotick/product-catalog-manager/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns the products in file order.
func (h *Handler) Execute() []*domain.Product {
	return h.readModel.Products()
}

// Rows returns the display rows in file order.
func (h *Handler) Rows() []*dto.ProductRow {
	products := h.readModel.Products()
	out := make([]*dto.ProductRow, 0, len(products))
	for _, p := range products {
		out = append(out, toRow(p))
	}
	return out
}
