package list_products

import (
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/dto"
	"github.com/murkotick/product-catalog-manager/internal/app/product/utils"
)

func toRow(p *domain.Product) *dto.ProductRow {
	return &dto.ProductRow{
		ID:            p.ID(),
		Title:         p.Title(),
		Category:      p.Category(),
		Boutique:      p.Boutique(),
		Price:         utils.FormatPrice(p.Price()),
		PriceBoutique: utils.FormatOptional(p.PriceBoutique()),
		OldPrice:      utils.FormatOptional(p.OldPrice()),
		Stock:         p.Stock(),
	}
}
