package dto

// ProductRow is one line of the product list shown under the entry form.
// Prices are preformatted; optional prices are empty when unset.
type ProductRow struct {
	ID            int64
	Title         string
	Category      string
	Boutique      string
	Price         string
	PriceBoutique string
	OldPrice      string
	Stock         int
}
