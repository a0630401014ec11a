package domain

// NextID returns the id for the next product: one past the highest id in use,
// or 1 for an empty catalog. It is recomputed from the records every time, so
// deleting the current maximum frees that number for the next product.
func NextID(products []*Product) int64 {
	var highest int64
	for _, p := range products {
		if p.ID() > highest {
			highest = p.ID()
		}
	}
	return highest + 1
}
