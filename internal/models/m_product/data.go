package m_product

import (
	"bytes"
	"errors"

	"github.com/murkotick/product-catalog-manager/internal/pkg/codec"
)

// ErrEmptyFile is returned by Decode for a file with no content.
var ErrEmptyFile = errors.New("catalog file is empty")

// Record is one product object as stored in the catalog file. Optional
// prices are pointers so an unset value is written as null, not omitted.
type Record struct {
	ID            int64    `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Short         string   `json:"short"`
	Category      string   `json:"category"`
	Boutique      string   `json:"boutique"`
	Price         float64  `json:"price"`
	PriceBoutique *float64 `json:"priceBoutique"`
	OldPrice      *float64 `json:"oldPrice"`
	Stock         int      `json:"stock"`
	Rating        float64  `json:"rating"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	Description   string   `json:"description"`
}

// Decode parses a catalog file: a JSON array of product objects.
func Decode(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}
	var records []Record
	if err := codec.JSON.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Encode serializes the full catalog as an indented JSON array. Nil lists
// are written as [] so every record carries every key with a stable type.
func Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	for i := range records {
		if records[i].Images == nil {
			records[i].Images = []string{}
		}
		if records[i].Features == nil {
			records[i].Features = []string{}
		}
	}
	return codec.JSON.MarshalIndent(records, "", codec.Indent)
}
