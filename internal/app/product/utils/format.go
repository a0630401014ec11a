package utils

import (
	"fmt"
	"strconv"
)

// FormatPrice renders a price with two decimals, as in the product list.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatNumber renders a number in its shortest form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatOptional renders an optional number in its shortest form, or "" when nil.
func FormatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatNumber(*v)
}
