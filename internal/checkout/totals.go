package checkout

import "github.com/cityroots/storefront-backend/internal/cart"

// Pricing constants. Tax is a flat GST rate applied to the subtotal; shipping
// is free above the threshold, a flat fee below it. Every surface that shows
// an amount derives it from this one formula so displays can never disagree.
const (
	TaxRate               = 0.18
	FreeShippingThreshold = 999.0
	ShippingFee           = 49.0
)

// Totals is the priced breakdown of a cart snapshot.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals prices a cart snapshot.
func ComputeTotals(c cart.Cart) Totals {
	subtotal := c.TotalPrice()
	tax := subtotal * TaxRate
	shipping := ShippingFee
	if subtotal >= FreeShippingThreshold || subtotal == 0 {
		shipping = 0
	}
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		GrandTotal: subtotal + tax + shipping,
	}
}
