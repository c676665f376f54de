package cart

import (
	"encoding/json"

	"github.com/cityroots/storefront-backend/internal/product"
)

// Line is one (product snapshot, quantity) pair in a cart. The snapshot is
// taken when the product is added; later catalog edits do not rewrite it.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered collection of lines scoped to an anonymous shopping
// session. At most one line exists per product id; adding an already-present
// product merges into the existing line.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c *Cart) lineIndex(productID int) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add merges qty units of p into the cart. A line for p.ID is incremented if
// present, otherwise appended.
func (c *Cart) Add(p product.Product, qty int) {
	if i := c.lineIndex(p.ID); i >= 0 {
		c.Lines[i].Quantity += qty
		return
	}
	c.Lines = append(c.Lines, Line{Product: p, Quantity: qty})
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID int) {
	if i := c.lineIndex(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// UpdateQuantity sets the quantity of the line for productID. A quantity of
// zero or less removes the line, identical to Remove.
func (c *Cart) UpdateQuantity(productID, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.lineIndex(productID); i >= 0 {
		c.Lines[i].Quantity = qty
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Contains reports whether a line for productID exists.
func (c *Cart) Contains(productID int) bool {
	return c.lineIndex(productID) >= 0
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity across all lines, in rupees.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// storedLine is the persisted shape of a line. Older carts were written with
// the product snapshot under an `item` key; decoding normalizes both shapes
// to the current one. The migration is one-way and idempotent.
type storedLine struct {
	Product  *product.Product `json:"product,omitempty"`
	Item     *product.Product `json:"item,omitempty"`
	Quantity int              `json:"quantity"`
}

// Decode parses a persisted cart, upgrading any legacy-shaped lines. Lines
// with no product snapshot or a non-positive quantity are dropped.
func Decode(raw []byte) (Cart, error) {
	if len(raw) == 0 {
		return Cart{}, nil
	}

	var stored []storedLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return Cart{}, err
	}

	c := Cart{}
	for _, sl := range stored {
		snap := sl.Product
		if snap == nil {
			snap = sl.Item
		}
		if snap == nil || sl.Quantity <= 0 {
			continue
		}
		if i := c.lineIndex(snap.ID); i >= 0 {
			c.Lines[i].Quantity += sl.Quantity
			continue
		}
		c.Lines = append(c.Lines, Line{Product: *snap, Quantity: sl.Quantity})
	}
	return c, nil
}

// Encode serializes the cart in the current stored shape.
func Encode(c Cart) ([]byte, error) {
	stored := make([]storedLine, 0, len(c.Lines))
	for i := range c.Lines {
		stored = append(stored, storedLine{Product: &c.Lines[i].Product, Quantity: c.Lines[i].Quantity})
	}
	return json.Marshal(stored)
}
