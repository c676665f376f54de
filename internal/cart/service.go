package cart

import (
	"log"

	"github.com/cityroots/storefront-backend/internal/product"
)

// MaxQuantity is the server-side per-line cap. The domain Cart type itself
// enforces no upper bound; the cap belongs to the API contract.
const MaxQuantity = 99

// Service orchestrates cart mutations: it snapshots products from the
// catalog, applies the quantity rules, and round-trips through the store.
type Service struct {
	store    Store
	products product.ServiceInterface
}

func NewService(store Store, products product.ServiceInterface) *Service {
	return &Service{store: store, products: products}
}

// Get loads the session's cart. A load failure is logged and yields an empty
// cart: the cart is a convenience cache, not the record of completed orders.
func (s *Service) Get(sessionID string) Cart {
	c, err := s.store.Load(sessionID)
	if err != nil {
		log.Printf("cart: load failed for session %s: %v", sessionID, err)
		return Cart{}
	}
	return c
}

// Add merges qty units of the product into the session's cart. A qty of zero
// or less removes the line instead. The resulting line quantity is capped at
// MaxQuantity.
func (s *Service) Add(sessionID string, productID, qty int) (Cart, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, ErrProductNotFound
	}

	c := s.Get(sessionID)
	if qty <= 0 {
		c.Remove(productID)
	} else {
		c.Add(p, qty)
		if i := c.lineIndex(productID); i >= 0 && c.Lines[i].Quantity > MaxQuantity {
			c.Lines[i].Quantity = MaxQuantity
		}
	}

	if err := s.store.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// UpdateQuantity sets the line quantity for the product. Values <= 0 remove
// the line; values above MaxQuantity are clamped. Updating a product that is
// not in the cart adds it, so a stale client cannot lose a line by racing.
func (s *Service) UpdateQuantity(sessionID string, productID, qty int) (Cart, error) {
	c := s.Get(sessionID)
	if qty > MaxQuantity {
		qty = MaxQuantity
	}

	switch {
	case qty <= 0:
		c.Remove(productID)
	case c.Contains(productID):
		c.UpdateQuantity(productID, qty)
	default:
		p, err := s.products.GetByID(productID)
		if err != nil {
			return Cart{}, ErrProductNotFound
		}
		c.Add(p, qty)
	}

	if err := s.store.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Remove deletes the line for the product; absent products are a no-op.
func (s *Service) Remove(sessionID string, productID int) (Cart, error) {
	c := s.Get(sessionID)
	c.Remove(productID)
	if err := s.store.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Clear empties the session's cart and drops the stored row.
func (s *Service) Clear(sessionID string) error {
	return s.store.Delete(sessionID)
}
