package checkout

import (
	"log"

	"github.com/cityroots/storefront-backend/internal/cart"
	"github.com/cityroots/storefront-backend/internal/mail"
	"github.com/cityroots/storefront-backend/internal/order"
)

// PaymentVerifier checks a gateway success callback before the flow may
// advance to confirmation.
type PaymentVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// Service orchestrates the checkout flow against the cart store, the payment
// verifier, the order service, and the mailer.
type Service struct {
	flows    *Manager
	carts    *cart.Service
	orders   *order.Service
	verifier PaymentVerifier
	mailer   mail.Mailer
}

func NewService(flows *Manager, carts *cart.Service, orders *order.Service, verifier PaymentVerifier, mailer mail.Mailer) *Service {
	return &Service{flows: flows, carts: carts, orders: orders, verifier: verifier, mailer: mailer}
}

// Start opens (or resumes) the checkout for a session. Starting with an empty
// cart is refused unless the existing flow already reached confirmation, so a
// user cannot check out nothing.
func (s *Service) Start(sessionID string) (*Flow, Totals, error) {
	if f := s.flows.Get(sessionID); f != nil && f.Step == StepConfirmation {
		return f, Totals{}, nil
	}

	crt := s.carts.Get(sessionID)
	if len(crt.Lines) == 0 {
		return nil, Totals{}, ErrEmptyCart
	}
	return s.flows.GetOrCreate(sessionID), ComputeTotals(crt), nil
}

// Status reports the current flow plus totals recomputed from the live cart
// snapshot.
func (s *Service) Status(sessionID string) (*Flow, Totals, error) {
	f := s.flows.Get(sessionID)
	if f == nil {
		return nil, Totals{}, ErrNoActiveCheckout
	}
	if f.Step == StepConfirmation {
		return f, Totals{}, nil
	}
	return f, ComputeTotals(s.carts.Get(sessionID)), nil
}

// SubmitAddress advances address → payment. The optional email rides along
// into the synthesized customer record.
func (s *Service) SubmitAddress(sessionID string, a AddressData, email string) (*Flow, error) {
	f := s.flows.Get(sessionID)
	if f == nil {
		return nil, ErrNoActiveCheckout
	}
	if err := f.SubmitAddress(a); err != nil {
		return nil, err
	}
	f.Customer.Email = email
	return f, nil
}

// Back returns payment → address without losing collected data.
func (s *Service) Back(sessionID string) (*Flow, error) {
	f := s.flows.Get(sessionID)
	if f == nil {
		return nil, ErrNoActiveCheckout
	}
	if err := f.Back(); err != nil {
		return nil, err
	}
	return f, nil
}

// ConfirmPayment handles the gateway success callback: verify the signature,
// persist the order from the current cart snapshot, clear the cart, and move
// the flow to confirmation. Any failure before the order is persisted leaves
// the flow at payment and the cart untouched, so the user can retry.
func (s *Service) ConfirmPayment(sessionID, gatewayOrderID, paymentID, signature, method string) (order.Order, error) {
	f := s.flows.Get(sessionID)
	if f == nil {
		return order.Order{}, ErrNoActiveCheckout
	}
	if f.Step != StepPayment {
		return order.Order{}, ErrWrongStep
	}

	if !s.verifier.Verify(gatewayOrderID, paymentID, signature) {
		return order.Order{}, ErrGatewaySignature
	}

	crt := s.carts.Get(sessionID)
	if len(crt.Lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	totals := ComputeTotals(crt)
	items := make([]order.Item, 0, len(crt.Lines))
	for _, l := range crt.Lines {
		items = append(items, order.Item{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Image:     l.Product.Image,
			Quantity:  l.Quantity,
		})
	}

	created, err := s.orders.Create(order.Order{
		SessionID:       sessionID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		GrandTotal:      totals.GrandTotal,
		CustomerName:    f.Customer.Name,
		CustomerEmail:   f.Customer.Email,
		CustomerPhone:   f.Customer.Phone,
		ShippingAddress: FormatAddress(f.Address),
		RazorpayOrderID: gatewayOrderID,
		PaymentID:       paymentID,
		PaymentMethod:   method,
	})
	if err != nil {
		return order.Order{}, err
	}

	if err := s.carts.Clear(sessionID); err != nil {
		log.Printf("checkout: could not clear cart for session %s: %v", sessionID, err)
	}
	if err := f.Confirm(created.OrderNumber, PaymentResult{
		GatewayOrderID: gatewayOrderID,
		PaymentID:      paymentID,
		Method:         method,
	}); err != nil {
		return order.Order{}, err
	}

	s.sendConfirmation(created)
	return created, nil
}

// FailPayment records a gateway failure or dismiss callback. The flow stays
// at payment and the cart is untouched; the user may retry.
func (s *Service) FailPayment(sessionID, description string) (*Flow, error) {
	f := s.flows.Get(sessionID)
	if f == nil {
		return nil, ErrNoActiveCheckout
	}
	if f.Step != StepPayment {
		return nil, ErrWrongStep
	}
	log.Printf("checkout: payment failed for session %s: %s", sessionID, description)
	return f, nil
}

// Abandon drops the transient checkout session.
func (s *Service) Abandon(sessionID string) {
	s.flows.Delete(sessionID)
}

func (s *Service) sendConfirmation(ord order.Order) {
	if s.mailer == nil || ord.CustomerEmail == "" {
		return
	}
	if err := s.mailer.Send(ord.CustomerEmail, mail.OrderConfirmationSubject(ord), mail.OrderConfirmationBody(ord)); err != nil {
		log.Printf("checkout: confirmation mail for %s failed: %v", ord.OrderNumber, err)
	}
}
