package payment

// Service wraps the gateway plus signature verification so handlers and the
// checkout flow share one verifier.
type Service struct {
	gateway   Gateway
	keySecret string
}

func NewService(gateway Gateway, keySecret string) *Service {
	return &Service{gateway: gateway, keySecret: keySecret}
}

// CreateOrder creates a gateway order for the given rupee amount.
func (s *Service) CreateOrder(amountRupees float64, currency, receipt string) (GatewayOrder, error) {
	if currency == "" {
		currency = "INR"
	}
	// gateway amounts are integer paise
	paise := int64(amountRupees*100 + 0.5)
	return s.gateway.CreateOrder(paise, currency, receipt)
}

// Verify reports whether the checkout callback signature is authentic.
func (s *Service) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, s.keySecret)
}
