package checkout

import "time"

// PaymentResult is the metadata kept after a verified gateway success.
type PaymentResult struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentID      string `json:"paymentId"`
	Method         string `json:"method,omitempty"`
}

// Flow is one transient checkout session. It lives in memory only and is
// destroyed when the user completes or abandons the wizard.
type Flow struct {
	SessionID string       `json:"sessionId"`
	Step      Step         `json:"step"`
	Address   AddressData  `json:"address"`
	Customer  CustomerData `json:"customer"`

	// set on confirmation
	OrderNumber string        `json:"orderNumber,omitempty"`
	Payment     PaymentResult `json:"payment,omitempty"`

	touched time.Time
}

func newFlow(sessionID string) *Flow {
	return &Flow{
		SessionID: sessionID,
		Step:      StepAddress,
		touched:   time.Now(),
	}
}

// SubmitAddress validates and stores the address, synthesizes the customer
// record, and advances to payment. A validation failure keeps the flow at
// address and is returned as the single error string to display.
func (f *Flow) SubmitAddress(a AddressData) error {
	if f.Step != StepAddress {
		return ErrWrongStep
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Country == "" {
		a.Country = "India"
	}
	f.Address = a
	f.Customer = CustomerData{
		Name:       a.FullName,
		Phone:      a.Phone,
		IsVerified: true,
	}
	f.Step = StepPayment
	return nil
}

// Back returns from payment to address. Collected data is retained so the
// user does not re-enter it.
func (f *Flow) Back() error {
	if f.Step != StepPayment {
		return ErrWrongStep
	}
	f.Step = StepAddress
	return nil
}

// Confirm records a verified payment and moves to the terminal confirmation
// step.
func (f *Flow) Confirm(orderNumber string, p PaymentResult) error {
	if f.Step != StepPayment {
		return ErrWrongStep
	}
	f.OrderNumber = orderNumber
	f.Payment = p
	f.Step = StepConfirmation
	return nil
}
