package checkout

import (
	"errors"
	"regexp"
	"strings"
)

// Step is the checkout wizard position. Transitions run strictly forward
// (address → payment → confirmation) with one backward edge, payment →
// address, that discards nothing.
type Step string

const (
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoActiveCheckout = errors.New("no active checkout")
	ErrWrongStep        = errors.New("not allowed at this step")
	ErrGatewaySignature = errors.New("signature mismatch")
)

// AddressData is the shipping address collected in the first step. Country is
// fixed; state must be one of IndianStates; pincode and phone must pass their
// regex checks before the step can advance.
type AddressData struct {
	FullName string `json:"fullName"`
	Line1    string `json:"addressLine1"`
	Line2    string `json:"addressLine2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// CustomerData is synthesized from the address step. No inline OTP check runs
// in this flow, so IsVerified is forced true on synthesis.
type CustomerData struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	IsVerified bool   `json:"isVerified"`
}

var (
	pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

// IndianStates is the fixed list the state field is validated against.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi",
	"Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
}

func validState(name string) bool {
	for _, s := range IndianStates {
		if s == name {
			return true
		}
	}
	return false
}

// Validate checks the address and returns a single human-readable error, the
// way the checkout surfaces validation failures. Field-level errors are not
// modeled.
func (a *AddressData) Validate() error {
	if strings.TrimSpace(a.FullName) == "" {
		return errors.New("full name is required")
	}
	if strings.TrimSpace(a.Line1) == "" {
		return errors.New("address line 1 is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return errors.New("city is required")
	}
	if !validState(a.State) {
		return errors.New("please select a valid state")
	}
	if !pincodeRe.MatchString(a.Pincode) {
		return errors.New("pincode must be a valid 6-digit code")
	}
	if a.Country != "" && a.Country != "India" {
		return errors.New("we currently ship within India only")
	}
	if !phoneRe.MatchString(a.Phone) {
		return errors.New("phone must be a 10-digit number")
	}
	return nil
}

// FormatAddress renders the address as the single shipping-address string
// stored on orders and shown in mails.
func FormatAddress(a AddressData) string {
	parts := []string{a.FullName, a.Line1}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	parts = append(parts, a.City+", "+a.State+" "+a.Pincode, "India", "Phone: "+a.Phone)
	return strings.Join(parts, "\n")
}
