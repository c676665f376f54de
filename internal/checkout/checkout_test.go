package checkout

import (
	"strings"
	"testing"

	"github.com/cityroots/storefront-backend/internal/cart"
	"github.com/cityroots/storefront-backend/internal/product"
)

func validAddress() AddressData {
	return AddressData{
		FullName: "Asha Verma",
		Line1:    "12 Lodhi Road",
		City:     "New Delhi",
		State:    "Delhi",
		Pincode:  "110001",
		Country:  "India",
		Phone:    "9876543210",
	}
}

func TestAddressValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*AddressData)
		wantErr string
	}{
		{"valid", func(a *AddressData) {}, ""},
		{"missing name", func(a *AddressData) { a.FullName = " " }, "full name"},
		{"missing line1", func(a *AddressData) { a.Line1 = "" }, "address line 1"},
		{"missing city", func(a *AddressData) { a.City = "" }, "city"},
		{"bad state", func(a *AddressData) { a.State = "Atlantis" }, "state"},
		{"pincode leading zero", func(a *AddressData) { a.Pincode = "000001" }, "pincode"},
		{"pincode too short", func(a *AddressData) { a.Pincode = "12345" }, "pincode"},
		{"pincode letters", func(a *AddressData) { a.Pincode = "11000a" }, "pincode"},
		{"foreign country", func(a *AddressData) { a.Country = "Nepal" }, "India"},
		{"phone too short", func(a *AddressData) { a.Phone = "12345" }, "phone"},
		{"phone letters", func(a *AddressData) { a.Phone = "98765abcde" }, "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAddress()
			tc.mutate(&a)
			err := a.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid address, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFlow_Transitions(t *testing.T) {
	f := newFlow("s1")
	if f.Step != StepAddress {
		t.Fatalf("expected initial step address, got %s", f.Step)
	}

	// cannot go back or confirm from address
	if err := f.Back(); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep for back at address, got %v", err)
	}
	if err := f.Confirm("CR-X", PaymentResult{}); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep for confirm at address, got %v", err)
	}

	// invalid address keeps the step
	bad := validAddress()
	bad.Pincode = "12345"
	if err := f.SubmitAddress(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if f.Step != StepAddress {
		t.Fatalf("validation failure must not advance, step=%s", f.Step)
	}

	// valid address advances and synthesizes a verified customer
	if err := f.SubmitAddress(validAddress()); err != nil {
		t.Fatalf("submit address: %v", err)
	}
	if f.Step != StepPayment {
		t.Fatalf("expected payment step, got %s", f.Step)
	}
	if !f.Customer.IsVerified || f.Customer.Name != "Asha Verma" || f.Customer.Phone != "9876543210" {
		t.Fatalf("unexpected synthesized customer %+v", f.Customer)
	}

	// back edge retains collected data
	if err := f.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if f.Step != StepAddress || f.Address.City != "New Delhi" {
		t.Fatalf("back lost data: step=%s address=%+v", f.Step, f.Address)
	}

	// forward again, then confirm
	if err := f.SubmitAddress(f.Address); err != nil {
		t.Fatalf("resubmit address: %v", err)
	}
	if err := f.Confirm("CR-ABC123", PaymentResult{GatewayOrderID: "order_1", PaymentID: "pay_1"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if f.Step != StepConfirmation || f.OrderNumber != "CR-ABC123" {
		t.Fatalf("unexpected terminal state %+v", f)
	}

	// terminal: nothing moves anymore
	if err := f.Back(); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep after confirmation, got %v", err)
	}
	if err := f.SubmitAddress(validAddress()); err != ErrWrongStep {
		t.Fatalf("expected ErrWrongStep after confirmation, got %v", err)
	}
}

func TestComputeTotals(t *testing.T) {
	c := cart.Cart{}
	c.Add(product.Product{ID: 1, Name: "Monstera Deliciosa", Price: 599}, 2)

	got := ComputeTotals(c)
	if got.Subtotal != 1198 {
		t.Fatalf("expected subtotal 1198, got %v", got.Subtotal)
	}
	if got.Tax != 1198*0.18 {
		t.Fatalf("expected tax 215.64, got %v", got.Tax)
	}
	// 1198 clears the free-shipping threshold
	if got.Shipping != 0 {
		t.Fatalf("expected free shipping, got %v", got.Shipping)
	}
	if got.GrandTotal != 1198+1198*0.18 {
		t.Fatalf("expected grand total %v, got %v", 1198+1198*0.18, got.GrandTotal)
	}
}

func TestComputeTotals_FlatFeeBelowThreshold(t *testing.T) {
	c := cart.Cart{}
	c.Add(product.Product{ID: 6, Name: "Tomato Seeds (50 pack)", Price: 99}, 1)

	got := ComputeTotals(c)
	if got.Shipping != ShippingFee {
		t.Fatalf("expected flat shipping fee %v, got %v", ShippingFee, got.Shipping)
	}
	if got.GrandTotal != 99+99*TaxRate+ShippingFee {
		t.Fatalf("unexpected grand total %v", got.GrandTotal)
	}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	got := ComputeTotals(cart.Cart{})
	if got.Subtotal != 0 || got.Shipping != 0 || got.GrandTotal != 0 {
		t.Fatalf("expected zero totals for empty cart, got %+v", got)
	}
}
