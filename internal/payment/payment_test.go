package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	sig := sign("order_123", "pay_456", secret)

	if !VerifySignature("order_123", "pay_456", sig, secret) {
		t.Fatal("expected genuine signature to verify")
	}
	if VerifySignature("order_123", "pay_456", sig, "other_secret") {
		t.Fatal("signature verified with the wrong secret")
	}
	if VerifySignature("order_999", "pay_456", sig, secret) {
		t.Fatal("signature verified for a different order")
	}
	if VerifySignature("order_123", "pay_456", "deadbeef", secret) {
		t.Fatal("forged signature verified")
	}
	if VerifySignature("", "", "", secret) {
		t.Fatal("empty fields verified")
	}
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
}

func (g *fakeGateway) CreateOrder(amount int64, currency, receipt string) (GatewayOrder, error) {
	g.lastAmount = amount
	g.lastCurrency = currency
	g.lastReceipt = receipt
	return GatewayOrder{ID: "order_fake", Amount: amount, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

func TestService_CreateOrderConvertsToPaise(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, "secret")

	ord, err := svc.CreateOrder(1413.64, "", "CR-TEST")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if gw.lastAmount != 141364 {
		t.Fatalf("expected 141364 paise, got %d", gw.lastAmount)
	}
	if gw.lastCurrency != "INR" {
		t.Fatalf("expected INR default, got %q", gw.lastCurrency)
	}
	if ord.ID != "order_fake" || ord.Status != "created" {
		t.Fatalf("unexpected gateway order %+v", ord)
	}
}

func TestService_Verify(t *testing.T) {
	svc := NewService(&fakeGateway{}, "key_secret")
	sig := sign("order_1", "pay_1", "key_secret")

	if !svc.Verify("order_1", "pay_1", sig) {
		t.Fatal("expected service verification to pass")
	}
	if svc.Verify("order_1", "pay_1", "forged") {
		t.Fatal("forged signature passed service verification")
	}
}
