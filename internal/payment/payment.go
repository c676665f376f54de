package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// GatewayOrder is the order object the gateway returns; the client-side
// checkout opens it by id. Amount is in paise.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway creates orders with the payment provider.
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string) (GatewayOrder, error)
}

// RazorpayGateway talks to the Razorpay orders API with key-id/key-secret
// basic auth.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com/v1",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (GatewayOrder, error) {
	body, err := json.Marshal(map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return GatewayOrder{}, err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return GatewayOrder{}, err
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return GatewayOrder{}, ErrGatewayUnavailable
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return GatewayOrder{}, fmt.Errorf("gateway returned status %d", res.StatusCode)
	}

	var ord GatewayOrder
	if err := json.NewDecoder(res.Body).Decode(&ord); err != nil {
		return GatewayOrder{}, err
	}
	return ord, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed with the key secret, hex encoded.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
