package order

// Item is one purchased line, snapshotted from the cart at checkout time.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Order represents a completed purchase.
type Order struct {
	OrderID     int    `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	SessionID   string `json:"sessionId"`

	Items []Item `json:"items"`

	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grandTotal"`

	Status string `json:"status"` // confirmed, packed, shipped, delivered

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone"`

	ShippingAddress string `json:"shippingAddress"`

	RazorpayOrderID string `json:"razorpayOrderId,omitempty"`
	PaymentID       string `json:"paymentId,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// StatusConfirmed is the status every freshly paid order starts in.
const StatusConfirmed = "confirmed"
