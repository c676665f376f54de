package payment

import (
	"github.com/gofiber/fiber/v2"
)

// Handler relays gateway order creation and signature verification for the
// client-side checkout.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/payment/order", h.createOrder)
	app.Post("/api/payment/verify", h.verify)
}

type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "amount must be positive"})
	}

	ord, err := h.service.CreateOrder(payload.Amount, payload.Currency, payload.Receipt)
	if err != nil {
		switch err {
		case ErrGatewayUnavailable:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "payment gateway unavailable"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (h *Handler) verify(c *fiber.Ctx) error {
	payload := new(verifyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	valid := h.service.Verify(payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature)
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"valid": false, "message": "signature mismatch"})
	}
	return c.JSON(fiber.Map{"valid": true})
}
