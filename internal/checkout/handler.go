package checkout

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the checkout wizard over the session-scoped REST surface.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/checkout/:sessionId/start", h.start)
	app.Get("/api/checkout/:sessionId", h.status)
	app.Post("/api/checkout/:sessionId/address", h.submitAddress)
	app.Post("/api/checkout/:sessionId/back", h.back)
	app.Post("/api/checkout/:sessionId/payment/confirm", h.confirmPayment)
	app.Post("/api/checkout/:sessionId/payment/fail", h.failPayment)
	app.Delete("/api/checkout/:sessionId", h.abandon)
}

type flowResponse struct {
	SessionID   string        `json:"sessionId"`
	Step        Step          `json:"step"`
	Address     AddressData   `json:"address"`
	Customer    CustomerData  `json:"customer"`
	Totals      Totals        `json:"totals"`
	OrderNumber string        `json:"orderNumber,omitempty"`
	Payment     PaymentResult `json:"payment,omitempty"`
}

func respondFlow(c *fiber.Ctx, f *Flow, t Totals) error {
	return c.JSON(flowResponse{
		SessionID:   f.SessionID,
		Step:        f.Step,
		Address:     f.Address,
		Customer:    f.Customer,
		Totals:      t,
		OrderNumber: f.OrderNumber,
		Payment:     f.Payment,
	})
}

func (h *Handler) start(c *fiber.Ctx) error {
	f, totals, err := h.service.Start(c.Params("sessionId"))
	if err != nil {
		switch err {
		case ErrEmptyCart:
			// nothing to check out: send the client back to shopping
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message":  "cart is empty",
				"redirect": "/products",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return respondFlow(c, f, totals)
}

func (h *Handler) status(c *fiber.Ctx) error {
	f, totals, err := h.service.Status(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active checkout"})
	}
	return respondFlow(c, f, totals)
}

type addressRequest struct {
	AddressData
	Email string `json:"email,omitempty"`
}

func (h *Handler) submitAddress(c *fiber.Ctx) error {
	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	f, err := h.service.SubmitAddress(c.Params("sessionId"), payload.AddressData, payload.Email)
	if err != nil {
		switch err {
		case ErrNoActiveCheckout:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active checkout"})
		case ErrWrongStep:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "not allowed at this step"})
		default:
			// validation failure: single human-readable message, state unchanged
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}
	_, totals, _ := h.service.Status(f.SessionID)
	return respondFlow(c, f, totals)
}

func (h *Handler) back(c *fiber.Ctx) error {
	f, err := h.service.Back(c.Params("sessionId"))
	if err != nil {
		switch err {
		case ErrNoActiveCheckout:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active checkout"})
		default:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "not allowed at this step"})
		}
	}
	_, totals, _ := h.service.Status(f.SessionID)
	return respondFlow(c, f, totals)
}

type confirmPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
	Method            string `json:"method,omitempty"`
}

func (h *Handler) confirmPayment(c *fiber.Ctx) error {
	payload := new(confirmPaymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.ConfirmPayment(c.Params("sessionId"),
		payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature, payload.Method)
	if err != nil {
		switch err {
		case ErrNoActiveCheckout:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active checkout"})
		case ErrWrongStep:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "not allowed at this step"})
		case ErrGatewaySignature:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "payment verification failed"})
		case ErrEmptyCart:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

type failPaymentRequest struct {
	Description string `json:"description,omitempty"`
}

func (h *Handler) failPayment(c *fiber.Ctx) error {
	payload := new(failPaymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	f, err := h.service.FailPayment(c.Params("sessionId"), payload.Description)
	if err != nil {
		switch err {
		case ErrNoActiveCheckout:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active checkout"})
		default:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "not allowed at this step"})
		}
	}
	_, totals, _ := h.service.Status(f.SessionID)
	return respondFlow(c, f, totals)
}

func (h *Handler) abandon(c *fiber.Ctx) error {
	h.service.Abandon(c.Params("sessionId"))
	return c.SendStatus(fiber.StatusNoContent)
}
