package order

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes order history and public tracking lookups.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// track must be registered before the session param route
	app.Get("/api/orders/track/:orderNumber", h.trackOrder)
	app.Get("/api/orders/:sessionId", h.getOrders)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	orders, err := h.service.ListBySession(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) trackOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByNumber(c.Params("orderNumber"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
