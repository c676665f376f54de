package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the session-scoped cart REST contract.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/cart/:sessionId", h.getCart)
	app.Post("/api/cart/:sessionId/add", h.addItem)
	app.Put("/api/cart/:sessionId/update", h.updateItem)
	app.Delete("/api/cart/:sessionId/remove/:productId<[0-9]+>", h.removeItem)
	app.Delete("/api/cart/:sessionId/clear", h.clearCart)
}

// cartResponse is the shape every cart endpoint returns, so the badge count
// and subtotal shown by any surface always derive from the same snapshot.
type cartResponse struct {
	SessionID  string  `json:"sessionId"`
	Lines      []Line  `json:"lines"`
	TotalItems int     `json:"totalItems"`
	Subtotal   float64 `json:"subtotal"`
}

func respond(c *fiber.Ctx, sessionID string, crt Cart) error {
	lines := crt.Lines
	if lines == nil {
		lines = []Line{}
	}
	return c.JSON(cartResponse{
		SessionID:  sessionID,
		Lines:      lines,
		TotalItems: crt.TotalItems(),
		Subtotal:   crt.TotalPrice(),
	})
}

type itemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	return respond(c, sessionID, h.service.Get(sessionID))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	// omitted quantity means "one more"
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	crt, err := h.service.Add(sessionID, payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return respond(c, sessionID, crt)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	crt, err := h.service.UpdateQuantity(sessionID, payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return respond(c, sessionID, crt)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	crt, err := h.service.Remove(sessionID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, sessionID, crt)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if err := h.service.Clear(sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
