package admin

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Handler issues the JWT used by the catalog management routes. There is a
// single admin identity configured through the environment.
type Handler struct {
	user      string
	pass      string
	jwtSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewHandler(user, pass, jwtSecret string) *Handler {
	return &Handler{user: user, pass: pass, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/admin/login", h.login)
}

func (h *Handler) login(c *fiber.Ctx) error {
	if h.user == "" || h.pass == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "admin login is not configured"})
	}

	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userOK := subtle.ConstantTimeCompare([]byte(payload.Username), []byte(h.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.pass)) == 1
	if !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid username or password"})
	}

	claims := jwt.MapClaims{
		"sub":  payload.Username,
		"role": "admin",
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
	})
}
