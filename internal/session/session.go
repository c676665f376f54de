package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the anonymous shopping-session cookie set on first visit.
	CookieName = "shop_session-id"
	// HeaderName lets API clients pass the session token explicitly.
	HeaderName = "X-Session-ID"

	localsKey = "sessionID"

	// cookies live two days, matching the storefront's session window
	cookieMaxAge = 60 * 60 * 48
)

// Middleware resolves the anonymous session token for the request. The header
// wins over the cookie; when neither is present a new token is minted and set
// as a cookie. The token identifies a shopping session only and is
// independent of any authenticated identity.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = c.Cookies(CookieName)
		}
		if id == "" {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:   CookieName,
				Value:  id,
				MaxAge: cookieMaxAge,
				Path:   "/",
			})
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx returns the session id resolved by Middleware, or "" if the
// middleware did not run.
func FromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsKey).(string); ok {
		return v
	}
	return ""
}
