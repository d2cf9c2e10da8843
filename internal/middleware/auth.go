package middleware

import (
	"strconv"
	"strings"

	"quill/internal/config"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// viewerFromBearer parses the Authorization header and returns the viewer's
// user ID from the token's "sub" claim. Tokens are issued by the external
// identity provider and share this service's signing secret.
func viewerFromBearer(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, models.NewUnauthorizedError("authorization header required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, models.NewUnauthorizedError("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, models.NewUnauthorizedError("token missing subject")
	}

	viewerID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("invalid user ID in token")
	}

	return uint(viewerID), nil
}

// AuthRequired enforces authentication for protected routes and stores the
// viewer ID in c.Locals("viewerID").
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewerID, err := viewerFromBearer(c)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		c.Locals("viewerID", viewerID)
		return c.Next()
	}
}

// ViewerContext resolves the viewer identity when a bearer token is present
// but lets anonymous requests through. Pages like the global feed and
// profiles render for everyone while still showing follow state to
// authenticated viewers.
func ViewerContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") != "" {
			if viewerID, err := viewerFromBearer(c); err == nil {
				c.Locals("viewerID", viewerID)
			}
		}
		return c.Next()
	}
}
