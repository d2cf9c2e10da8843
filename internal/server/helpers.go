package server

import (
	"errors"
	"fmt"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parsePostID extracts the postID route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parsePostID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("postID")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("invalid post ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage extracts the page query parameter. Out-of-range values are left
// to the pagination layer, which normalizes and clamps them.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// viewerID returns the authenticated viewer's ID from locals, or 0 for
// anonymous requests.
func viewerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("viewerID").(uint); ok {
		return id
	}
	return 0
}

// postViewPath builds the canonical URL of a post's read-only view.
func postViewPath(username string, postID uint) string {
	return fmt.Sprintf("/api/users/%s/posts/%d", username, postID)
}

// profilePath builds the canonical URL of a user's profile feed.
func profilePath(username string) string {
	return fmt.Sprintf("/api/users/%s", username)
}
