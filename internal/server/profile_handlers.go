package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username?page=N
//
// The profile feed renders for everyone; the follow state in the response
// is only meaningful when the request carries a valid bearer token.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.feedService.Profile(c.UserContext(), c.Params("username"), viewerID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(profile)
}
