package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroupFeed handles GET /api/groups/:slug?page=N
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.Group(c.UserContext(), c.Params("slug"), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(feed)
}
