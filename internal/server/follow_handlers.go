package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:username/follow
//
// Re-following is a no-op; the redirect to the profile is the success
// response either way. Following yourself is rejected.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")

	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.followService.Follow(ctx, viewerID(c), target.ID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Redirect(profilePath(username), fiber.StatusSeeOther)
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")

	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.followService.Unfollow(ctx, viewerID(c), target.ID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Redirect(profilePath(username), fiber.StatusSeeOther)
}
