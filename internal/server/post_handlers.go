package server

import (
	"errors"

	"quill/internal/models"
	"quill/internal/service"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetPost handles GET /api/users/:username/posts/:postID
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	view, err := s.postService.View(c.UserContext(), c.Params("username"), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(view)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in validation.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), viewerID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:postID
//
// An edit attempt by anyone but the author is answered with a redirect to
// the post's read-only view, not an error page.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	var in validation.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.Edit(ctx, viewerID(c), postID, in)
	if errors.Is(err, service.ErrNotOwner) {
		existing, lookupErr := s.postRepo.GetByID(ctx, postID)
		if lookupErr != nil {
			return models.RespondWithError(c, lookupErr)
		}
		return c.Redirect(postViewPath(existing.Author.Username, postID), fiber.StatusSeeOther)
	}
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:postID
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), viewerID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
