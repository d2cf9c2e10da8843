package server

import (
	"quill/internal/models"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/users/:username/posts/:postID/comments
//
// The response is a redirect to the post view whether the comment was
// accepted or failed validation; the view is where the result (or the
// re-rendered form) lives. Only an unresolvable post yields an error.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")

	postID, err := s.parsePostID(c)
	if err != nil {
		return nil
	}

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if post.AuthorID != author.ID {
		return models.RespondWithError(c, models.NewNotFoundError("post", postID))
	}

	var in validation.CommentInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	if _, err := s.commentService.Add(ctx, viewerID(c), postID, in); err != nil {
		if models.ErrorCode(err) == models.CodeValidation {
			return c.Redirect(postViewPath(username, postID), fiber.StatusSeeOther)
		}
		return models.RespondWithError(c, err)
	}

	return c.Redirect(postViewPath(username, postID), fiber.StatusSeeOther)
}
