package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// CommentService implements comment creation. Comments are immutable once
// written and live only as long as their parent post.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Add creates a comment by the author on the given post. The post must
// exist; the text must be present and within the length bound.
func (s *CommentService) Add(ctx context.Context, authorID, postID uint, in validation.CommentInput) (*models.Comment, error) {
	if errs := validation.ValidateComment(in); len(errs) > 0 {
		return nil, models.NewFormValidationError(errs)
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     in.Text,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
