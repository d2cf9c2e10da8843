package service

import (
	"context"

	"quill/internal/cache"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// ErrNotOwner reports a mutation attempted by someone other than the post's
// author. The HTTP layer turns it into a redirect to the read-only view
// rather than an error page.
var ErrNotOwner = models.NewInvalidOperationError("only the author may modify a post")

// PostView is the single-post page: the post, its comments newest first,
// and the author's profile numbers.
type PostView struct {
	Post            *models.Post     `json:"post"`
	Comments        []models.Comment `json:"comments"`
	AuthorPostCount int              `json:"author_post_count"`
	FollowerCount   int              `json:"follower_count"`
	FollowingCount  int              `json:"following_count"`
}

// PostService implements post creation, editing, deletion and the
// single-post view. Every successful mutation invalidates the cached
// global feed page so readers see the change on the next request.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	pageCache   cache.Cache
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageCache cache.Cache,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		followRepo:  followRepo,
		pageCache:   pageCache,
	}
}

// resolveGroup maps an optional group slug from the form to a group ID. An
// empty slug means no group; an unknown slug is a form error, not a 404.
func (s *PostService) resolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewFormValidationError([]models.FieldError{
				{Field: "group_slug", Message: "unknown group"},
			})
		}
		return nil, err
	}
	return &group.ID, nil
}

func (s *PostService) invalidateGlobalFeed(ctx context.Context) {
	if err := s.pageCache.Invalidate(ctx, cache.GlobalFeedKey); err != nil {
		middleware.Logger.WarnContext(ctx, "global feed cache invalidation failed", "error", err.Error())
	}
}

// Create publishes a new post for the author.
func (s *PostService) Create(ctx context.Context, authorID uint, in validation.PostInput) (*models.Post, error) {
	if errs := validation.ValidatePost(in); len(errs) > 0 {
		return nil, models.NewFormValidationError(errs)
	}

	groupID, err := s.resolveGroup(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		ImageRef: in.ImageRef,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateGlobalFeed(ctx)

	// Reload so the response carries the author and group associations.
	return s.postRepo.GetByID(ctx, post.ID)
}

// Edit updates a post's text, image and group. Only the author may edit;
// anyone else gets ErrNotOwner.
func (s *PostService) Edit(ctx context.Context, viewerID, postID uint, in validation.PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != viewerID {
		return nil, ErrNotOwner
	}

	if errs := validation.ValidatePost(in); len(errs) > 0 {
		return nil, models.NewFormValidationError(errs)
	}

	groupID, err := s.resolveGroup(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.ImageRef = in.ImageRef
	post.GroupID = groupID
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateGlobalFeed(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// Delete removes a post and, through the storage cascade, its comments.
// Only the author may delete.
func (s *PostService) Delete(ctx context.Context, viewerID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != viewerID {
		return ErrNotOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.invalidateGlobalFeed(ctx)
	return nil
}

// View assembles the single-post page addressed by author username and
// post ID. A post ID that exists under a different author is NotFound: the
// URL names a page that does not exist.
func (s *PostService) View(ctx context.Context, username string, postID uint) (*PostView, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != author.ID {
		return nil, models.NewNotFoundError("post", postID)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:            post,
		Comments:        comments,
		AuthorPostCount: postCount,
		FollowerCount:   followers,
		FollowingCount:  following,
	}, nil
}
