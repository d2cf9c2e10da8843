package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

// GroupFeedCap bounds a group feed to its most recent posts before
// pagination is applied. This is a deliberate upstream cap, independent of
// the page size: a group page never reaches further back than this many
// posts, no matter how many pages the client walks.
const GroupFeedCap = 12

// Feed is one page of an ordered post listing plus its page metadata.
type Feed struct {
	Posts      []*models.Post        `json:"posts"`
	Pagination pagination.Pagination `json:"pagination"`
}

// GroupFeed is a group's feed page together with the group itself.
type GroupFeed struct {
	Group *models.Group `json:"group"`
	Feed
}

// ProfileFeed is an author's feed page with the author, their total post
// count and, when a viewer is known, the follow relationship between
// viewer and author.
type ProfileFeed struct {
	Author         *models.User `json:"author"`
	PostCount      int          `json:"post_count"`
	Following      bool         `json:"following"`
	FollowerCount  int          `json:"follower_count"`
	FollowingCount int          `json:"following_count"`
	Feed
}

// FeedService composes ordered, paginated post listings for the four view
// contexts. Ordering is always newest-first with an ID tie-break, applied
// in the repository, so pages are stable across repeated queries.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	perPage    int
}

// NewFeedService returns a new FeedService with the given page size.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	perPage int,
) *FeedService {
	if perPage < 1 {
		perPage = pagination.DefaultPerPage
	}
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		perPage:    perPage,
	}
}

// Global returns one page of the global feed: every post, newest first.
func (s *FeedService) Global(ctx context.Context, page int) (*Feed, error) {
	total, err := s.postRepo.CountGlobal(ctx)
	if err != nil {
		return nil, err
	}

	pg := pagination.New(total, pagination.NewParams(page, s.perPage))
	posts, err := s.postRepo.ListGlobal(ctx, pg.PerPage, pg.Offset())
	if err != nil {
		return nil, err
	}

	return &Feed{Posts: posts, Pagination: pg}, nil
}

// Group returns one page of a group's feed. The slug must resolve to an
// existing group. Only the GroupFeedCap most recent posts are considered.
func (s *FeedService) Group(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	recent, err := s.postRepo.RecentByGroup(ctx, group.ID, GroupFeedCap)
	if err != nil {
		return nil, err
	}

	posts, pg := pagination.Slice(recent, pagination.NewParams(page, s.perPage))
	return &GroupFeed{Group: group, Feed: Feed{Posts: posts, Pagination: pg}}, nil
}

// Profile returns one page of an author's feed with their post count and,
// for an authenticated viewer (viewerID != 0), the viewer's follow state
// and the author's follower/following counts.
func (s *FeedService) Profile(ctx context.Context, username string, viewerID uint, page int) (*ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	pg := pagination.New(total, pagination.NewParams(page, s.perPage))
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, pg.PerPage, pg.Offset())
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

	profile := &ProfileFeed{
		Author:         author,
		PostCount:      total,
		FollowerCount:  followers,
		FollowingCount: following,
		Feed:           Feed{Posts: posts, Pagination: pg},
	}

	if viewerID != 0 && viewerID != author.ID {
		isFollowing, err := s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
		profile.Following = isFollowing
	}

	return profile, nil
}

// Following returns one page of the follow feed: posts authored by users
// the viewer follows. A viewer following nobody gets an empty feed.
func (s *FeedService) Following(ctx context.Context, viewerID uint, page int) (*Feed, error) {
	authorIDs, err := s.followRepo.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if len(authorIDs) == 0 {
		return &Feed{
			Posts:      nil,
			Pagination: pagination.New(0, pagination.NewParams(page, s.perPage)),
		}, nil
	}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	pg := pagination.New(total, pagination.NewParams(page, s.perPage))
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, pg.PerPage, pg.Offset())
	if err != nil {
		return nil, err
	}

	return &Feed{Posts: posts, Pagination: pg}, nil
}
