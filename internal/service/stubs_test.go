package service

import (
	"context"
	"time"

	"quill/internal/models"
)

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:  func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type followRepoStub struct {
	upsertFn         func(context.Context, uint, uint) error
	deleteFn         func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	countFollowersFn func(context.Context, uint) (int, error)
	countFollowingFn func(context.Context, uint) (int, error)
	followedIDsFn    func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Upsert(ctx context.Context, followerID, followedID uint) error {
	return s.upsertFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followedIDsFn(ctx, followerID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		upsertFn:         func(context.Context, uint, uint) error { return nil },
		deleteFn:         func(context.Context, uint, uint) error { return nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		countFollowersFn: func(context.Context, uint) (int, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int, error) { return 0, nil },
		followedIDsFn:    func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
	listGlobalFn    func(context.Context, int, int) ([]*models.Post, error)
	countGlobalFn   func(context.Context) (int, error)
	recentByGroupFn func(context.Context, uint, int) ([]*models.Post, error)
	listByAuthorFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int, error)
	listByAuthorsFn func(context.Context, []uint, int, int) ([]*models.Post, error)
	countByAuthorsFn func(context.Context, []uint) (int, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ListGlobal(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listGlobalFn(ctx, limit, offset)
}
func (s *postRepoStub) CountGlobal(ctx context.Context) (int, error) {
	return s.countGlobalFn(ctx)
}
func (s *postRepoStub) RecentByGroup(ctx context.Context, groupID uint, limit int) ([]*models.Post, error) {
	return s.recentByGroupFn(ctx, groupID, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		updateFn:  func(context.Context, *models.Post) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listGlobalFn: func(context.Context, int, int) ([]*models.Post, error) {
			return nil, nil
		},
		countGlobalFn:   func(context.Context) (int, error) { return 0, nil },
		recentByGroupFn: func(context.Context, uint, int) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn:  func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn: func(context.Context, uint) (int, error) { return 0, nil },
		listByAuthorsFn: func(context.Context, []uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorsFn: func(context.Context, []uint) (int, error) { return 0, nil },
	}
}

type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context) ([]models.Group, error)
	deleteFn    func(context.Context, uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context) ([]models.Group, error) {
	return s.listFn(ctx)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn: func(context.Context, *models.Group) error { return nil },
		getBySlugFn: func(_ context.Context, slug string) (*models.Group, error) {
			return &models.Group{ID: 1, Slug: slug}, nil
		},
		listFn:   func(context.Context) ([]models.Group, error) { return nil, nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint) ([]models.Comment, error)
	countByPostFn func(context.Context, uint) (int, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int, error) {
	return s.countByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		listByPostFn:  func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		countByPostFn: func(context.Context, uint) (int, error) { return 0, nil },
	}
}

// cacheSpy records page-cache calls.
type cacheSpy struct {
	invalidated []string
	setKeys     []string
}

func (c *cacheSpy) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (c *cacheSpy) Set(_ context.Context, key, _ string, _ time.Duration) error {
	c.setKeys = append(c.setKeys, key)
	return nil
}
func (c *cacheSpy) Invalidate(_ context.Context, key string) error {
	c.invalidated = append(c.invalidated, key)
	return nil
}
