// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

// DefaultOptions are sized for a usable local development database.
func DefaultOptions() Options {
	return Options{
		NumUsers:    25,
		NumGroups:   6,
		NumPosts:    150,
		NumComments: 300,
		ShouldClean: true,
	}
}

// Seed populates the database with generated users, groups, posts, comments
// and a follow mesh.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("seeding database: %d users, %d groups, %d posts, %d comments",
		opts.NumUsers, opts.NumGroups, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	groups, err := seedGroups(db, opts.NumGroups)
	if err != nil {
		return fmt.Errorf("seeding groups: %w", err)
	}

	posts, err := seedPosts(db, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}

	if err := seedComments(db, users, posts, opts.NumComments); err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	if err := seedFollows(db, users); err != nil {
		return fmt.Errorf("seeding follows: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

// clearData removes seedable rows, children first so foreign keys never
// block the deletes.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	// One shared hash: hashing is the slow part and seeded accounts all
	// use the same well-known password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	seen := make(map[string]bool, n)
	for len(users) < n {
		username := strings.ToLower(gofakeit.Username())
		if seen[username] {
			continue
		}
		seen[username] = true

		users = append(users, models.User{
			Username:     username,
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			PasswordHash: string(hash),
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func seedGroups(db *gorm.DB, n int) ([]models.Group, error) {
	groups := make([]models.Group, 0, n)
	seen := make(map[string]bool, n)
	for len(groups) < n {
		title := gofakeit.Hobby()
		slug := slugify(title)
		if seen[slug] {
			continue
		}
		seen[slug] = true

		groups = append(groups, models.Group{
			Title:       title,
			Slug:        slug,
			Description: gofakeit.Sentence(12),
		})
	}

	if err := db.Create(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func seedPosts(db *gorm.DB, users []models.User, groups []models.Group, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := models.Post{
			Text:     gofakeit.Paragraph(1, 3, 12, " "),
			AuthorID: users[rand.Intn(len(users))].ID,
		}

		// Roughly half the posts go to a group, a third carry an image.
		if len(groups) > 0 && rand.Intn(2) == 0 {
			post.GroupID = &groups[rand.Intn(len(groups))].ID
		}
		if rand.Intn(3) == 0 {
			post.ImageRef = NewImageRef()
		}

		posts = append(posts, post)
	}

	if err := db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func seedComments(db *gorm.DB, users []models.User, posts []models.Post, n int) error {
	if len(posts) == 0 {
		return nil
	}

	comments := make([]models.Comment, 0, n)
	for i := 0; i < n; i++ {
		comments = append(comments, models.Comment{
			Text:     gofakeit.Sentence(8),
			PostID:   posts[rand.Intn(len(posts))].ID,
			AuthorID: users[rand.Intn(len(users))].ID,
		})
	}

	return db.CreateInBatches(&comments, 100).Error
}

// seedFollows builds a sparse directed follow mesh: every user follows a
// handful of others, never themselves, never twice.
func seedFollows(db *gorm.DB, users []models.User) error {
	var follows []models.Follow
	for _, follower := range users {
		targets := rand.Intn(6)
		seen := make(map[uint]bool, targets)
		for len(seen) < targets {
			followed := users[rand.Intn(len(users))]
			if followed.ID == follower.ID || seen[followed.ID] {
				if len(seen)+1 >= len(users) {
					break
				}
				continue
			}
			seen[followed.ID] = true
			follows = append(follows, models.Follow{
				FollowerID: follower.ID,
				FollowedID: followed.ID,
			})
		}
	}

	if len(follows) == 0 {
		return nil
	}
	return db.CreateInBatches(&follows, 100).Error
}

// NewImageRef returns a fresh opaque reference of the shape the media
// collaborator hands out for stored images.
func NewImageRef() string {
	return fmt.Sprintf("posts/%s.jpg", uuid.NewString())
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
