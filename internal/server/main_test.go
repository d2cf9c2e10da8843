package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"
)

const testJWTSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8274",
		DBDriver:  "sqlite",
		JWTSecret: testJWTSecret,
		PageSize:  10,
		Env:       "test",
	}
}

// setupHandlerTestDB opens an in-memory sqlite database with foreign keys
// enforced, so the storage-level cascade rules hold in tests.
func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, database.Migrate(db))
	return db
}

// setupTestApp builds a Server on an in-memory database and mounts the full
// route table on a fresh Fiber app.
func setupTestApp(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db := setupHandlerTestDB(t)
	s, err := NewServerWithDeps(testConfig(), db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// authToken issues a bearer token for the given user, signed the way the
// identity provider signs them.
func authToken(t *testing.T, userID uint) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authedJSONRequest(t *testing.T, method, target string, userID uint, body any) *http.Request {
	t.Helper()

	req := newJSONRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+authToken(t, userID))
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func mustCreateHandlerUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateHandlerPost(t *testing.T, db *gorm.DB, authorID uint, text string) *models.Post {
	t.Helper()

	post := &models.Post{Text: text, AuthorID: authorID, CreatedAt: time.Now()}
	require.NoError(t, db.Create(post).Error)
	return post
}
