package server

import (
	"encoding/json"

	"quill/internal/cache"
	"quill/internal/middleware"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGlobalFeed handles GET /api/feed?page=N
//
// The first page is served through the page cache: it is the site's landing
// page and by far the hottest read. Deeper pages go straight to the
// database. Writes invalidate the cached page, so the TTL only bounds
// staleness when invalidation is missed.
func (s *Server) GetGlobalFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePage(c)

	if page <= 1 {
		if cached, ok, err := s.pageCache.Get(ctx, cache.GlobalFeedKey); err != nil {
			middleware.Logger.WarnContext(ctx, "global feed cache read failed", "error", err.Error())
		} else if ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	feed, err := s.feedService.Global(ctx, page)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if page <= 1 {
		if body, err := json.Marshal(feed); err == nil {
			if err := s.pageCache.Set(ctx, cache.GlobalFeedKey, string(body), s.feedTTL); err != nil {
				middleware.Logger.WarnContext(ctx, "global feed cache write failed", "error", err.Error())
			}
		}
	}

	return c.JSON(feed)
}

// GetFollowFeed handles GET /api/feed/following?page=N
func (s *Server) GetFollowFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	feed, err := s.feedService.Following(ctx, viewerID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(feed)
}
