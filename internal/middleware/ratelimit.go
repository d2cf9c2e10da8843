package middleware

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns a Fiber middleware enforcing `limit` requests per
// `window` for the named resource. It keys by authenticated viewer ID when
// present, otherwise by remote IP. When Redis is unavailable the request is
// allowed through (fail open).
//
// Rate limiting is disabled when APP_ENV is "test" or "development" so
// local and CI workflows are not throttled.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch os.Getenv("APP_ENV") {
		case "", "test", "development":
			return c.Next()
		}
		if rdb == nil {
			return c.Next()
		}

		id := c.IP()
		if viewerID, ok := c.Locals("viewerID").(uint); ok {
			id = strconv.FormatUint(uint64(viewerID), 10)
		}

		key := fmt.Sprintf("rl:%s:%s", resource, id)
		ctx := c.UserContext()

		cnt, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			Logger.WarnContext(ctx, "rate limit store unavailable, allowing request",
				"resource", resource, "error", err.Error())
			return c.Next()
		}
		if cnt == 1 {
			rdb.Expire(ctx, key, window)
		}
		if cnt > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		}

		return c.Next()
	}
}
