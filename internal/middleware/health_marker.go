package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Redis keys for the traffic stats read back by the health endpoints.
// Exported for use by health handlers (reset, collectHealth).
const (
	KeyReqTotal           = "health:global:req_total"
	KeyReqErrors          = "health:global:req_errors"
	KeyResTime            = "health:global:res_time_total"
	KeyResCount           = "health:global:res_count"
	KeyStartTime          = "health:global:start_time"
	KeyLastReq            = "health:global:last_request"
	KeyErrorLog           = "health:global:error_log"
	KeyContractsFinalized = "health:global:contracts_finalized"
)

const errorLogMax = 200

// HealthMarker records request stats in Redis (skip /, /health*, favicon).
// Server errors are appended to a capped error log, and successful contract
// finalizations bump their own counter.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/" || strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/favicon") {
			return c.Next()
		}

		start := time.Now()
		lastReq := map[string]interface{}{
			"time":   time.Now(),
			"ip":     c.IP(),
			"path":   c.OriginalURL(),
			"method": c.Method(),
			"branch": c.Get("X-Branch-Id"),
		}
		b, _ := json.Marshal(lastReq)
		ctx := context.Background()
		_, _ = rdb.Set(ctx, KeyLastReq, b, 0).Result()
		_, _ = rdb.Incr(ctx, KeyReqTotal).Result()

		err := c.Next()

		ms := time.Since(start).Milliseconds()
		status := c.Response().StatusCode()
		_, _ = rdb.Incr(ctx, KeyResCount).Result()
		_, _ = rdb.IncrByFloat(ctx, KeyResTime, float64(ms)).Result()
		if status >= fiber.StatusInternalServerError {
			_, _ = rdb.Incr(ctx, KeyReqErrors).Result()
			entry, _ := json.Marshal(map[string]interface{}{
				"time":     time.Now(),
				"path":     c.OriginalURL(),
				"method":   c.Method(),
				"status":   status,
				"trace_id": GetTraceID(c),
			})
			_, _ = rdb.LPush(ctx, KeyErrorLog, entry).Result()
			_, _ = rdb.LTrim(ctx, KeyErrorLog, 0, errorLogMax-1).Result()
		}
		if c.Method() == fiber.MethodPost && status == fiber.StatusCreated && strings.HasSuffix(strings.TrimSuffix(path, "/"), "/contracts") {
			_, _ = rdb.Incr(ctx, KeyContractsFinalized).Result()
		}
		return err
	}
}
