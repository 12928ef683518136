package handler

import (
	"context"
	"net/http"
	"time"

	"exploraneiva/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger reports whether the remote API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health checks the remote API and, when configured, Redis and the e-mail
// dead-letter queue. rdb may be nil. Never exposes credentials or internals.
func Health(api Pinger, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		apiStatus := "connected"
		if api.Ping(ctx) != nil {
			apiStatus = "error"
		}

		body := gin.H{"api": apiStatus}
		healthy := apiStatus == "connected"

		if rdb != nil {
			redisStatus := "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
				healthy = false
			}
			body["redis"] = redisStatus
			if n, err := worker.DLQLength(ctx, rdb, worker.QueueInvoiceEmail); err == nil {
				body["email_dlq"] = n
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		body["ok"] = healthy
		c.JSON(status, body)
	}
}
