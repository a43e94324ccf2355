package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity plus the state of the async
// receipt pipeline: jobs waiting in the render queue and entries parked in
// its dead letter queue. Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		resp := gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
		}
		if redisStatus == "connected" {
			// Depths are best-effort monitoring data; a read error just
			// omits them rather than failing the check.
			if n, err := rdb.LLen(ctx, worker.QueueReceipts).Result(); err == nil {
				resp["receipt_queue"] = n
			}
			if n, err := worker.DLQLength(ctx, rdb, worker.QueueReceipts); err == nil {
				resp["receipt_dlq"] = n
			}
		}

		c.JSON(status, resp)
	}
}
