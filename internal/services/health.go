package services

import (
	"context"
	"fmt"

	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	BlobStore    string            `json:"blobStore"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

func (r *HealthCheckResult) fail(detail string, err error, msg string) {
	r.Status = "unhealthy"
	r.Details[detail] = err.Error()
	if r.ErrorMessage == "" {
		r.ErrorMessage = fmt.Sprintf("%s: %v", msg, err)
	} else {
		r.ErrorMessage += fmt.Sprintf("; %s: %v", msg, err)
	}
}

// HealthCheck checks the database, the authorizer and, when blobs live in redis, the redis server.
// rdb may be nil.
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client, log logger.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:    "healthy",
		BlobStore: "database",
		Details:   make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.fail("database_error", err, "Database connection error")
		log.Error("health check failed: database connection", logger.Error(err))
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		result.fail("database_ping_error", err, "Database ping failed")
		log.Error("health check failed: database ping", logger.Error(err))
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBAppDatabase
	}

	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		result.Authorizer = "unreachable"
		result.fail("authorizer_error", err, "Authorizer ping failed")
		log.Error("health check failed: authorizer ping", logger.Error(err))
	} else {
		result.Authorizer = "ok"
		result.Details["authorizer_url"] = cfg.AuthzURL
	}

	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			result.BlobStore = "unreachable"
			result.fail("redis_error", err, "Redis ping failed")
			log.Error("health check failed: redis ping", logger.Error(err))
		} else {
			result.BlobStore = "ok"
			result.Details["redis_addr"] = cfg.RedisAddr
		}
	}

	if result.Status == "healthy" {
		log.Info("health check passed")
	}
	return result
}
