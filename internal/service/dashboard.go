// internal/service/dashboard.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"candidate-tracker/internal/common/database"
	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/models"
	"candidate-tracker/internal/store"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardService serves the aggregate counts, fronted by an optional Redis
// cache. A nil cache means every request hits Postgres.
type DashboardService struct {
	dashboard *store.DashboardStore
	cache     *database.RedisClient
	logger    logger.Logger
}

func NewDashboardService(dashboard *store.DashboardStore, cache *database.RedisClient, log logger.Logger) *DashboardService {
	return &DashboardService{
		dashboard: dashboard,
		cache:     cache,
		logger:    log.WithFields(map[string]interface{}{"component": "dashboard-service"}),
	}
}

// Stats returns total and per-status candidate counts. Cache failures fall
// through to Postgres.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to aggregate dashboard stats", err)
	}

	if s.cache != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL); err != nil {
				s.logger.Warn("stats cache write failed", map[string]interface{}{"error": err})
			}
		}
	}

	return stats, nil
}
