package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type segmentsCacheKey struct {
	ClinicianID uuid.UUID
	Date        string
}

type scheduleCacheEntry struct {
	Schedule  domain.WeeklySchedule
	Timestamp time.Time
}

type CacheAdapter struct {
	segmentsCache *lru.Cache[segmentsCacheKey, []domain.Segment]
	scheduleCache *lru.Cache[uuid.UUID, *scheduleCacheEntry]
	scheduleTTL   time.Duration
	mu            sync.RWMutex
	logger        out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruSegmentsCache, err := lru.New[segmentsCacheKey, []domain.Segment](cfg.Cache.SegmentsSize)
	if err != nil {
		logger.Error("cache.segments.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SegmentsSize,
		})
		return nil, err
	}

	lruScheduleCache, err := lru.New[uuid.UUID, *scheduleCacheEntry](cfg.Cache.ScheduleSize)
	if err != nil {
		logger.Error("cache.schedule.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.ScheduleSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		segmentsCache: lruSegmentsCache,
		scheduleCache: lruScheduleCache,
		scheduleTTL:   30 * time.Minute,
		logger:        logger.WithModule("CacheAdapter"),
	}, nil
}
