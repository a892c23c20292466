package cache

import (
	"context"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

// Кэширование сегментов, ключ - врач + дата

func (c *CacheAdapter) GetSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) ([]domain.Segment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := segmentsCacheKey{ClinicianID: clinicianID, Date: date.String()}

	segments, exists := c.segmentsCache.Get(key)
	if !exists {
		c.logger.Debug("cache.segments.get.miss", out.LogFields{
			"clinicianId": clinicianID,
			"date":        date,
		})
		return nil, false
	}

	c.logger.Debug("cache.segments.get.hit", out.LogFields{
		"clinicianId":   clinicianID,
		"date":          date,
		"segmentsCount": len(segments),
	})
	return segments, true
}

func (c *CacheAdapter) StoreSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date, segments []domain.Segment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.segments.store", out.LogFields{
		"clinicianId":   clinicianID,
		"date":          date,
		"segmentsCount": len(segments),
	})

	key := segmentsCacheKey{ClinicianID: clinicianID, Date: date.String()}
	c.segmentsCache.Add(key, segments)
}

func (c *CacheAdapter) InvalidateSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := segmentsCacheKey{ClinicianID: clinicianID, Date: date.String()}
	c.segmentsCache.Remove(key)
}

// Инвалидация всех дней одного врача
func (c *CacheAdapter) InvalidateClinicianSegments(ctx context.Context, clinicianID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.segmentsCache.Keys() {
		if key.ClinicianID == clinicianID {
			c.segmentsCache.Remove(key)
		}
	}
}

func (c *CacheAdapter) InvalidateAllSegments(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.segmentsCache.Purge()
}
