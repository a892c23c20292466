package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

// Кэширование недельного расписания, запись протухает по TTL

func (c *CacheAdapter) GetWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) (domain.WeeklySchedule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.scheduleCache.Get(clinicianID)
	if !exists {
		c.logger.Debug("cache.schedule.get.miss", out.LogFields{
			"clinicianId": clinicianID,
		})
		return nil, false
	}

	if time.Since(entry.Timestamp) > c.scheduleTTL {
		c.logger.Debug("cache.schedule.get.expired", out.LogFields{
			"clinicianId": clinicianID,
		})
		return nil, false
	}

	c.logger.Debug("cache.schedule.get.hit", out.LogFields{
		"clinicianId": clinicianID,
		"daysCount":   len(entry.Schedule),
	})
	return entry.Schedule, true
}

func (c *CacheAdapter) StoreWeeklySchedule(ctx context.Context, clinicianID uuid.UUID, schedule domain.WeeklySchedule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.schedule.store", out.LogFields{
		"clinicianId": clinicianID,
		"daysCount":   len(schedule),
	})

	c.scheduleCache.Add(clinicianID, &scheduleCacheEntry{
		Schedule:  schedule,
		Timestamp: time.Now(),
	})
}

func (c *CacheAdapter) InvalidateWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scheduleCache.Remove(clinicianID)
}
