package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestCacheAdapter(t *testing.T) *CacheAdapter {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.SegmentsSize = 16
	cfg.Cache.ScheduleSize = 16

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func testSegments() []domain.Segment {
	return []domain.Segment{
		{From: json_types.NewWallClock(8, 0), To: json_types.NewWallClock(9, 0), Occupied: false},
		{From: json_types.NewWallClock(9, 0), To: json_types.NewWallClock(9, 30), Occupied: true},
	}
}

func TestSegmentsCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Store And Get", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		clinicianID := uuid.New()
		date := json_types.NewDate(2026, time.September, 7)

		_, exists := adapter.GetSegments(ctx, clinicianID, date)
		assert.False(t, exists)

		adapter.StoreSegments(ctx, clinicianID, date, testSegments())

		segments, exists := adapter.GetSegments(ctx, clinicianID, date)
		require.True(t, exists)
		assert.Equal(t, testSegments(), segments)
	})

	t.Run("Invalidate Single Day", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		clinicianID := uuid.New()
		date := json_types.NewDate(2026, time.September, 7)

		adapter.StoreSegments(ctx, clinicianID, date, testSegments())
		adapter.StoreSegments(ctx, clinicianID, date.AddDays(1), testSegments())

		adapter.InvalidateSegments(ctx, clinicianID, date)

		_, exists := adapter.GetSegments(ctx, clinicianID, date)
		assert.False(t, exists)
		_, exists = adapter.GetSegments(ctx, clinicianID, date.AddDays(1))
		assert.True(t, exists)
	})

	t.Run("Invalidate Clinician Keeps Others", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		first := uuid.New()
		second := uuid.New()
		date := json_types.NewDate(2026, time.September, 7)

		adapter.StoreSegments(ctx, first, date, testSegments())
		adapter.StoreSegments(ctx, first, date.AddDays(1), testSegments())
		adapter.StoreSegments(ctx, second, date, testSegments())

		adapter.InvalidateClinicianSegments(ctx, first)

		_, exists := adapter.GetSegments(ctx, first, date)
		assert.False(t, exists)
		_, exists = adapter.GetSegments(ctx, first, date.AddDays(1))
		assert.False(t, exists)
		_, exists = adapter.GetSegments(ctx, second, date)
		assert.True(t, exists)
	})

	t.Run("Invalidate All", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		first := uuid.New()
		second := uuid.New()
		date := json_types.NewDate(2026, time.September, 7)

		adapter.StoreSegments(ctx, first, date, testSegments())
		adapter.StoreSegments(ctx, second, date, testSegments())

		adapter.InvalidateAllSegments(ctx)

		_, exists := adapter.GetSegments(ctx, first, date)
		assert.False(t, exists)
		_, exists = adapter.GetSegments(ctx, second, date)
		assert.False(t, exists)
	})
}

func TestScheduleCache(t *testing.T) {
	ctx := context.Background()
	schedule := domain.WeeklySchedule{
		{
			Day:       domain.WeekdayMon,
			StartTime: json_types.NewWallClock(8, 0),
			EndTime:   json_types.NewWallClock(14, 0),
		},
	}

	t.Run("Store And Get", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		clinicianID := uuid.New()

		adapter.StoreWeeklySchedule(ctx, clinicianID, schedule)

		cached, exists := adapter.GetWeeklySchedule(ctx, clinicianID)
		require.True(t, exists)
		assert.Equal(t, schedule, cached)
	})

	t.Run("Expired Entry Is A Miss", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		adapter.scheduleTTL = -time.Second
		clinicianID := uuid.New()

		adapter.StoreWeeklySchedule(ctx, clinicianID, schedule)

		_, exists := adapter.GetWeeklySchedule(ctx, clinicianID)
		assert.False(t, exists)
	})

	t.Run("Invalidate", func(t *testing.T) {
		adapter := newTestCacheAdapter(t)
		clinicianID := uuid.New()

		adapter.StoreWeeklySchedule(ctx, clinicianID, schedule)
		adapter.InvalidateWeeklySchedule(ctx, clinicianID)

		_, exists := adapter.GetWeeklySchedule(ctx, clinicianID)
		assert.False(t, exists)
	})
}

func TestCacheAdapterDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, adapter)
}
