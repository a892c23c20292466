package availability_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

// Инвалидация кэша по событиям бэкенда клиники

func (s *AvailabilityService) InvalidateSegmentsCache(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateSegments(ctx, clinicianID, date)

	return nil
}

func (s *AvailabilityService) InvalidateClinicianCache(ctx context.Context, clinicianID uuid.UUID) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateClinicianSegments(ctx, clinicianID)
	s.cachePort.InvalidateWeeklySchedule(ctx, clinicianID)

	return nil
}

func (s *AvailabilityService) InvalidateAllCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAllSegments(ctx)

	return nil
}

// При изменении расписания устаревают и сегменты всех дней врача
func (s *AvailabilityService) InvalidateScheduleCache(ctx context.Context, clinicianID uuid.UUID) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateWeeklySchedule(ctx, clinicianID)
	s.cachePort.InvalidateClinicianSegments(ctx, clinicianID)

	return nil
}
