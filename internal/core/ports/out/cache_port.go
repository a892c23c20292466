package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

type CachePort interface {
	// Кэширование сегментов
	GetSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) ([]domain.Segment, bool)
	StoreSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date, segments []domain.Segment)
	InvalidateSegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date)
	InvalidateClinicianSegments(ctx context.Context, clinicianID uuid.UUID)
	InvalidateAllSegments(ctx context.Context)

	// Кэширование недельного расписания
	GetWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) (domain.WeeklySchedule, bool)
	StoreWeeklySchedule(ctx context.Context, clinicianID uuid.UUID, schedule domain.WeeklySchedule)
	InvalidateWeeklySchedule(ctx context.Context, clinicianID uuid.UUID)
}
