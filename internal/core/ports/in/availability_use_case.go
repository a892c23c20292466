package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

type AvailabilityUseCase interface {
	// Сегменты свободного и занятого времени врача на один день
	GetDaySegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) ([]domain.Segment, []domain.DebugInfo, error)

	// Сегменты на несколько дней сразу
	GetBatchDaySegments(ctx context.Context, clinicianID uuid.UUID, dates []json_types.Date) (map[json_types.Date][]domain.Segment, error)

	// Статус занятости каждого дня в диапазоне дат
	GetOverview(ctx context.Context, clinicianID uuid.UUID, startDate, endDate json_types.Date) ([]domain.OverviewDay, error)

	// Валидация запроса и создание записи на прием через бэкенд клиники
	BookAppointment(ctx context.Context, request domain.BookingRequest) (*domain.Appointment, error)

	// Инвалидация кэша при изменении записей на прием
	InvalidateSegmentsCache(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) error
	InvalidateClinicianCache(ctx context.Context, clinicianID uuid.UUID) error
	InvalidateAllCache(ctx context.Context) error

	// Инвалидация кэша при изменении недельного расписания
	InvalidateScheduleCache(ctx context.Context, clinicianID uuid.UUID) error
}
