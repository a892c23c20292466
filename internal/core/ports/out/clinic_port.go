package out

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

// ClinicListResponse - обертка списочных ответов бэкенда клиники
type ClinicListResponse struct {
	Entry []json.RawMessage `json:"entry"`
}

type ClinicPort interface {
	// Методы для работы с расписанием врача
	GetWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) (domain.WeeklySchedule, error)

	// Методы для работы с записями на прием
	GetClinicianAppointments(ctx context.Context, clinicianID uuid.UUID, startDate, endDate json_types.Date) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, request domain.BookingRequest) (*domain.Appointment, error)
}
