package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

// Минимальная длительность записи на прием
const MinAppointmentDuration = 10 * time.Minute

// Причины отклонения запроса на запись, в порядке проверки
var (
	ErrNoWorkingHours      = errors.New("booking.rejected.no_working_hours")
	ErrOutsideWorkingHours = errors.New("booking.rejected.outside_working_hours")
	ErrTooShort            = errors.New("booking.rejected.too_short")
	ErrSlotConflict        = errors.New("booking.rejected.slot_conflict")
)

// BookingRequest - запрос на новую запись, ожидающий валидации.
// После успешной валидации уходит на бэкенд клиники как Appointment
// со статусом "scheduled"
type BookingRequest struct {
	PatientID   uuid.UUID            `json:"patientId"`
	ClinicianID uuid.UUID            `json:"clinicianId"`
	Date        json_types.Date      `json:"date"`
	StartTime   json_types.WallClock `json:"startTime"`
	EndTime     json_types.WallClock `json:"endTime"`
}

func (r BookingRequest) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
