package domain

import (
	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled      AppointmentStatus = "scheduled"
	AppointmentStatusForVitals      AppointmentStatus = "for_vitals"
	AppointmentStatusWaiting        AppointmentStatus = "waiting"
	AppointmentStatusInConsultation AppointmentStatus = "in_consultation"
	AppointmentStatusFinished       AppointmentStatus = "finished"
	AppointmentStatusMissed         AppointmentStatus = "missed"
)

type Appointment struct {
	ID          uuid.UUID            `json:"id"`
	PatientID   uuid.UUID            `json:"patientId"`
	ClinicianID uuid.UUID            `json:"clinicianId"`
	Date        json_types.Date      `json:"date"`
	StartTime   json_types.WallClock `json:"startTime"`
	EndTime     json_types.WallClock `json:"endTime"`
	Status      AppointmentStatus    `json:"status"`
}

// IsActive - занимает ли запись время в расписании.
// Завершенные и пропущенные записи время не занимают
func (a Appointment) IsActive() bool {
	return a.Status != AppointmentStatusFinished && a.Status != AppointmentStatusMissed
}
