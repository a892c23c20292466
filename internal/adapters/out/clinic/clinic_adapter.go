package clinic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type ClinicAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewClinicAdapter(cfg *config.Config, logger out.LoggerPort) *ClinicAdapter {
	return &ClinicAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Clinic.URL,
		username: cfg.Clinic.Username,
		password: cfg.Clinic.Password,
		logger:   logger,
	}
}

func (a *ClinicAdapter) GetWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) (domain.WeeklySchedule, error) {
	a.logger.Info("clinic.schedule.fetch", out.LogFields{
		"clinicianId": clinicianID,
	})

	url := fmt.Sprintf("%s/clinicians/%s/schedule", a.baseURL, clinicianID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("clinic.schedule.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("clinic.schedule.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("clinic.schedule.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"status":      resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var schedule domain.WeeklySchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		a.logger.Error("clinic.schedule.decode_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("clinic.schedule.fetch_success", out.LogFields{
		"clinicianId": clinicianID,
		"daysCount":   len(schedule),
	})

	return schedule, nil
}

// Получение записей врача за период, бэкенд отдает их списочной оберткой
func (a *ClinicAdapter) GetClinicianAppointments(ctx context.Context, clinicianID uuid.UUID, startDate, endDate json_types.Date) ([]domain.Appointment, error) {
	a.logger.Info("clinic.appointments.fetch", out.LogFields{
		"clinicianId": clinicianID,
	})

	url := fmt.Sprintf("%s/clinicians/%s/appointments", a.baseURL, clinicianID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("clinic.appointments.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	query := nurl.Values{}
	query.Add("startDate", startDate.String())
	query.Add("endDate", endDate.String())
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("clinic.appointments.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("clinic.appointments.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var listResponse out.ClinicListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		a.logger.Error("clinic.appointments.decode_response_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if len(listResponse.Entry) == 0 {
		a.logger.Info("clinic.appointments.no_entry", out.LogFields{})
		return nil, nil
	}

	var appointments []domain.Appointment

	for _, entry := range listResponse.Entry {
		var appointment domain.Appointment
		if err := json.Unmarshal(entry, &appointment); err != nil {
			a.logger.Error("clinic.appointments.decode_resource_failed", out.LogFields{
				"error": err.Error(),
			})
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	a.logger.Debug("clinic.appointments.fetch_success", out.LogFields{
		"count": len(appointments),
	})

	return appointments, nil
}

type createAppointmentPayload struct {
	PatientID   uuid.UUID                `json:"patientId"`
	ClinicianID uuid.UUID                `json:"clinicianId"`
	Date        json_types.Date          `json:"date"`
	StartTime   json_types.WallClock     `json:"startTime"`
	EndTime     json_types.WallClock     `json:"endTime"`
	Status      domain.AppointmentStatus `json:"status"`
}

// Создание записи на прием. За конкурентные конфликты отвечает бэкенд:
// на пересечение с параллельной записью он отвечает 409
func (a *ClinicAdapter) CreateAppointment(ctx context.Context, request domain.BookingRequest) (*domain.Appointment, error) {
	a.logger.Info("clinic.appointment.create", out.LogFields{
		"clinicianId": request.ClinicianID,
		"date":        request.Date,
	})

	payload := createAppointmentPayload{
		PatientID:   request.PatientID,
		ClinicianID: request.ClinicianID,
		Date:        request.Date,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Status:      domain.AppointmentStatusScheduled,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/appointments", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		a.logger.Error("clinic.appointment.create_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("clinic.appointment.create_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	// Бэкенд увидел пересечение с чужой записью раньше нас
	if resp.StatusCode == http.StatusConflict {
		a.logger.Warn("clinic.appointment.create_conflict", out.LogFields{
			"clinicianId": request.ClinicianID,
			"date":        request.Date,
		})
		return nil, domain.ErrSlotConflict
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		a.logger.Error("clinic.appointment.create_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var appointment domain.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		a.logger.Error("clinic.appointment.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("clinic.appointment.create_success", out.LogFields{
		"appointmentId": appointment.ID,
	})

	return &appointment, nil
}
