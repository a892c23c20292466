package availability_service

import (
	"context"
	"fmt"

	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

// ValidateBooking проверяет запрос на запись по порядку, первая ошибка
// останавливает проверку. nil означает, что запрос можно отправлять на
// бэкенд клиники. Движок не видит запросы других клиентов, поэтому
// окончательное слово за бэкендом
func ValidateBooking(request domain.BookingRequest, window *domain.WorkingWindow, segments []domain.Segment) error {
	if window == nil {
		return domain.ErrNoWorkingHours
	}

	if request.StartTime.Before(window.StartTime) || request.EndTime.After(window.EndTime) {
		return domain.ErrOutsideWorkingHours
	}

	if request.Duration() < domain.MinAppointmentDuration {
		return domain.ErrTooShort
	}

	requestStart := request.StartTime.MinuteOfDay()
	requestEnd := request.EndTime.MinuteOfDay()

	for _, segment := range segments {
		if !segment.Occupied {
			continue
		}

		// Полуоткрытые интервалы [a,b) и [c,d) пересекаются, если a < d && c < b.
		// Записи встык конфликтом не считаются
		if requestStart < segment.To.MinuteOfDay() && segment.From.MinuteOfDay() < requestEnd {
			return domain.ErrSlotConflict
		}
	}

	return nil
}

func (s *AvailabilityService) BookAppointment(ctx context.Context, request domain.BookingRequest) (*domain.Appointment, error) {
	s.logger.Info("booking.started", out.LogFields{
		"clinicianId": request.ClinicianID,
		"date":        request.Date,
		"startTime":   request.StartTime,
		"endTime":     request.EndTime,
	})

	schedule, err := s.getWeeklySchedule(ctx, request.ClinicianID)
	if err != nil {
		s.logger.Error("booking.schedule.fetch_failed", out.LogFields{
			"clinicianId": request.ClinicianID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("booking.schedule.fetch_failed: %w", err)
	}

	window := schedule.WindowForDate(request.Date)

	// Для валидации сегменты пересчитываем по свежим данным бэкенда,
	// кэш здесь не используется
	appointments, err := s.getActiveAppointments(ctx, request.ClinicianID, request.Date, request.Date)
	if err != nil {
		s.logger.Error("booking.appointments.fetch_failed", out.LogFields{
			"clinicianId": request.ClinicianID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("booking.appointments.fetch_failed: %w", err)
	}

	segments := DeriveSegments(window, appointments)

	if err := ValidateBooking(request, window, segments); err != nil {
		s.logger.Info("booking.rejected", out.LogFields{
			"clinicianId": request.ClinicianID,
			"date":        request.Date,
			"reason":      err.Error(),
		})
		return nil, err
	}

	appointment, err := s.clinicPort.CreateAppointment(ctx, request)
	if err != nil {
		s.logger.Error("booking.create_failed", out.LogFields{
			"clinicianId": request.ClinicianID,
			"date":        request.Date,
			"error":       err.Error(),
		})
		return nil, err
	}

	// Сегменты этого дня устарели
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.InvalidateSegments(ctx, request.ClinicianID, request.Date)
	}

	s.logger.Info("booking.created", out.LogFields{
		"appointmentId": appointment.ID,
		"clinicianId":   request.ClinicianID,
		"date":          request.Date,
	})

	return appointment, nil
}
