package availability_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

// ClassifyDay определяет статус дня по его сегментам.
// День считается полным, только когда не осталось ни одного свободного
// сегмента. Суммирование длительностей записей здесь не используется:
// пересекающиеся записи искажают сумму, слияние интервалов - нет
func ClassifyDay(window *domain.WorkingWindow, segments []domain.Segment) domain.DayStatus {
	if window == nil {
		return domain.DayStatusNone
	}

	hasFree := false
	hasOccupied := false
	for _, segment := range segments {
		if segment.Occupied {
			hasOccupied = true
		} else {
			hasFree = true
		}
	}

	if !hasOccupied {
		return domain.DayStatusFree
	}
	if !hasFree {
		return domain.DayStatusFull
	}
	return domain.DayStatusPartial
}

func (s *AvailabilityService) GetOverview(ctx context.Context, clinicianID uuid.UUID, startDate, endDate json_types.Date) ([]domain.OverviewDay, error) {
	s.logger.Info("overview.started", out.LogFields{
		"clinicianId": clinicianID,
		"startDate":   startDate,
		"endDate":     endDate,
	})

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("overview.invalid_range: %s > %s", startDate, endDate)
	}

	schedule, err := s.getWeeklySchedule(ctx, clinicianID)
	if err != nil {
		s.logger.Error("overview.schedule.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("overview.schedule.fetch_failed: %w", err)
	}

	// Записи за весь диапазон забираем одним запросом и раскладываем по датам
	appointments, err := s.getActiveAppointments(ctx, clinicianID, startDate, endDate)
	if err != nil {
		s.logger.Error("overview.appointments.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("overview.appointments.fetch_failed: %w", err)
	}

	appointmentsByDate := make(map[json_types.Date][]domain.Appointment)
	for _, appointment := range appointments {
		appointmentsByDate[appointment.Date] = append(appointmentsByDate[appointment.Date], appointment)
	}

	overview := make([]domain.OverviewDay, 0)
	for date := startDate; !date.After(endDate); date = date.AddDays(1) {
		window := schedule.WindowForDate(date)
		segments := DeriveSegments(window, appointmentsByDate[date])

		overview = append(overview, domain.OverviewDay{
			Date:   date,
			Status: ClassifyDay(window, segments),
		})
	}

	return overview, nil
}
