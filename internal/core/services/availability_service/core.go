package availability_service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
)

type AvailabilityService struct {
	clinicPort out.ClinicPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewAvailabilityService(
	clinicPort out.ClinicPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		clinicPort: clinicPort,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("AvailabilityService"),
	}
}

func (s *AvailabilityService) GetDaySegments(ctx context.Context, clinicianID uuid.UUID, date json_types.Date) ([]domain.Segment, []domain.DebugInfo, error) {
	debugInfo := AvailabilityServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}

	s.logger.Info("segments.derive.started", out.LogFields{
		"clinicianId": clinicianID,
		"date":        date,
	})

	get_schedule_debug := domain.DebugInfo{
		Event: "segments.derive.schedule.fetch",
	}
	get_schedule_debug.Start()

	schedule, err := s.getWeeklySchedule(ctx, clinicianID)
	if err != nil {
		s.logger.Error("segments.derive.schedule.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, nil, fmt.Errorf("segments.derive.schedule.fetch_failed: %w", err)
	}
	get_schedule_debug.Elapse()
	debugInfo.AddDebugInfo(get_schedule_debug)

	window := schedule.WindowForDate(date)
	if window == nil {
		// Врач не работает в этот день, записываться некуда
		s.logger.Debug("segments.derive.no_working_hours", out.LogFields{
			"clinicianId": clinicianID,
			"date":        date,
		})
		return make([]domain.Segment, 0), debugInfo.data, nil
	}

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if segments, exists := s.cachePort.GetSegments(ctx, clinicianID, date); exists {
			s.logger.Debug("segments.derive.cache.hit", out.LogFields{
				"clinicianId":   clinicianID,
				"date":          date,
				"segmentsCount": len(segments),
			})
			return segments, debugInfo.data, nil
		}
	}

	s.logger.Debug("segments.derive.cache.miss", out.LogFields{
		"clinicianId": clinicianID,
		"date":        date,
	})

	get_appointments_debug := domain.DebugInfo{
		Event: "segments.derive.appointments.fetch",
	}
	get_appointments_debug.Start()

	appointments, err := s.getActiveAppointments(ctx, clinicianID, date, date)
	if err != nil {
		s.logger.Error("segments.derive.appointments.fetch_failed", out.LogFields{
			"clinicianId": clinicianID,
			"error":       err.Error(),
		})
		return nil, nil, fmt.Errorf("segments.derive.appointments.fetch_failed: %w", err)
	}
	get_appointments_debug.Elapse()
	debugInfo.AddDebugInfo(get_appointments_debug)

	derive_debug := domain.DebugInfo{
		Event: "segments.derive.sweep",
	}
	derive_debug.Start()
	segments := DeriveSegments(window, appointments)
	derive_debug.Elapse()
	debugInfo.AddDebugInfo(derive_debug)

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSegments(ctx, clinicianID, date, segments)
	}

	return segments, debugInfo.data, nil
}

func (s *AvailabilityService) GetBatchDaySegments(ctx context.Context, clinicianID uuid.UUID, dates []json_types.Date) (map[json_types.Date][]domain.Segment, error) {
	result := make(map[json_types.Date][]domain.Segment)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(dates))

	for _, d := range dates {
		wg.Add(1)
		go func(date json_types.Date) {
			defer wg.Done()

			segments, _, err := s.GetDaySegments(ctx, clinicianID, date)
			if err != nil {
				errCh <- err
				return
			}

			mu.Lock()
			result[date] = segments
			mu.Unlock()
		}(d)
	}

	wg.Wait()
	close(errCh)

	// Проверяем ошибки
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// getWeeklySchedule возвращает недельное расписание врача, по возможности из кэша
func (s *AvailabilityService) getWeeklySchedule(ctx context.Context, clinicianID uuid.UUID) (domain.WeeklySchedule, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if schedule, exists := s.cachePort.GetWeeklySchedule(ctx, clinicianID); exists {
			return schedule, nil
		}

		s.logger.Debug("schedule.cache.miss", out.LogFields{
			"clinicianId": clinicianID,
		})
	}

	schedule, err := s.clinicPort.GetWeeklySchedule(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreWeeklySchedule(ctx, clinicianID, schedule)
	}

	return schedule, nil
}

// getActiveAppointments возвращает записи врача за период, занимающие время.
// Завершенные и пропущенные записи отбрасываются
func (s *AvailabilityService) getActiveAppointments(ctx context.Context, clinicianID uuid.UUID, startDate, endDate json_types.Date) ([]domain.Appointment, error) {
	appointments, err := s.clinicPort.GetClinicianAppointments(ctx, clinicianID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsActive() {
			active = append(active, appointment)
		}
	}

	return active, nil
}
