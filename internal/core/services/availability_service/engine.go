package availability_service

import (
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

// Событие развертки: начало или конец записи на прием, в минутах суток
type segmentEvent struct {
	minute int
	// +1 для начала записи, -1 для конца
	delta int
	// Порядок регистрации записи, для стабильного порядка событий
	seq int
}

func wallClockFromMinute(minute int) json_types.WallClock {
	return json_types.NewWallClock(minute/60, minute%60)
}

// DeriveSegments строит сегменты занятости рабочего окна врача на один день.
// Результат упорядочен по From, без дыр и пересечений, покрывает окно
// [StartTime, EndTime) целиком. Сегменты нулевой длины не создаются.
// Если рабочего окна нет, возвращает пустой список - в этот день записываться некуда.
// Записи, выходящие за пределы окна, обрезаются по его границам.
// Пересекающиеся записи допустимы: область пересечения остается занятой,
// пока не закончатся все записи, которые ее покрывают
func DeriveSegments(window *domain.WorkingWindow, appointments []domain.Appointment) []domain.Segment {
	segments := make([]domain.Segment, 0)

	if window == nil {
		return segments
	}

	windowStart := window.StartTime.MinuteOfDay()
	windowEnd := window.EndTime.MinuteOfDay()
	if windowStart >= windowEnd {
		return segments
	}

	events := make(eventSlice, 0, len(appointments)*2)
	for i, appointment := range appointments {
		start := appointment.StartTime.MinuteOfDay()
		end := appointment.EndTime.MinuteOfDay()

		// Обрезаем запись по рабочему окну
		if start < windowStart {
			start = windowStart
		}
		if end > windowEnd {
			end = windowEnd
		}
		if start >= end {
			continue
		}

		events = append(events,
			segmentEvent{minute: start, delta: 1, seq: i},
			segmentEvent{minute: end, delta: -1, seq: i},
		)
	}

	events = events.quickSort()

	// Развертка: курсор идет от начала окна, depth - сколько записей
	// покрывают текущую точку
	cursor := windowStart
	depth := 0

	for _, event := range events {
		if event.minute > cursor {
			segments = append(segments, domain.Segment{
				From:     wallClockFromMinute(cursor),
				To:       wallClockFromMinute(event.minute),
				Occupied: depth > 0,
			})
			cursor = event.minute
		}
		depth += event.delta
	}

	if cursor < windowEnd {
		segments = append(segments, domain.Segment{
			From:     wallClockFromMinute(cursor),
			To:       wallClockFromMinute(windowEnd),
			Occupied: depth > 0,
		})
	}

	return segments
}
