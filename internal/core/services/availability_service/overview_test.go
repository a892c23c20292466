package availability_service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgc-clinic/availability-service/internal/core/domain"
)

func TestClassifyDay(t *testing.T) {
	win := window(8, 0, 10, 0)

	t.Run("No Working Window", func(t *testing.T) {
		assert.Equal(t, domain.DayStatusNone, ClassifyDay(nil, nil))
	})

	t.Run("Free Day", func(t *testing.T) {
		segments := DeriveSegments(win, nil)
		assert.Equal(t, domain.DayStatusFree, ClassifyDay(win, segments))
	})

	t.Run("Partial Day", func(t *testing.T) {
		segments := DeriveSegments(win, []domain.Appointment{appointment(8, 0, 9, 0)})
		assert.Equal(t, domain.DayStatusPartial, ClassifyDay(win, segments))
	})

	t.Run("Full Day", func(t *testing.T) {
		segments := DeriveSegments(win, []domain.Appointment{
			appointment(8, 0, 9, 0),
			appointment(9, 0, 10, 0),
		})
		assert.Equal(t, domain.DayStatusFull, ClassifyDay(win, segments))
	})

	t.Run("Overlapping Appointments Do Not Fill The Day", func(t *testing.T) {
		// Суммарная длительность записей равна длительности окна, но они
		// пересекаются: час 09:00-10:00 остается свободным
		segments := DeriveSegments(win, []domain.Appointment{
			appointment(8, 0, 9, 0),
			appointment(8, 0, 9, 0),
		})
		assert.Equal(t, domain.DayStatusPartial, ClassifyDay(win, segments))
	})
}
