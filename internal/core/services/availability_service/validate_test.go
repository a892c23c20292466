package availability_service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

func bookingRequest(startHour, startMinute, endHour, endMinute int) domain.BookingRequest {
	return domain.BookingRequest{
		StartTime: json_types.NewWallClock(startHour, startMinute),
		EndTime:   json_types.NewWallClock(endHour, endMinute),
	}
}

func TestValidateBooking(t *testing.T) {
	// Врач работает 08:00-12:00, одна запись 09:00-09:30
	win := window(8, 0, 12, 0)
	segments := DeriveSegments(win, []domain.Appointment{appointment(9, 0, 9, 30)})

	t.Run("Accepted", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(10, 0, 10, 20), win, segments)
		assert.NoError(t, err)
	})

	t.Run("No Working Hours", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(10, 0, 10, 20), nil, nil)
		assert.ErrorIs(t, err, domain.ErrNoWorkingHours)
	})

	t.Run("Outside Working Hours", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(7, 30, 8, 30), win, segments)
		assert.ErrorIs(t, err, domain.ErrOutsideWorkingHours)

		err = ValidateBooking(bookingRequest(11, 50, 12, 30), win, segments)
		assert.ErrorIs(t, err, domain.ErrOutsideWorkingHours)
	})

	t.Run("Too Short", func(t *testing.T) {
		// 5 минут - меньше минимальной длительности
		err := ValidateBooking(bookingRequest(9, 0, 9, 5), win, segments)
		assert.ErrorIs(t, err, domain.ErrTooShort)
	})

	t.Run("Exactly Minimum Duration", func(t *testing.T) {
		// Ровно 10 минут проходит
		err := ValidateBooking(bookingRequest(10, 0, 10, 10), win, segments)
		assert.NoError(t, err)
	})

	t.Run("Slot Conflict", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(9, 15, 9, 45), win, segments)
		assert.ErrorIs(t, err, domain.ErrSlotConflict)
	})

	t.Run("Conflict Inside Occupied Segment", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(9, 0, 9, 30), win, segments)
		assert.ErrorIs(t, err, domain.ErrSlotConflict)
	})

	t.Run("Boundary Touching Is Allowed", func(t *testing.T) {
		// Запись встык к занятому сегменту конфликтом не считается
		err := ValidateBooking(bookingRequest(9, 30, 10, 0), win, segments)
		assert.NoError(t, err)

		err = ValidateBooking(bookingRequest(8, 30, 9, 0), win, segments)
		assert.NoError(t, err)
	})

	t.Run("Rules Order", func(t *testing.T) {
		// Запрос и вне окна, и слишком короткий: побеждает первая проверка
		err := ValidateBooking(bookingRequest(7, 0, 7, 5), win, segments)
		assert.ErrorIs(t, err, domain.ErrOutsideWorkingHours)
	})

	t.Run("Window Edges Are Inclusive", func(t *testing.T) {
		err := ValidateBooking(bookingRequest(8, 0, 8, 10), win, segments)
		assert.NoError(t, err)

		err = ValidateBooking(bookingRequest(11, 50, 12, 0), win, segments)
		assert.NoError(t, err)
	})
}
