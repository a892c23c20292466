package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

func TestParseWeekday(t *testing.T) {
	t.Run("Spanish Names With Accents", func(t *testing.T) {
		cases := map[string]Weekday{
			"Miércoles": WeekdayWed,
			"miercoles": WeekdayWed,
			"SÁBADO":    WeekdaySat,
			"lunes":     WeekdayMon,
			"Domingo":   WeekdaySun,
		}

		for name, expected := range cases {
			weekday, err := ParseWeekday(name)
			require.NoError(t, err, name)
			assert.Equal(t, expected, weekday, name)
		}
	})

	t.Run("English Names And Short Forms", func(t *testing.T) {
		cases := map[string]Weekday{
			"Monday":   WeekdayMon,
			"friday":   WeekdayFri,
			"tue":      WeekdayTue,
			"THU":      WeekdayThu,
			" sunday ": WeekdaySun,
		}

		for name, expected := range cases {
			weekday, err := ParseWeekday(name)
			require.NoError(t, err, name)
			assert.Equal(t, expected, weekday, name)
		}
	})

	t.Run("Unknown Name", func(t *testing.T) {
		_, err := ParseWeekday("someday")
		assert.Error(t, err)
	})
}

func TestWorkingHoursUnmarshal(t *testing.T) {
	t.Run("Day Name Is Normalized", func(t *testing.T) {
		var hours WorkingHours
		err := json.Unmarshal([]byte(`{"day":"Miércoles","startTime":"08:00","endTime":"14:00"}`), &hours)
		require.NoError(t, err)

		assert.Equal(t, WeekdayWed, hours.Day)
		assert.Equal(t, "08:00", hours.StartTime.String())
		assert.Equal(t, "14:00", hours.EndTime.String())
	})

	t.Run("Unknown Day Fails", func(t *testing.T) {
		var hours WorkingHours
		err := json.Unmarshal([]byte(`{"day":"someday","startTime":"08:00","endTime":"14:00"}`), &hours)
		assert.Error(t, err)
	})
}

func TestWeeklyScheduleWindow(t *testing.T) {
	schedule := WeeklySchedule{
		{
			Day:       WeekdayMon,
			StartTime: json_types.NewWallClock(8, 0),
			EndTime:   json_types.NewWallClock(14, 0),
		},
		{
			Day:       WeekdayWed,
			StartTime: json_types.NewWallClock(10, 0),
			EndTime:   json_types.NewWallClock(18, 0),
		},
	}

	t.Run("Working Day", func(t *testing.T) {
		window := schedule.WindowFor(WeekdayWed)
		require.NotNil(t, window)
		assert.Equal(t, "10:00", window.StartTime.String())
		assert.Equal(t, "18:00", window.EndTime.String())
	})

	t.Run("Non Working Day", func(t *testing.T) {
		assert.Nil(t, schedule.WindowFor(WeekdaySun))
	})

	t.Run("By Date", func(t *testing.T) {
		// 2026-09-07 - понедельник
		date := json_types.NewDate(2026, time.September, 7)
		require.Equal(t, time.Monday, date.Weekday())

		window := schedule.WindowForDate(date)
		require.NotNil(t, window)
		assert.Equal(t, "08:00", window.StartTime.String())

		assert.Nil(t, schedule.WindowForDate(date.AddDays(1)))
	})
}

func TestAppointmentIsActive(t *testing.T) {
	active := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusForVitals,
		AppointmentStatusWaiting,
		AppointmentStatusInConsultation,
	}
	for _, status := range active {
		assert.True(t, Appointment{Status: status}.IsActive(), string(status))
	}

	inactive := []AppointmentStatus{
		AppointmentStatusFinished,
		AppointmentStatusMissed,
	}
	for _, status := range inactive {
		assert.False(t, Appointment{Status: status}.IsActive(), string(status))
	}
}
