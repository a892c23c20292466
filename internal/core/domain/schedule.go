package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

type Weekday string

const (
	WeekdayMon Weekday = "mon"
	WeekdayTue Weekday = "tue"
	WeekdayWed Weekday = "wed"
	WeekdayThu Weekday = "thu"
	WeekdayFri Weekday = "fri"
	WeekdaySat Weekday = "sat"
	WeekdaySun Weekday = "sun"
)

var WeekdayMap = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMon,
	time.Tuesday:   WeekdayTue,
	time.Wednesday: WeekdayWed,
	time.Thursday:  WeekdayThu,
	time.Friday:    WeekdayFri,
	time.Saturday:  WeekdaySat,
	time.Sunday:    WeekdaySun,
}

// Убираем диакритику из названий дней, которые хранит бэкенд клиники
var weekdayAccentReplacer = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
)

var weekdayNames = map[string]Weekday{
	"lunes":     WeekdayMon,
	"martes":    WeekdayTue,
	"miercoles": WeekdayWed,
	"jueves":    WeekdayThu,
	"viernes":   WeekdayFri,
	"sabado":    WeekdaySat,
	"domingo":   WeekdaySun,
	"monday":    WeekdayMon,
	"tuesday":   WeekdayTue,
	"wednesday": WeekdayWed,
	"thursday":  WeekdayThu,
	"friday":    WeekdayFri,
	"saturday":  WeekdaySat,
	"sunday":    WeekdaySun,
	"mon":       WeekdayMon,
	"tue":       WeekdayTue,
	"wed":       WeekdayWed,
	"thu":       WeekdayThu,
	"fri":       WeekdayFri,
	"sat":       WeekdaySat,
	"sun":       WeekdaySun,
}

// ParseWeekday приводит название дня недели к каноническому значению.
// Сравнение нечувствительно к регистру и акцентам: "Miércoles" == "miercoles"
func ParseWeekday(name string) (Weekday, error) {
	normalized := weekdayAccentReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))

	weekday, ok := weekdayNames[normalized]
	if !ok {
		return "", fmt.Errorf("unknown weekday name: %s", name)
	}

	return weekday, nil
}

// WorkingWindow - рабочее окно врача в пределах одного дня
type WorkingWindow struct {
	StartTime json_types.WallClock `json:"startTime"`
	EndTime   json_types.WallClock `json:"endTime"`
}

// WorkingHours - одна строка недельного расписания врача
type WorkingHours struct {
	Day       Weekday              `json:"day"`
	StartTime json_types.WallClock `json:"startTime"`
	EndTime   json_types.WallClock `json:"endTime"`
}

func (h *WorkingHours) UnmarshalJSON(data []byte) error {
	type workingHoursAlias struct {
		Day       string               `json:"day"`
		StartTime json_types.WallClock `json:"startTime"`
		EndTime   json_types.WallClock `json:"endTime"`
	}

	var alias workingHoursAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	day, err := ParseWeekday(alias.Day)
	if err != nil {
		return err
	}

	*h = WorkingHours{
		Day:       day,
		StartTime: alias.StartTime,
		EndTime:   alias.EndTime,
	}
	return nil
}

// WeeklySchedule - недельное расписание врача, не больше одной строки на день
type WeeklySchedule []WorkingHours

// WindowFor возвращает рабочее окно для дня недели
// Если врач не работает в этот день, возвращает nil
func (s WeeklySchedule) WindowFor(day Weekday) *WorkingWindow {
	for _, hours := range s {
		if hours.Day == day {
			return &WorkingWindow{
				StartTime: hours.StartTime,
				EndTime:   hours.EndTime,
			}
		}
	}

	return nil
}

// WindowForDate возвращает рабочее окно для дня недели указанной даты
func (s WeeklySchedule) WindowForDate(date json_types.Date) *WorkingWindow {
	return s.WindowFor(WeekdayMap[date.Weekday()])
}
