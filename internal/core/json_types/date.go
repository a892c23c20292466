package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse("2006-01-02", str)
	// Если не удалось, пробуем дату со временем без таймзоны
	if err != nil {
		parsedDate, err = time.Parse("2006-01-02T15:04:05", str)
		if err != nil {
			// Если не удалось, пробуем RFC3339
			parsedDate, err = time.Parse(time.RFC3339, str)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// Date - календарная дата без времени и таймзоны
type Date struct {
	Date time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(str string) (Date, error) {
	parsedDate, err := parseDate(str)
	if err != nil {
		return Date{}, err
	}

	return NewDate(parsedDate.Year(), parsedDate.Month(), parsedDate.Day()), nil
}

func (t *Date) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Date) String() string {
	return t.Date.Format("2006-01-02")
}

func (t Date) Weekday() time.Weekday {
	return t.Date.Weekday()
}

func (t Date) Equal(other Date) bool {
	return t.Date.Equal(other.Date)
}

func (t Date) IsZero() bool {
	return t.Date.IsZero()
}

func (t Date) AddDays(days int) Date {
	next := t.Date.AddDate(0, 0, days)
	return NewDate(next.Year(), next.Month(), next.Day())
}

func (t Date) Before(other Date) bool {
	return t.Date.Before(other.Date)
}

func (t Date) After(other Date) bool {
	return t.Date.After(other.Date)
}
