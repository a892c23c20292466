package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// WallClock - время суток без даты и таймзоны, с точностью до минуты.
// Бэкенд присылает "HH:MM" или "HH:MM:SS", отдаем всегда "HH:MM".
type WallClock struct {
	Time time.Time
}

func NewWallClock(hour, minute int) WallClock {
	return WallClock{Time: time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func ParseWallClock(str string) (WallClock, error) {
	parsedTime, err := time.Parse("15:04", str)
	// Если не удалось, пробуем формат с секундами
	if err != nil {
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return WallClock{}, fmt.Errorf("failed to parse wall clock time: %v", err)
		}
	}

	return NewWallClock(parsedTime.Hour(), parsedTime.Minute()), nil
}

func (t *WallClock) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseWallClock(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t WallClock) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t WallClock) String() string {
	return t.Time.Format("15:04")
}

// MinuteOfDay - минута суток, используется движком для интервальной арифметики
func (t WallClock) MinuteOfDay() int {
	return t.Time.Hour()*60 + t.Time.Minute()
}

func (t WallClock) Before(other WallClock) bool {
	return t.MinuteOfDay() < other.MinuteOfDay()
}

func (t WallClock) After(other WallClock) bool {
	return t.MinuteOfDay() > other.MinuteOfDay()
}

func (t WallClock) Equal(other WallClock) bool {
	return t.MinuteOfDay() == other.MinuteOfDay()
}

func (t WallClock) Sub(other WallClock) time.Duration {
	return time.Duration(t.MinuteOfDay()-other.MinuteOfDay()) * time.Minute
}
