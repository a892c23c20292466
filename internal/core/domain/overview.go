package domain

import (
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

type DayStatus string

const (
	// Нет рабочего окна в этот день
	DayStatusNone DayStatus = "none"
	DayStatusFree DayStatus = "free"
	// Остались и свободные, и занятые сегменты
	DayStatusPartial DayStatus = "partial"
	// Свободных сегментов не осталось
	DayStatusFull DayStatus = "full"
)

// OverviewDay - статус одного дня в обзоре календаря
type OverviewDay struct {
	Date   json_types.Date `json:"date"`
	Status DayStatus       `json:"status"`
}
