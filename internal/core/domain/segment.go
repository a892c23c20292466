package domain

import (
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
)

// Segment - производный интервал внутри рабочего окна врача.
// Сегменты одного дня упорядочены по From, не пересекаются и покрывают
// рабочее окно без дыр. Никогда не сохраняются
type Segment struct {
	From     json_types.WallClock `json:"from"`
	To       json_types.WallClock `json:"to"`
	Occupied bool                 `json:"occupied"`
}
