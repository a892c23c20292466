package availability_service

import (
	"sync"

	"github.com/sgc-clinic/availability-service/internal/core/domain"
)

type AvailabilityServiceDebug struct {
	mu   sync.Mutex
	data []domain.DebugInfo
}

func (d *AvailabilityServiceDebug) AddDebugInfo(info domain.DebugInfo) {
	d.mu.Lock()
	d.data = append(d.data, info)
	d.mu.Unlock()
}
