package services

import (
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/ports/out"
	"github.com/sgc-clinic/availability-service/internal/core/services/availability_service"
)

type AvailabilityService = availability_service.AvailabilityService

func NewAvailabilityService(
	clinicPort out.ClinicPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return availability_service.NewAvailabilityService(clinicPort, cachePort, cfg, logger)
}
