package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sgc-clinic/availability-service/internal/config"
	"github.com/sgc-clinic/availability-service/internal/core/domain"
	"github.com/sgc-clinic/availability-service/internal/core/json_types"
	"github.com/sgc-clinic/availability-service/internal/core/ports/in"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/availability/:clinicianId/segments", c.getDaySegments)
		api.POST("/availability/:clinicianId/segments-batch", c.getBatchDaySegments)
		api.GET("/availability/:clinicianId/overview", c.getOverview)
		api.POST("/bookings", c.bookAppointment)
	}
}

type BatchSegmentsRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type BookingRequestBody struct {
	PatientID   uuid.UUID `json:"patientId" binding:"required"`
	ClinicianID uuid.UUID `json:"clinicianId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	StartTime   string    `json:"startTime" binding:"required"`
	EndTime     string    `json:"endTime" binding:"required"`
}

func (c *AvailabilityController) getDaySegments(ctx *gin.Context) {
	clinicianID, err := uuid.Parse(ctx.Param("clinicianId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clinician ID format"})
		return
	}

	date, err := json_types.ParseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	segments, debugInfo, err := c.useCase.GetDaySegments(ctx.Request.Context(), clinicianID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"clinicianId": clinicianID,
		"date":        date,
		"segments":    segments,
	}
	// Тайминги отдаем только локально
	if c.cfg.IsLocal() {
		response["debug"] = debugInfo
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AvailabilityController) getBatchDaySegments(ctx *gin.Context) {
	clinicianID, err := uuid.Parse(ctx.Param("clinicianId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clinician ID format"})
		return
	}

	var req BatchSegmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dates := make([]json_types.Date, 0, len(req.Dates))
	for _, str := range req.Dates {
		date, err := json_types.ParseDate(str)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format: " + str})
			return
		}
		dates = append(dates, date)
	}

	result, err := c.useCase.GetBatchDaySegments(ctx.Request.Context(), clinicianID, dates)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Ключи карты приводим к строкам дат
	results := make(map[string][]domain.Segment, len(result))
	for date, segments := range result {
		results[date.String()] = segments
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (c *AvailabilityController) getOverview(ctx *gin.Context) {
	clinicianID, err := uuid.Parse(ctx.Param("clinicianId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clinician ID format"})
		return
	}

	startDate, err := json_types.ParseDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return
	}

	endDate, err := json_types.ParseDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return
	}

	overview, err := c.useCase.GetOverview(ctx.Request.Context(), clinicianID, startDate, endDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"clinicianId": clinicianID,
		"days":        overview,
	})
}

func (c *AvailabilityController) bookAppointment(ctx *gin.Context) {
	var body BookingRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := json_types.ParseDate(body.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	startTime, err := json_types.ParseWallClock(body.StartTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time format"})
		return
	}

	endTime, err := json_types.ParseWallClock(body.EndTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time format"})
		return
	}

	request := domain.BookingRequest{
		PatientID:   body.PatientID,
		ClinicianID: body.ClinicianID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
	}

	appointment, err := c.useCase.BookAppointment(ctx.Request.Context(), request)
	if err != nil {
		// Отклонение запроса - штатная ситуация, а не ошибка сервиса
		if isBookingRejection(err) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

func isBookingRejection(err error) bool {
	return errors.Is(err, domain.ErrNoWorkingHours) ||
		errors.Is(err, domain.ErrOutsideWorkingHours) ||
		errors.Is(err, domain.ErrTooShort) ||
		errors.Is(err, domain.ErrSlotConflict)
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
