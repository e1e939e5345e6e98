package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scans          *usecase.ScanService
	totals         *usecase.TotalsService
	clock          domain.Clock
	storageEnabled bool
}

// NewHandler creates a new HTTP handler
func NewHandler(scans *usecase.ScanService, totals *usecase.TotalsService, clock domain.Clock, storageEnabled bool) *Handler {
	return &Handler{
		scans:          scans,
		totals:         totals,
		clock:          clock,
		storageEnabled: storageEnabled,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"service":         "nutrilog-backend",
		"version":         "1.1.0",
		"time":            h.clock.EntryKey(),
		"storage_enabled": h.storageEnabled,
	})
}

// Scan resolves a prefixed id from a JSON body.
// B... barcode scan, L... water log, W<digits> workout calorie log,
// W<other> legacy workout read.
func (h *Handler) Scan(c *gin.Context) {
	var req domain.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scans.Resolve(c.Request.Context(), req.PrefixedID, req.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScanQuery resolves a prefixed id from query parameters.
func (h *Handler) ScanQuery(c *gin.Context) {
	prefixedID := c.Query("prefixed_id")
	if prefixedID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefixed_id is required"})
		return
	}

	result, err := h.scans.Resolve(c.Request.Context(), prefixedID, c.Query("user_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScanBarcode handles the direct barcode path, bypassing prefix parsing.
func (h *Handler) ScanBarcode(c *gin.Context) {
	var req domain.BarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scans.ResolveBarcode(c.Request.Context(), req.Barcode, req.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogWater records a water amount.
func (h *Handler) LogWater(c *gin.Context) {
	var req domain.WaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scans.LogWater(c.Request.Context(), req.Amount, req.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogWorkout records burned calories under a user.
func (h *Handler) LogWorkout(c *gin.Context) {
	var req domain.WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scans.LogWorkout(c.Request.Context(), *req.CaloriesBurned, req.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetWorkout reads a legacy workout record by id.
func (h *Handler) GetWorkout(c *gin.Context) {
	result, err := h.scans.ReadLegacyWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TotalsWater returns the day's water total for a user.
func (h *Handler) TotalsWater(c *gin.Context) {
	userID, dayKey, ok := h.totalsParams(c)
	if !ok {
		return
	}

	result, err := h.totals.WaterTotal(c.Request.Context(), userID, dayKey)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TotalsWorkout returns the day's burned-calorie total for a user.
func (h *Handler) TotalsWorkout(c *gin.Context) {
	userID, dayKey, ok := h.totalsParams(c)
	if !ok {
		return
	}

	result, err := h.totals.WorkoutTotal(c.Request.Context(), userID, dayKey)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TotalsNutrition returns the day's macronutrient totals for a user.
func (h *Handler) TotalsNutrition(c *gin.Context) {
	userID, dayKey, ok := h.totalsParams(c)
	if !ok {
		return
	}

	result, err := h.totals.NutritionTotals(c.Request.Context(), userID, dayKey)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TotalsDay returns water, workout and nutrition totals together.
func (h *Handler) TotalsDay(c *gin.Context) {
	userID, dayKey, ok := h.totalsParams(c)
	if !ok {
		return
	}

	result, err := h.totals.DayTotals(c.Request.Context(), userID, dayKey)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// totalsParams extracts user_id (required) and date (defaults to today).
func (h *Handler) totalsParams(c *gin.Context) (userID, dayKey string, ok bool) {
	userID = c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return "", "", false
	}

	dayKey = c.Query("date")
	if dayKey == "" {
		dayKey = h.clock.DayKey()
	}
	return userID, dayKey, true
}

// renderError maps domain errors to HTTP status codes.
func renderError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": upstream.Error()})
	case errors.Is(err, domain.ErrUpstreamFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
