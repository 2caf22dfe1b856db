package handler

import (
	"strconv"
	"time"

	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles dashboard and tax report HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DashboardStats handles the dashboard statistics query. Analytics always
// reads the full history regardless of the operational reset watermark.
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	window := c.DefaultQuery("window", "all")

	var start, end *time.Time
	if startStr := c.Query("start_date"); startStr != "" {
		if t, err := time.Parse("2006-01-02", startStr); err == nil {
			start = &t
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if t, err := time.Parse("2006-01-02", endStr); err == nil {
			eod := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			end = &eod
		}
	}

	stats, err := h.analyticsService.GetDashboardStats(c.Request.Context(), window, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved successfully", stats)
}

// MonthlyTaxReport handles the monthly tax report query. Defaults to the
// current calendar month.
func (h *AnalyticsHandler) MonthlyTaxReport(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 2000 || y > 2100 {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = y
	}
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(m)
	}

	report, err := h.analyticsService.GetMonthlyTaxReport(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax report retrieved successfully", report)
}
