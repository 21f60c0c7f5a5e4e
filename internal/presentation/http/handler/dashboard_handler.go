package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the headline dashboard numbers
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// TopClients returns the clients ranked by billed value
func (h *DashboardHandler) TopClients(c *gin.Context) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := parsePositiveInt(l)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	clients, err := h.dashboardService.GetTopClients(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top clients retrieved successfully", clients)
}

// MonthlySales returns per-month billed totals
func (h *DashboardHandler) MonthlySales(c *gin.Context) {
	months := 0
	if m := c.Query("months"); m != "" {
		parsed, err := parsePositiveInt(m)
		if err != nil {
			response.BadRequest(c, "Invalid months")
			return
		}
		months = parsed
	}

	sales, err := h.dashboardService.GetMonthlySales(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly sales retrieved successfully", sales)
}

// HoursByUser returns logged hours per user for a date range
func (h *DashboardHandler) HoursByUser(c *gin.Context) {
	var from, to *time.Time
	if f := c.Query("from"); f != "" {
		parsed, err := parseDate(f)
		if err != nil {
			response.BadRequest(c, "Invalid from date. Use YYYY-MM-DD")
			return
		}
		from = &parsed
	}
	if t := c.Query("to"); t != "" {
		parsed, err := parseDate(t)
		if err != nil {
			response.BadRequest(c, "Invalid to date. Use YYYY-MM-DD")
			return
		}
		to = &parsed
	}

	hours, err := h.dashboardService.GetHoursByUser(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hours by user retrieved successfully", hours)
}

// DailyRevenue returns billed totals per day
func (h *DashboardHandler) DailyRevenue(c *gin.Context) {
	days := 0
	if d := c.Query("days"); d != "" {
		parsed, err := parsePositiveInt(d)
		if err != nil {
			response.BadRequest(c, "Invalid days")
			return
		}
		days = parsed
	}

	revenue, err := h.dashboardService.GetDailyRevenue(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily revenue retrieved successfully", revenue)
}

// Recent returns the latest documents across all document types
func (h *DashboardHandler) Recent(c *gin.Context) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := parsePositiveInt(l)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	documents, err := h.dashboardService.GetRecentDocuments(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent documents retrieved successfully", documents)
}

// LowStock returns items at or below their alert level
func (h *DashboardHandler) LowStock(c *gin.Context) {
	items, err := h.dashboardService.GetLowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}
