package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles user settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a partial settings update. Absent
// fields are left unchanged.
type UpdateSettingsRequest struct {
	Language              *string  `json:"language"`
	Timezone              *string  `json:"timezone"`
	Currency              *string  `json:"currency"`
	DateFormat            *string  `json:"date_format"`
	DefaultTaxRate        *float64 `json:"default_tax_rate" binding:"omitempty,gte=0,lte=1"`
	DefaultPackingCharges *float64 `json:"default_packing_charges" binding:"omitempty,gte=0"`
	ItemsPerPage          *int     `json:"items_per_page" binding:"omitempty,min=1,max=100"`
	EmailNotifications    *bool    `json:"email_notifications"`
	LowStockAlerts        *bool    `json:"low_stock_alerts"`
	Theme                 *string  `json:"theme"`
	CompactMode           *bool    `json:"compact_mode"`
}

// Get returns the current user's settings, creating defaults if absent
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update applies a partial update to the current user's settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:                *userID,
		Language:              req.Language,
		Timezone:              req.Timezone,
		Currency:              req.Currency,
		DateFormat:            req.DateFormat,
		DefaultTaxRate:        req.DefaultTaxRate,
		DefaultPackingCharges: req.DefaultPackingCharges,
		ItemsPerPage:          req.ItemsPerPage,
		EmailNotifications:    req.EmailNotifications,
		LowStockAlerts:        req.LowStockAlerts,
		Theme:                 req.Theme,
		CompactMode:           req.CompactMode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
