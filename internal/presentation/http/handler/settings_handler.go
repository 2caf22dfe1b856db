package handler

import (
	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles kiosk settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// storefrontSettings is the public view for the kiosk frontend
type storefrontSettings struct {
	OnlinePaymentsEnabled bool     `json:"onlinePaymentsEnabled"`
	PayAtCounterEnabled   bool     `json:"payAtCounterEnabled"`
	Categories            []string `json:"categories"`
}

// GetStorefront handles the public settings view. The reset watermark and
// record metadata are admin-only and never exposed here.
func (h *SettingsHandler) GetStorefront(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", storefrontSettings{
		OnlinePaymentsEnabled: settings.OnlinePaymentsEnabled,
		PayAtCounterEnabled:   settings.PayAtCounterEnabled,
		Categories:            settings.Categories,
	})
}

// Update handles a partial settings patch. Absent fields keep their value.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		OnlinePaymentsEnabled *bool     `json:"onlinePaymentsEnabled"`
		PayAtCounterEnabled   *bool     `json:"payAtCounterEnabled"`
		Categories            *[]string `json:"categories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		OnlinePaymentsEnabled: req.OnlinePaymentsEnabled,
		PayAtCounterEnabled:   req.PayAtCounterEnabled,
		Categories:            req.Categories,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// ResetOrdersView handles hiding current orders from the operational list
func (h *SettingsHandler) ResetOrdersView(c *gin.Context) {
	settings, err := h.settingsService.ResetOrdersView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order view reset successfully", settings)
}
