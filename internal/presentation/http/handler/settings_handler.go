package handler

import (
	"github.com/artclub/backoffice-api/internal/application/service"
	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/request"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles seller settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the current seller settings snapshot
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetCurrent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings stores a new seller settings version
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	adminID := GetAdminID(c)
	if adminID == nil {
		response.Unauthorized(c, "Admin not authenticated")
		return
	}

	var req request.UpdateSellerSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), *adminID, &entity.SellerSettings{
		BrandName:    req.BrandName,
		LegalName:    req.LegalName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		PostalCode:   req.PostalCode,
		City:         req.City,
		Country:      req.Country,
		Steuernummer: req.Steuernummer,
		UstIDNr:      req.UstIDNr,
		Finanzamt:    req.Finanzamt,
		FooterLine1:  req.FooterLine1,
		FooterLine2:  req.FooterLine2,
		FooterLine3:  req.FooterLine3,
		Locale:       req.Locale,
		Currency:     req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
