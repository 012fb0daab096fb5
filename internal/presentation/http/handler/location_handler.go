package handler

import (
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// LocationHandler serves the location and terminal reference data
type LocationHandler struct {
	locationRepo repository.LocationRepository
	terminalRepo repository.TerminalRepository
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationRepo repository.LocationRepository, terminalRepo repository.TerminalRepository) *LocationHandler {
	return &LocationHandler{locationRepo: locationRepo, terminalRepo: terminalRepo}
}

// ListLocations returns all sales locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Locations retrieved successfully", locations)
}

// ListTerminals returns all POS terminals
func (h *LocationHandler) ListTerminals(c *gin.Context) {
	terminals, err := h.terminalRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminals retrieved successfully", terminals)
}
