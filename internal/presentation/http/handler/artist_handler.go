package handler

import (
	"context"
	"strconv"

	"github.com/artclub/backoffice-api/internal/application/service"
	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/request"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/response"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArtistHandler handles artist and onboarding-application HTTP requests
type ArtistHandler struct {
	artistService *service.ArtistService
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// Create creates a new artist
func (h *ArtistHandler) Create(c *gin.Context) {
	var req request.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	artist, err := h.artistService.CreateArtist(c.Request.Context(), &service.CreateArtistInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Website:    req.Website,
		Instagram:  req.Instagram,
		Bio:        req.Bio,
		PayoutIBAN: req.PayoutIBAN,
		UstIDNr:    req.UstIDNr,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Artist created successfully", artist)
}

// Get returns a single artist
func (h *ArtistHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	artist, err := h.artistService.GetArtist(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Artist retrieved successfully", artist)
}

// List returns artists with optional name/email search
func (h *ArtistHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.artistService.ListArtists(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Artists retrieved successfully", result)
}

// ListApplications returns onboarding applications, optionally by status
func (h *ArtistHandler) ListApplications(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var status *int
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &v
	}

	result, err := h.artistService.ListApplications(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Applications retrieved successfully", result)
}

// Approve approves an open application
func (h *ArtistHandler) Approve(c *gin.Context) {
	h.review(c, h.artistService.ApproveApplication, "Application approved")
}

// Reject rejects an open application
func (h *ArtistHandler) Reject(c *gin.Context) {
	h.review(c, h.artistService.RejectApplication, "Application rejected")
}

type reviewFunc func(ctx context.Context, id, reviewerID uuid.UUID, note *string) (*entity.ArtistApplication, error)

func (h *ArtistHandler) review(c *gin.Context, decide reviewFunc, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid application ID")
		return
	}

	adminID := GetAdminID(c)
	if adminID == nil {
		response.Unauthorized(c, "Admin not authenticated")
		return
	}

	var req request.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	app, err := decide(c.Request.Context(), id, *adminID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, message, app)
}
