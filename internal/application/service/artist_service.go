package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/pkg/apperror"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// ArtistService handles artist and onboarding-application operations.
type ArtistService struct {
	artistRepo repository.ArtistRepository
	appRepo    repository.ApplicationRepository
	auditRepo  repository.AuditRepository
}

// NewArtistService creates a new artist service
func NewArtistService(
	artistRepo repository.ArtistRepository,
	appRepo repository.ApplicationRepository,
	auditRepo repository.AuditRepository,
) *ArtistService {
	return &ArtistService{
		artistRepo: artistRepo,
		appRepo:    appRepo,
		auditRepo:  auditRepo,
	}
}

// CreateArtistInput represents the create artist input
type CreateArtistInput struct {
	Name       string
	Email      *string
	Phone      *string
	Website    *string
	Instagram  *string
	Bio        *string
	PayoutIBAN *string
	UstIDNr    *string
}

// CreateArtist creates a new artist
func (s *ArtistService) CreateArtist(ctx context.Context, input *CreateArtistInput) (*entity.Artist, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Artist name is required")
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.artistRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("An artist with this email already exists")
		}
	}

	artist := &entity.Artist{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Website:    input.Website,
		Instagram:  input.Instagram,
		Bio:        input.Bio,
		PayoutIBAN: input.PayoutIBAN,
		UstIDNr:    input.UstIDNr,
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}

	return artist, nil
}

// GetArtist retrieves an artist by ID
func (s *ArtistService) GetArtist(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, apperror.NewNotFoundError("Artist")
	}
	return artist, nil
}

// ListArtists lists artists with optional name/email search.
func (s *ArtistService) ListArtists(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Artist], error) {
	params.Validate()

	artists, total, err := s.artistRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(artists, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListApplications lists onboarding applications, optionally filtered by status.
func (s *ArtistService) ListApplications(ctx context.Context, params *pagination.PaginationParams, status *int) (*pagination.PaginatedResult[entity.ArtistApplication], error) {
	params.Validate()

	apps, total, err := s.appRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(apps, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ApproveApplication approves an open application and creates the artist
// record from it when the applicant is not linked to one yet.
func (s *ArtistService) ApproveApplication(ctx context.Context, id, reviewerID uuid.UUID, note *string) (*entity.ArtistApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperror.NewNotFoundError("Application")
	}
	if !app.IsOpen() {
		return nil, apperror.NewConflictError("Application has already been decided")
	}

	if app.ArtistID == nil {
		artist := &entity.Artist{
			Name:  app.Name,
			Email: &app.Email,
		}
		if err := s.artistRepo.Create(ctx, artist); err != nil {
			return nil, err
		}
		app.ArtistID = &artist.ID
	}

	now := time.Now()
	app.Status = enum.ApplicationStatusApproved
	app.ReviewNote = note
	app.ReviewedBy = &reviewerID
	app.ReviewedAt = &now

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err := s.appendDecisionAudit(ctx, reviewerID, enum.AuditActionApplicationApproved, app); err != nil {
		return nil, err
	}

	return app, nil
}

// RejectApplication rejects an open application.
func (s *ArtistService) RejectApplication(ctx context.Context, id, reviewerID uuid.UUID, note *string) (*entity.ArtistApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperror.NewNotFoundError("Application")
	}
	if !app.IsOpen() {
		return nil, apperror.NewConflictError("Application has already been decided")
	}

	now := time.Now()
	app.Status = enum.ApplicationStatusRejected
	app.ReviewNote = note
	app.ReviewedBy = &reviewerID
	app.ReviewedAt = &now

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err := s.appendDecisionAudit(ctx, reviewerID, enum.AuditActionApplicationRejected, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *ArtistService) appendDecisionAudit(ctx context.Context, reviewerID uuid.UUID, action enum.AuditAction, app *entity.ArtistApplication) error {
	payload, _ := json.Marshal(map[string]interface{}{
		"application_id": app.ID,
		"status":         app.Status.String(),
	})
	return s.auditRepo.Append(ctx, &entity.AuditLogEntry{
		ActorAdminID: reviewerID,
		Action:       action,
		Payload:      string(payload),
	})
}
