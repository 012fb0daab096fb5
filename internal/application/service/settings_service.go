package service

import (
	"context"
	"encoding/json"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/pkg/apperror"
	"github.com/google/uuid"
)

// SettingsService handles the versioned seller settings snapshots.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	auditRepo    repository.AuditRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, auditRepo repository.AuditRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, auditRepo: auditRepo}
}

// GetCurrent returns the latest seller settings snapshot.
func (s *SettingsService) GetCurrent(ctx context.Context) (*entity.SellerSettings, error) {
	settings, err := s.settingsRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Seller settings")
	}
	return settings, nil
}

// UpdateSettings stores a new settings version. Older versions stay intact
// so documents already issued under them are unaffected.
func (s *SettingsService) UpdateSettings(ctx context.Context, actorAdminID uuid.UUID, settings *entity.SellerSettings) (*entity.SellerSettings, error) {
	if settings.BrandName == "" || settings.LegalName == "" {
		return nil, apperror.NewBadRequestError("Brand name and legal name are required")
	}

	if err := s.settingsRepo.CreateVersion(ctx, settings); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]interface{}{"version": settings.Version})
	if err := s.auditRepo.Append(ctx, &entity.AuditLogEntry{
		ActorAdminID: actorAdminID,
		Action:       enum.AuditActionSellerSettingsUpdated,
		Payload:      string(payload),
	}); err != nil {
		return nil, err
	}

	return settings, nil
}
