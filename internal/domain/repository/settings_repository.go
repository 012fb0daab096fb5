package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
)

// SettingsRepository defines the interface for versioned seller settings
type SettingsRepository interface {
	// GetCurrent returns the highest-version settings snapshot, or nil when
	// none has been created yet.
	GetCurrent(ctx context.Context) (*entity.SellerSettings, error)
	// CreateVersion inserts a new snapshot with the next version number.
	// Existing versions are never mutated.
	CreateVersion(ctx context.Context, settings *entity.SellerSettings) error
}
