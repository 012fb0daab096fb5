package repository

import (
	"context"
	"errors"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new seller settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetCurrent returns the latest settings snapshot.
func (r *settingsRepository) GetCurrent(ctx context.Context) (*entity.SellerSettings, error) {
	var settings entity.SellerSettings
	err := r.db.WithContext(ctx).Order("version DESC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// CreateVersion inserts a new snapshot with version = max(version) + 1.
// The read and insert run in one transaction; the unique index on version
// turns a lost race into a retryable constraint error instead of a
// silently duplicated version.
func (r *settingsRepository) CreateVersion(ctx context.Context, settings *entity.SellerSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxVersion int
		if err := tx.Model(&entity.SellerSettings{}).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error; err != nil {
			return err
		}
		settings.Version = maxVersion + 1
		return tx.Create(settings).Error
	})
}
