package repository

import (
	"context"
	"errors"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) domainRepo.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &location, err
}

func (r *locationRepository) List(ctx context.Context) ([]entity.Location, error) {
	var locations []entity.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

type terminalRepository struct {
	db *gorm.DB
}

// NewTerminalRepository creates a new terminal repository
func NewTerminalRepository(db *gorm.DB) domainRepo.TerminalRepository {
	return &terminalRepository{db: db}
}

func (r *terminalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error) {
	var terminal entity.Terminal
	err := r.db.WithContext(ctx).First(&terminal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &terminal, err
}

func (r *terminalRepository) List(ctx context.Context) ([]entity.Terminal, error) {
	var terminals []entity.Terminal
	err := r.db.WithContext(ctx).Preload("Location").Order("name ASC").Find(&terminals).Error
	return terminals, err
}
