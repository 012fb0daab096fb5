package repository

import (
	"context"
	"errors"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) domainRepo.ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.WithContext(ctx).First(&artist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &artist, err
}

func (r *artistRepository) GetByEmail(ctx context.Context, email string) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.WithContext(ctx).First(&artist, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &artist, err
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Artist, int64, error) {
	var artists []entity.Artist
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Artist{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&artists).Error

	return artists, total, err
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new artist application repository
func NewApplicationRepository(db *gorm.DB) domainRepo.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *entity.ArtistApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ArtistApplication, error) {
	var app entity.ArtistApplication
	err := r.db.WithContext(ctx).Preload("Artist").First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &app, err
}

func (r *applicationRepository) Update(ctx context.Context, app *entity.ArtistApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) List(ctx context.Context, params *pagination.PaginationParams, status *int) ([]entity.ArtistApplication, int64, error) {
	var apps []entity.ArtistApplication
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ArtistApplication{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&apps).Error

	return apps, total, err
}
