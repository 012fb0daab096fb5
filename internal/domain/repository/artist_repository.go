package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// ArtistRepository defines the interface for artist data access
type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	GetByEmail(ctx context.Context, email string) (*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Artist, int64, error)
}

// ApplicationRepository defines the interface for artist application data access
type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.ArtistApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ArtistApplication, error)
	Update(ctx context.Context, app *entity.ArtistApplication) error
	List(ctx context.Context, params *pagination.PaginationParams, status *int) ([]entity.ArtistApplication, int64, error)
}
