package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/google/uuid"
)

// LocationRepository defines the interface for location reference data
type LocationRepository interface {
	// GetByID returns nil when the location does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	List(ctx context.Context) ([]entity.Location, error)
}

// TerminalRepository defines the interface for terminal reference data
type TerminalRepository interface {
	// GetByID returns nil when the terminal does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error)
	List(ctx context.Context) ([]entity.Terminal, error)
}
