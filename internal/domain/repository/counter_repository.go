package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
)

// CounterRepository defines the interface for sequence counter access.
type CounterRepository interface {
	// NextValue creates the (scope, year) counter if needed and increments it,
	// returning the new value. The find-or-create and increment happen in one
	// atomic statement so concurrent callers can never receive the same value.
	NextValue(ctx context.Context, scope entity.CounterScope, year int) (int64, error)
}
