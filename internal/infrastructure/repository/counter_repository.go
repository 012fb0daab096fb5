package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new sequence counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// NextValue increments the (scope, year) counter and returns the new value.
// The upsert and increment are one statement, so concurrent callers are
// serialized by Postgres and can never observe the same value. Splitting
// this into find + update would reintroduce the duplicate-number race.
func (r *counterRepository) NextValue(ctx context.Context, scope entity.CounterScope, year int) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (scope, year, value, created_at, updated_at)
		VALUES (?, ?, 1, NOW(), NOW())
		ON CONFLICT (scope, year)
		DO UPDATE SET value = sequence_counters.value + 1, updated_at = NOW()
		RETURNING value`,
		scope, year,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
