package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/repository"
)

// SequenceService issues yearly-scoped receipt and invoice numbers.
type SequenceService struct {
	counterRepo repository.CounterRepository
}

// NewSequenceService creates a new sequence service
func NewSequenceService(counterRepo repository.CounterRepository) *SequenceService {
	return &SequenceService{counterRepo: counterRepo}
}

// NextNumber allocates the next number for the scope in the given date's UTC
// year and formats it as R-2025-000001 / I-2025-000001. The format is a
// persisted, externally visible identifier and must not change.
func (s *SequenceService) NextNumber(ctx context.Context, scope entity.CounterScope, date time.Time) (string, error) {
	year := date.UTC().Year()
	value, err := s.counterRepo.NextValue(ctx, scope, year)
	if err != nil {
		return "", fmt.Errorf("sequence: next %s number for %d: %w", scope, year, err)
	}
	return fmt.Sprintf("%s-%d-%06d", scope.Prefix(), year, value), nil
}
