package service

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/pkg/apperror"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionService handles back-office reads over POS transactions.
type TransactionService struct {
	txRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{txRepo: txRepo}
}

// GetTransaction retrieves a transaction with items and references.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions lists transactions newest first, optionally filtered by
// lifecycle status.
func (s *TransactionService) ListTransactions(ctx context.Context, params *pagination.PaginationParams, status string) (*pagination.PaginatedResult[entity.Transaction], error) {
	params.Validate()

	txs, total, err := s.txRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(txs, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
