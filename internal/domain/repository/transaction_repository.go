package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for POS transaction data access
type TransactionRepository interface {
	// GetByID loads a transaction without associations. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// GetWithItems loads a transaction and its line items. Returns nil when not found.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// List returns a page of transactions, newest first, optionally filtered by status.
	List(ctx context.Context, params *pagination.PaginationParams, status string) ([]entity.Transaction, int64, error)
	// Create persists a transaction with its items.
	Create(ctx context.Context, tx *entity.Transaction) error
	// UpdateFields applies a partial column update in a single call.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// ClaimReceiptNumber sets the receipt number only when none is set yet.
	// Returns false when another caller already claimed one.
	ClaimReceiptNumber(ctx context.Context, id uuid.UUID, receiptNo string) (bool, error)
	// ClaimInvoiceNumber sets the invoice number only when none is set yet.
	ClaimInvoiceNumber(ctx context.Context, id uuid.UUID, invoiceNo string) (bool, error)
}
