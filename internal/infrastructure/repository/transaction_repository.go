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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new POS transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Location").
		Preload("Terminal").
		First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) List(ctx context.Context, params *pagination.PaginationParams, status string) ([]entity.Transaction, int64, error) {
	var txs []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&txs).Error

	return txs, total, err
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// UpdateFields applies a partial column update in one statement.
func (r *transactionRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// ClaimReceiptNumber assigns a receipt number only when none is set. The
// conditional update makes concurrent issuance attempts on the same
// transaction settle on a single number.
func (r *transactionRepository) ClaimReceiptNumber(ctx context.Context, id uuid.UUID, receiptNo string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ? AND (receipt_no IS NULL OR receipt_no = '')", id).
		Update("receipt_no", receiptNo)
	return result.RowsAffected > 0, result.Error
}

// ClaimInvoiceNumber assigns an invoice number only when none is set.
func (r *transactionRepository) ClaimInvoiceNumber(ctx context.Context, id uuid.UUID, invoiceNo string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ? AND (invoice_no IS NULL OR invoice_no = '')", id).
		Update("invoice_no", invoiceNo)
	return result.RowsAffected > 0, result.Error
}
