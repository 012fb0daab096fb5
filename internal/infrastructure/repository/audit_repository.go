package repository

import (
	"context"
	"errors"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	domainRepo "github.com/artclub/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

// auditChainLockID is the application-wide advisory lock key that serializes
// audit chain construction. Arbitrary but must never change.
const auditChainLockID = 4271001

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *gorm.DB) domainRepo.AuditRepository {
	return &auditRepository{db: db}
}

// Append links the entry onto the chain tail and inserts it. Chain
// construction is serialized with a transaction-scoped advisory lock: a
// locking read of the tail row is not enough under READ COMMITTED, because a
// blocked reader resumes with its pre-commit snapshot and chains onto the
// same predecessor as the writer it waited for, and an empty table gives it
// nothing to lock at all.
func (r *auditRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", auditChainLockID).Error; err != nil {
			return err
		}

		var tail entity.AuditLogEntry
		err := tx.Order("id DESC").First(&tail).Error

		prevHash := ""
		switch {
		case err == nil:
			prevHash = tail.Hash
		case errors.Is(err, gorm.ErrRecordNotFound):
			// genesis entry
		default:
			return err
		}

		entry.ChainFrom(prevHash)
		return tx.Create(entry).Error
	})
}

// ListAll returns the full log in insertion order.
func (r *auditRepository) ListAll(ctx context.Context) ([]entity.AuditLogEntry, error) {
	var entries []entity.AuditLogEntry
	err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error
	return entries, err
}
