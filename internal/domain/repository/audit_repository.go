package repository

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
)

// AuditRepository defines the interface for the append-only audit log.
type AuditRepository interface {
	// Append chains the entry onto the current tail (filling PrevHash and
	// Hash) and inserts it. Chain construction is serialized so two
	// concurrent appends cannot claim the same predecessor.
	Append(ctx context.Context, entry *entity.AuditLogEntry) error
	// ListAll returns all entries in insertion order, for chain verification.
	ListAll(ctx context.Context) ([]entity.AuditLogEntry, error)
}
