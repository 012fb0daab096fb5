package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
)

// AuditLogEntry is one record in the append-only, hash-chained audit log.
// Hash covers the entry content plus the previous entry's hash, so any
// edit or deletion breaks every later hash in the chain.
type AuditLogEntry struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	ActorAdminID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"actor_admin_id"`
	Action        enum.AuditAction `gorm:"size:64;not null;index" json:"action"`
	TransactionID *uuid.UUID       `gorm:"type:uuid;index" json:"transaction_id,omitempty"`
	Payload       string           `gorm:"type:jsonb" json:"payload,omitempty"`
	PrevHash      string           `gorm:"size:64;not null" json:"prev_hash"`
	Hash          string           `gorm:"size:64;not null" json:"hash"`
	CreatedAt     time.Time        `json:"created_at"`
}

// TableName returns the table name for the AuditLogEntry model
func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}

// ComputeHash returns the sha256 chain hash over the entry content and the
// previous hash. The serialization is pipe-delimited over stable fields
// rather than JSON so that map ordering can never change the digest.
func (e *AuditLogEntry) ComputeHash() string {
	txID := ""
	if e.TransactionID != nil {
		txID = e.TransactionID.String()
	}
	content := fmt.Sprintf("%s|%s|%s|%s|%s",
		e.PrevHash, e.ActorAdminID, e.Action, txID, e.Payload)
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ChainFrom links the entry to its predecessor hash and seals it.
// An empty prevHash marks the genesis entry.
func (e *AuditLogEntry) ChainFrom(prevHash string) {
	e.PrevHash = prevHash
	e.Hash = e.ComputeHash()
}

// VerifyAgainst reports whether the entry's stored hash is consistent with
// its content and the given predecessor hash.
func (e *AuditLogEntry) VerifyAgainst(prevHash string) bool {
	return e.PrevHash == prevHash && e.Hash == e.ComputeHash()
}
