package entity

import (
	"testing"

	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHashIsDeterministic(t *testing.T) {
	txID := uuid.New()
	e := AuditLogEntry{
		ActorAdminID:  uuid.New(),
		Action:        enum.AuditActionIssueReceipt,
		TransactionID: &txID,
		Payload:       `{"receipt_no":"R-2025-000001"}`,
	}
	e.ChainFrom("")

	assert.Equal(t, e.Hash, e.ComputeHash())
	assert.Len(t, e.Hash, 64)
	assert.Empty(t, e.PrevHash)
}

func TestChainLinksEntries(t *testing.T) {
	actor := uuid.New()
	first := AuditLogEntry{ActorAdminID: actor, Action: enum.AuditActionIssueReceipt}
	first.ChainFrom("")

	second := AuditLogEntry{ActorAdminID: actor, Action: enum.AuditActionIssueInvoice}
	second.ChainFrom(first.Hash)

	require.True(t, first.VerifyAgainst(""))
	require.True(t, second.VerifyAgainst(first.Hash))
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestTamperingBreaksChain(t *testing.T) {
	actor := uuid.New()
	first := AuditLogEntry{ActorAdminID: actor, Action: enum.AuditActionIssueReceipt, Payload: `{"a":1}`}
	first.ChainFrom("")
	second := AuditLogEntry{ActorAdminID: actor, Action: enum.AuditActionIssueInvoice}
	second.ChainFrom(first.Hash)

	// Rewriting the first entry's payload invalidates it and, transitively,
	// the link the second entry claims.
	first.Payload = `{"a":2}`
	assert.False(t, first.VerifyAgainst(""))
	assert.True(t, second.VerifyAgainst(first.Hash), "second is untouched")
	assert.NotEqual(t, first.ComputeHash(), first.Hash)
}
