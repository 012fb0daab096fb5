package service

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/repository"
)

// AuditService exposes read-side operations over the audit log.
type AuditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// ChainReport is the result of a full chain verification.
type ChainReport struct {
	Entries    int    `json:"entries"`
	Valid      bool   `json:"valid"`
	BrokenAtID uint   `json:"broken_at_id,omitempty"`
	TailHash   string `json:"tail_hash,omitempty"`
}

// VerifyChain walks the log in insertion order and recomputes every hash.
// Any edited, removed or reordered entry surfaces as the first broken link.
func (s *AuditService) VerifyChain(ctx context.Context) (*ChainReport, error) {
	entries, err := s.auditRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &ChainReport{Entries: len(entries), Valid: true}
	prevHash := ""
	for i := range entries {
		e := &entries[i]
		if !e.VerifyAgainst(prevHash) {
			report.Valid = false
			report.BrokenAtID = e.ID
			return report, nil
		}
		prevHash = e.Hash
	}
	report.TailHash = prevHash
	return report, nil
}
