package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/internal/infrastructure/storage"
	"github.com/artclub/backoffice-api/pkg/money"
	"github.com/artclub/backoffice-api/pkg/pdf"
	"github.com/google/uuid"
)

const invoiceSkipReasonMissingBuyer = "missing_buyer"

// DocumentService issues the fiscal documents for paid POS transactions:
// a receipt always, an invoice when the issuance policy requires one.
type DocumentService struct {
	txRepo       repository.TransactionRepository
	locationRepo repository.LocationRepository
	terminalRepo repository.TerminalRepository
	settingsRepo repository.SettingsRepository
	auditRepo    repository.AuditRepository
	sequences    *SequenceService
	store        storage.Storage
	policy       InvoicePolicy
	notifier     DocumentNotifier
}

// DocumentNotifier is notified after an invoice is issued so the buyer can
// be sent a link. Notification failures never block issuance.
type DocumentNotifier interface {
	InvoiceIssued(ctx context.Context, tx *entity.Transaction, invoiceNo, pdfURL string) error
}

// NewDocumentService creates a new document service. notifier may be nil.
func NewDocumentService(
	txRepo repository.TransactionRepository,
	locationRepo repository.LocationRepository,
	terminalRepo repository.TerminalRepository,
	settingsRepo repository.SettingsRepository,
	auditRepo repository.AuditRepository,
	sequences *SequenceService,
	store storage.Storage,
	policy InvoicePolicy,
	notifier DocumentNotifier,
) *DocumentService {
	return &DocumentService{
		txRepo:       txRepo,
		locationRepo: locationRepo,
		terminalRepo: terminalRepo,
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
		sequences:    sequences,
		store:        store,
		policy:       policy,
		notifier:     notifier,
	}
}

// DocumentResult reports what a call to EnsurePaidTransactionDocuments did.
type DocumentResult struct {
	ReceiptNo      string `json:"receipt_no,omitempty"`
	ReceiptPdfURL  string `json:"receipt_pdf_url,omitempty"`
	ReceiptIssued  bool   `json:"receipt_issued"`
	InvoiceNo      string `json:"invoice_no,omitempty"`
	InvoicePdfURL  string `json:"invoice_pdf_url,omitempty"`
	InvoiceIssued  bool   `json:"invoice_issued"`
	InvoiceSkipped string `json:"invoice_skipped,omitempty"`
}

// EnsurePaidTransactionDocuments idempotently ensures a paid transaction has
// its receipt and, when required, its invoice. Safe to re-invoke after any
// failure: issued documents are never regenerated, and a number allocated
// before a failed render/upload is reused on retry instead of being burned.
//
// A transaction that is missing or not paid is a no-op, not an error.
func (s *DocumentService) EnsurePaidTransactionDocuments(ctx context.Context, txID, actorAdminID uuid.UUID) (*DocumentResult, error) {
	tx, err := s.txRepo.GetWithItems(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil || !tx.IsPaid() {
		return &DocumentResult{}, nil
	}

	seller, err := s.settingsRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, fmt.Errorf("documents: no seller settings configured")
	}

	// Location and terminal are best effort: a deleted location must not
	// block a legally required document.
	var location *entity.Location
	var terminal *entity.Terminal
	if tx.LocationID != nil {
		if location, err = s.locationRepo.GetByID(ctx, *tx.LocationID); err != nil {
			log.Printf("documents: load location for tx %s: %v", tx.ID, err)
			location = nil
		}
	}
	if tx.TerminalID != nil {
		if terminal, err = s.terminalRepo.GetByID(ctx, *tx.TerminalID); err != nil {
			log.Printf("documents: load terminal for tx %s: %v", tx.ID, err)
			terminal = nil
		}
	}

	breakdown := money.VatBreakdown(itemsForBreakdown(tx))
	issuedAt := tx.CreatedAt
	if tx.PaymentApprovedAt != nil {
		issuedAt = *tx.PaymentApprovedAt
	}

	result := &DocumentResult{
		ReceiptNo:     tx.ReceiptNo,
		ReceiptPdfURL: tx.ReceiptPdfURL,
		InvoiceNo:     tx.InvoiceNo,
		InvoicePdfURL: tx.InvoicePdfURL,
	}
	updates := map[string]interface{}{}

	if err := s.ensureReceipt(ctx, tx, seller, location, terminal, breakdown, issuedAt, actorAdminID, updates, result); err != nil {
		return nil, err
	}
	if err := s.ensureInvoice(ctx, tx, seller, breakdown, issuedAt, actorAdminID, updates, result); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.txRepo.UpdateFields(ctx, tx.ID, updates); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ensureReceipt issues the receipt unless one exists. Number allocation and
// PDF issuance are separable steps: the claimed number is persisted
// immediately, so a later render/upload failure resumes with the same
// number instead of allocating a fresh one.
func (s *DocumentService) ensureReceipt(
	ctx context.Context,
	tx *entity.Transaction,
	seller *entity.SellerSettings,
	location *entity.Location,
	terminal *entity.Terminal,
	breakdown []money.VatBucket,
	issuedAt time.Time,
	actorAdminID uuid.UUID,
	updates map[string]interface{},
	result *DocumentResult,
) error {
	if tx.ReceiptPdfURL != "" {
		return nil
	}

	receiptNo := tx.ReceiptNo
	if receiptNo == "" {
		allocated, err := s.sequences.NextNumber(ctx, entity.CounterScopeReceipt, issuedAt)
		if err != nil {
			return err
		}
		claimed, err := s.txRepo.ClaimReceiptNumber(ctx, tx.ID, allocated)
		if err != nil {
			return err
		}
		if !claimed {
			// Another invocation claimed a number first; reload and use it.
			fresh, err := s.txRepo.GetByID(ctx, tx.ID)
			if err != nil {
				return err
			}
			if fresh == nil || fresh.ReceiptNo == "" {
				return fmt.Errorf("documents: receipt number claim lost for tx %s", tx.ID)
			}
			if fresh.ReceiptPdfURL != "" {
				result.ReceiptNo = fresh.ReceiptNo
				result.ReceiptPdfURL = fresh.ReceiptPdfURL
				return nil
			}
			allocated = fresh.ReceiptNo
		}
		receiptNo = allocated
		tx.ReceiptNo = receiptNo
	}

	lines := buildReceiptLines(documentInput{
		Tx:        tx,
		Seller:    seller,
		Location:  location,
		Terminal:  terminal,
		Breakdown: breakdown,
		Number:    receiptNo,
		IssuedAt:  issuedAt,
	})

	key := fmt.Sprintf("pos/receipts/%d/%s.pdf", issuedAt.UTC().Year(), storage.SanitizeKeySegment(receiptNo))
	pdfURL, err := s.uploadDocument(ctx, key, lines)
	if err != nil {
		return err
	}

	updates["receipt_no"] = receiptNo
	updates["receipt_pdf_url"] = pdfURL
	result.ReceiptNo = receiptNo
	result.ReceiptPdfURL = pdfURL
	result.ReceiptIssued = true

	return s.appendAudit(ctx, actorAdminID, enum.AuditActionIssueReceipt, tx.ID, map[string]string{
		"receipt_no": receiptNo,
		"pdf_url":    pdfURL,
	})
}

// ensureInvoice issues the invoice when the policy requires one and buyer
// data is sufficient. A required-but-incomplete buyer is recorded as a skip,
// and the skip audit entry is only written on the state transition so
// repeated invocations do not spam the log.
func (s *DocumentService) ensureInvoice(
	ctx context.Context,
	tx *entity.Transaction,
	seller *entity.SellerSettings,
	breakdown []money.VatBucket,
	issuedAt time.Time,
	actorAdminID uuid.UUID,
	updates map[string]interface{},
	result *DocumentResult,
) error {
	if !s.policy.ShouldIssueInvoice(tx.BuyerType, tx.GrossCents) {
		return nil
	}
	if tx.InvoicePdfURL != "" {
		return nil
	}

	if !HasRequiredInvoiceBuyerData(tx) {
		result.InvoiceSkipped = invoiceSkipReasonMissingBuyer
		if tx.InvoiceSkippedReason == invoiceSkipReasonMissingBuyer {
			return nil
		}
		updates["invoice_skipped_reason"] = invoiceSkipReasonMissingBuyer
		return s.appendAudit(ctx, actorAdminID, enum.AuditActionInvoiceSkippedMissingBuyer, tx.ID, map[string]string{
			"reason": invoiceSkipReasonMissingBuyer,
		})
	}

	invoiceNo := tx.InvoiceNo
	if invoiceNo == "" {
		allocated, err := s.sequences.NextNumber(ctx, entity.CounterScopeInvoice, issuedAt)
		if err != nil {
			return err
		}
		claimed, err := s.txRepo.ClaimInvoiceNumber(ctx, tx.ID, allocated)
		if err != nil {
			return err
		}
		if !claimed {
			fresh, err := s.txRepo.GetByID(ctx, tx.ID)
			if err != nil {
				return err
			}
			if fresh == nil || fresh.InvoiceNo == "" {
				return fmt.Errorf("documents: invoice number claim lost for tx %s", tx.ID)
			}
			if fresh.InvoicePdfURL != "" {
				result.InvoiceNo = fresh.InvoiceNo
				result.InvoicePdfURL = fresh.InvoicePdfURL
				return nil
			}
			allocated = fresh.InvoiceNo
		}
		invoiceNo = allocated
		tx.InvoiceNo = invoiceNo
	}

	lines := buildInvoiceLines(documentInput{
		Tx:        tx,
		Seller:    seller,
		Breakdown: breakdown,
		Number:    invoiceNo,
		IssuedAt:  issuedAt,
	})

	key := fmt.Sprintf("pos/invoices/%d/%s.pdf", issuedAt.UTC().Year(), storage.SanitizeKeySegment(invoiceNo))
	pdfURL, err := s.uploadDocument(ctx, key, lines)
	if err != nil {
		return err
	}

	updates["invoice_no"] = invoiceNo
	updates["invoice_pdf_url"] = pdfURL
	updates["invoice_skipped_reason"] = ""
	result.InvoiceNo = invoiceNo
	result.InvoicePdfURL = pdfURL
	result.InvoiceIssued = true
	result.InvoiceSkipped = ""

	if err := s.appendAudit(ctx, actorAdminID, enum.AuditActionIssueInvoice, tx.ID, map[string]string{
		"invoice_no": invoiceNo,
		"pdf_url":    pdfURL,
	}); err != nil {
		return err
	}

	if s.notifier != nil && tx.BuyerEmail != "" {
		if err := s.notifier.InvoiceIssued(ctx, tx, invoiceNo, pdfURL); err != nil {
			log.Printf("documents: invoice notification for tx %s: %v", tx.ID, err)
		}
	}

	return nil
}

// uploadDocument renders the lines to PDF and uploads them, preferring the
// store's public URL over the upload-returned one.
func (s *DocumentService) uploadDocument(ctx context.Context, key string, lines []string) (string, error) {
	data := pdf.Build(lines)

	url, err := s.store.Upload(ctx, key, data, "application/pdf", lastSegment(key))
	if err != nil {
		return "", err
	}
	if public, ok := s.store.PublicURL(key); ok {
		return public, nil
	}
	return url, nil
}

func (s *DocumentService) appendAudit(ctx context.Context, actorAdminID uuid.UUID, action enum.AuditAction, txID uuid.UUID, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	id := txID
	return s.auditRepo.Append(ctx, &entity.AuditLogEntry{
		ActorAdminID:  actorAdminID,
		Action:        action,
		TransactionID: &id,
		Payload:       string(body),
	})
}

func itemsForBreakdown(tx *entity.Transaction) []money.LineItem {
	items := make([]money.LineItem, len(tx.Items))
	for i, it := range tx.Items {
		items[i] = money.LineItem{
			Quantity:       it.Quantity,
			UnitGrossCents: it.UnitGrossCents,
			VatRate:        it.VatRate,
		}
	}
	return items
}

func lastSegment(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '/' {
			return key[i+1:]
		}
	}
	return key
}
