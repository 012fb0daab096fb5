package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory fakes ---

type fakeTxRepo struct {
	txs          map[uuid.UUID]*entity.Transaction
	updateCalls  int
	updatedField map[string]interface{}
}

func newFakeTxRepo(txs ...*entity.Transaction) *fakeTxRepo {
	m := make(map[uuid.UUID]*entity.Transaction)
	for _, tx := range txs {
		m[tx.ID] = tx
	}
	return &fakeTxRepo{txs: m}
}

func (r *fakeTxRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.txs[id], nil
}

func (r *fakeTxRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.txs[id], nil
}

func (r *fakeTxRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *fakeTxRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.txs[tx.ID] = tx
	return nil
}

func (r *fakeTxRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	tx, ok := r.txs[id]
	if !ok {
		return errors.New("not found")
	}
	r.updateCalls++
	r.updatedField = fields
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "receipt_no":
			tx.ReceiptNo = s
		case "receipt_pdf_url":
			tx.ReceiptPdfURL = s
		case "invoice_no":
			tx.InvoiceNo = s
		case "invoice_pdf_url":
			tx.InvoicePdfURL = s
		case "invoice_skipped_reason":
			tx.InvoiceSkippedReason = s
		}
	}
	return nil
}

func (r *fakeTxRepo) ClaimReceiptNumber(_ context.Context, id uuid.UUID, receiptNo string) (bool, error) {
	tx, ok := r.txs[id]
	if !ok {
		return false, errors.New("not found")
	}
	if tx.ReceiptNo != "" {
		return false, nil
	}
	tx.ReceiptNo = receiptNo
	return true, nil
}

func (r *fakeTxRepo) ClaimInvoiceNumber(_ context.Context, id uuid.UUID, invoiceNo string) (bool, error) {
	tx, ok := r.txs[id]
	if !ok {
		return false, errors.New("not found")
	}
	if tx.InvoiceNo != "" {
		return false, nil
	}
	tx.InvoiceNo = invoiceNo
	return true, nil
}

type fakeCounterRepo struct {
	values map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{values: make(map[string]int64)}
}

func (r *fakeCounterRepo) NextValue(_ context.Context, scope entity.CounterScope, year int) (int64, error) {
	key := fmt.Sprintf("%s-%d", scope, year)
	r.values[key]++
	return r.values[key], nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLogEntry
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditLogEntry) error {
	prev := ""
	if len(r.entries) > 0 {
		prev = r.entries[len(r.entries)-1].Hash
	}
	entry.ChainFrom(prev)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) ListAll(_ context.Context) ([]entity.AuditLogEntry, error) {
	return r.entries, nil
}

func (r *fakeAuditRepo) actions() []enum.AuditAction {
	var actions []enum.AuditAction
	for _, e := range r.entries {
		actions = append(actions, e.Action)
	}
	return actions
}

type fakeSettingsRepo struct {
	settings *entity.SellerSettings
}

func (r *fakeSettingsRepo) GetCurrent(_ context.Context) (*entity.SellerSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) CreateVersion(_ context.Context, s *entity.SellerSettings) error {
	if r.settings != nil {
		s.Version = r.settings.Version + 1
	} else {
		s.Version = 1
	}
	r.settings = s
	return nil
}

type fakeLocationRepo struct{ loc *entity.Location }

func (r *fakeLocationRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Location, error) {
	return r.loc, nil
}
func (r *fakeLocationRepo) List(_ context.Context) ([]entity.Location, error) { return nil, nil }

type fakeTerminalRepo struct{ term *entity.Terminal }

func (r *fakeTerminalRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Terminal, error) {
	return r.term, nil
}
func (r *fakeTerminalRepo) List(_ context.Context) ([]entity.Terminal, error) { return nil, nil }

type fakeStorage struct {
	uploads  map[string][]byte
	failNext bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, key string, data []byte, _, _ string) (string, error) {
	if s.failNext {
		s.failNext = false
		return "", errors.New("upload failed")
	}
	s.uploads[key] = data
	return "/storage/" + key, nil
}

func (s *fakeStorage) Download(_ context.Context, key string) ([]byte, error) {
	return s.uploads[key], nil
}

func (s *fakeStorage) PublicURL(_ string) (string, bool) {
	return "", false
}

type fakeNotifier struct {
	invoices []string
}

func (n *fakeNotifier) InvoiceIssued(_ context.Context, _ *entity.Transaction, invoiceNo, _ string) error {
	n.invoices = append(n.invoices, invoiceNo)
	return nil
}

// --- fixtures ---

func testSeller() *entity.SellerSettings {
	return &entity.SellerSettings{
		Version:      1,
		BrandName:    "Artclub",
		LegalName:    "Artclub GmbH",
		AddressLine1: "Beispielstr. 1",
		PostalCode:   "10115",
		City:         "Berlin",
		Country:      "Deutschland",
		Steuernummer: "12/345/67890",
	}
}

func paidTransaction() *entity.Transaction {
	approved := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	return &entity.Transaction{
		ID:                uuid.New(),
		Status:            enum.TransactionStatusPaid,
		GrossCents:        11900,
		NetCents:          10000,
		VatCents:          1900,
		PaymentMethod:     "card",
		PaymentApprovedAt: &approved,
		CreatedAt:         approved.Add(-time.Minute),
		Items: []entity.TransactionItem{
			{Title: "Print No. 4", Quantity: 1, UnitGrossCents: 11900, VatRate: 19},
		},
	}
}

type documentFixture struct {
	svc      *DocumentService
	txRepo   *fakeTxRepo
	counters *fakeCounterRepo
	audit    *fakeAuditRepo
	store    *fakeStorage
	notifier *fakeNotifier
}

func newDocumentFixture(txs ...*entity.Transaction) *documentFixture {
	txRepo := newFakeTxRepo(txs...)
	counters := newFakeCounterRepo()
	audit := &fakeAuditRepo{}
	store := newFakeStorage()
	notifier := &fakeNotifier{}

	svc := NewDocumentService(
		txRepo,
		&fakeLocationRepo{},
		&fakeTerminalRepo{},
		&fakeSettingsRepo{settings: testSeller()},
		audit,
		NewSequenceService(counters),
		store,
		DefaultInvoicePolicy(),
		notifier,
	)

	return &documentFixture{svc: svc, txRepo: txRepo, counters: counters, audit: audit, store: store, notifier: notifier}
}

// --- tests ---

func TestEnsureDocumentsNotPaidIsNoOp(t *testing.T) {
	tx := paidTransaction()
	tx.Status = enum.TransactionStatusCreated
	f := newDocumentFixture(tx)

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.NoError(t, err)

	assert.False(t, result.ReceiptIssued)
	assert.Empty(t, f.store.uploads)
	assert.Empty(t, f.audit.entries)
	assert.Zero(t, f.txRepo.updateCalls)
}

func TestEnsureDocumentsUnknownTransactionIsNoOp(t *testing.T) {
	f := newDocumentFixture()

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, result.ReceiptIssued)
}

func TestEnsureDocumentsIssuesReceipt(t *testing.T) {
	tx := paidTransaction()
	f := newDocumentFixture(tx)

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.NoError(t, err)

	assert.True(t, result.ReceiptIssued)
	assert.Equal(t, "R-2025-000001", result.ReceiptNo)
	assert.Equal(t, "/storage/pos/receipts/2025/R-2025-000001.pdf", result.ReceiptPdfURL)

	data, ok := f.store.uploads["pos/receipts/2025/R-2025-000001.pdf"]
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4")))

	// No invoice: anonymous buyer
	assert.False(t, result.InvoiceIssued)
	assert.Equal(t, []enum.AuditAction{enum.AuditActionIssueReceipt}, f.audit.actions())

	assert.Equal(t, "R-2025-000001", tx.ReceiptNo)
	assert.Equal(t, 1, f.txRepo.updateCalls)
}

func TestEnsureDocumentsIsIdempotent(t *testing.T) {
	tx := paidTransaction()
	f := newDocumentFixture(tx)
	adminID := uuid.New()

	_, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)

	uploadsAfterFirst := len(f.store.uploads)
	auditsAfterFirst := len(f.audit.entries)
	updatesAfterFirst := f.txRepo.updateCalls

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)

	assert.False(t, result.ReceiptIssued)
	assert.Equal(t, "R-2025-000001", result.ReceiptNo)
	assert.Len(t, f.store.uploads, uploadsAfterFirst)
	assert.Len(t, f.audit.entries, auditsAfterFirst)
	assert.Equal(t, updatesAfterFirst, f.txRepo.updateCalls, "no update when nothing changed")
}

func TestEnsureDocumentsReusesNumberAfterUploadFailure(t *testing.T) {
	tx := paidTransaction()
	f := newDocumentFixture(tx)
	f.store.failNext = true

	_, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.Error(t, err)

	// The claimed number survived the failure.
	assert.Equal(t, "R-2025-000001", tx.ReceiptNo)
	assert.Empty(t, tx.ReceiptPdfURL)

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "R-2025-000001", result.ReceiptNo, "retry must not burn a fresh number")
	assert.Equal(t, int64(1), f.counters.values["receipt-2025"])
}

func TestEnsureDocumentsSanitizesStorageKey(t *testing.T) {
	tx := paidTransaction()
	tx.ReceiptNo = "R/2025 #01"
	f := newDocumentFixture(tx)

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "R/2025 #01", result.ReceiptNo)
	_, ok := f.store.uploads["pos/receipts/2025/R_2025__01.pdf"]
	assert.True(t, ok)
}

func TestEnsureDocumentsSkipsInvoiceOnMissingBuyer(t *testing.T) {
	tx := paidTransaction()
	tx.BuyerType = enum.BuyerTypeB2B
	tx.GrossCents = 50000
	f := newDocumentFixture(tx)
	adminID := uuid.New()

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)

	assert.True(t, result.ReceiptIssued)
	assert.False(t, result.InvoiceIssued)
	assert.Equal(t, "missing_buyer", result.InvoiceSkipped)
	assert.Equal(t, "missing_buyer", tx.InvoiceSkippedReason)
	assert.Equal(t,
		[]enum.AuditAction{enum.AuditActionIssueReceipt, enum.AuditActionInvoiceSkippedMissingBuyer},
		f.audit.actions())

	// Re-running does not record the skip again.
	result, err = f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)
	assert.Equal(t, "missing_buyer", result.InvoiceSkipped)
	assert.Len(t, f.audit.entries, 2)
}

func TestEnsureDocumentsIssuesInvoiceWhenBuyerComplete(t *testing.T) {
	tx := paidTransaction()
	tx.BuyerType = enum.BuyerTypeB2B
	tx.GrossCents = 50000
	tx.BuyerName = "Erika Mustermann"
	tx.BuyerCompany = "Muster AG"
	tx.BuyerEmail = "erika@muster.example"
	tx.BuyerBillingAddress = "Musterweg 2, 10115 Berlin"
	f := newDocumentFixture(tx)

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, uuid.New())
	require.NoError(t, err)

	assert.True(t, result.ReceiptIssued)
	assert.True(t, result.InvoiceIssued)
	assert.Equal(t, "I-2025-000001", result.InvoiceNo)
	_, ok := f.store.uploads["pos/invoices/2025/I-2025-000001.pdf"]
	assert.True(t, ok)

	assert.Equal(t,
		[]enum.AuditAction{enum.AuditActionIssueReceipt, enum.AuditActionIssueInvoice},
		f.audit.actions())
	assert.Equal(t, []string{"I-2025-000001"}, f.notifier.invoices)
}

func TestEnsureDocumentsClearsSkipReasonOnceBuyerArrives(t *testing.T) {
	tx := paidTransaction()
	tx.BuyerType = enum.BuyerTypeB2C
	tx.GrossCents = 150000
	f := newDocumentFixture(tx)
	adminID := uuid.New()

	_, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)
	assert.Equal(t, "missing_buyer", tx.InvoiceSkippedReason)

	// Buyer data arrives later.
	tx.BuyerName = "Max Mustermann"
	tx.BuyerBillingAddress = "Musterweg 2, 10115 Berlin"

	result, err := f.svc.EnsurePaidTransactionDocuments(context.Background(), tx.ID, adminID)
	require.NoError(t, err)

	assert.True(t, result.InvoiceIssued)
	assert.Empty(t, tx.InvoiceSkippedReason)
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	audit := &fakeAuditRepo{}
	adminID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, audit.Append(context.Background(), &entity.AuditLogEntry{
			ID:           uint(i + 1),
			ActorAdminID: adminID,
			Action:       enum.AuditActionIssueReceipt,
			Payload:      fmt.Sprintf(`{"receipt_no":"R-2025-%06d"}`, i+1),
		}))
	}

	svc := NewAuditService(audit)

	report, err := svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 3, report.Entries)
	assert.Equal(t, audit.entries[2].Hash, report.TailHash)

	// Tamper with the middle entry.
	audit.entries[1].Payload = `{"receipt_no":"R-2025-999999"}`

	report, err = svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, uint(2), report.BrokenAtID)
}
