package entity

import (
	"encoding/json"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a POS transaction. Totals are written by the
// payment-capture pathway and are trusted as given by the document core.
type Transaction struct {
	ID         uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	Status     enum.TransactionStatus `gorm:"size:32;not null;index" json:"status"`
	LocationID *uuid.UUID             `gorm:"type:uuid;index" json:"location_id,omitempty"`
	TerminalID *uuid.UUID             `gorm:"type:uuid;index" json:"terminal_id,omitempty"`

	// Totals in cents, precomputed at capture time.
	GrossCents int64 `gorm:"not null;default:0" json:"gross_cents"`
	NetCents   int64 `gorm:"not null;default:0" json:"net_cents"`
	VatCents   int64 `gorm:"not null;default:0" json:"vat_cents"`

	// Buyer snapshot. Type is empty for anonymous walk-in buyers.
	BuyerType            enum.BuyerType `gorm:"size:8" json:"buyer_type,omitempty"`
	BuyerName            string         `gorm:"size:255" json:"buyer_name,omitempty"`
	BuyerCompany         string         `gorm:"size:255" json:"buyer_company,omitempty"`
	BuyerEmail           string         `gorm:"size:255" json:"buyer_email,omitempty"`
	BuyerPhone           string         `gorm:"size:64" json:"buyer_phone,omitempty"`
	BuyerBillingAddress  string         `gorm:"type:text" json:"buyer_billing_address,omitempty"`
	BuyerShippingAddress string         `gorm:"type:text" json:"buyer_shipping_address,omitempty"`

	// Payment snapshot.
	PaymentMethod     string     `gorm:"size:64" json:"payment_method,omitempty"`
	PaymentProvider   string     `gorm:"size:64" json:"payment_provider,omitempty"`
	PaymentApprovedAt *time.Time `json:"payment_approved_at,omitempty"`

	// TSE signature block as returned by the fiscal signing service.
	TseProvider         string `gorm:"size:64" json:"tse_provider,omitempty"`
	TseTxID             string `gorm:"size:128" json:"tse_tx_id,omitempty"`
	TseSerial           string `gorm:"size:128" json:"tse_serial,omitempty"`
	TseSignature        string `gorm:"type:text" json:"tse_signature,omitempty"`
	TseSignatureCounter int64  `gorm:"default:0" json:"tse_signature_counter,omitempty"`
	TseLogTime          string `gorm:"size:64" json:"tse_log_time,omitempty"`

	// Issued fiscal documents. Once a PDF URL is set the document is final
	// and is never regenerated.
	ReceiptNo            string `gorm:"size:32;index" json:"receipt_no,omitempty"`
	ReceiptPdfURL        string `gorm:"size:512" json:"receipt_pdf_url,omitempty"`
	InvoiceNo            string `gorm:"size:32;index" json:"invoice_no,omitempty"`
	InvoicePdfURL        string `gorm:"size:512" json:"invoice_pdf_url,omitempty"`
	InvoiceSkippedReason string `gorm:"size:64" json:"invoice_skipped_reason,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Location *Location         `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Terminal *Terminal         `gorm:"foreignKey:TerminalID" json:"terminal,omitempty"`
	Items    []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "pos_transactions"
}

// IsPaid reports whether the transaction reached the paid state.
func (t *Transaction) IsPaid() bool {
	return t.Status == enum.TransactionStatusPaid
}

// TransactionItem is a line item snapshot on a POS transaction. Title and
// price are copied at capture time so later catalog edits cannot change
// issued documents.
type TransactionItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	UnitGrossCents int64     `gorm:"not null" json:"-"`
	VatRate        int       `gorm:"not null;default:19" json:"vat_rate"`
	CreatedAt      time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to expose cent amounts as decimals
func (it TransactionItem) MarshalJSON() ([]byte, error) {
	type Alias TransactionItem
	return json.Marshal(&struct {
		Alias
		UnitGross float64 `json:"unit_gross"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(it),
		UnitGross: float64(it.UnitGrossCents) / 100,
		LineTotal: float64(it.UnitGrossCents*int64(it.Quantity)) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new transaction item
func (it *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "pos_transaction_items"
}

// LineTotalCents returns quantity times unit gross price.
func (it *TransactionItem) LineTotalCents() int64 {
	return int64(it.Quantity) * it.UnitGrossCents
}
