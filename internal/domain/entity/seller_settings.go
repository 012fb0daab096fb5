package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerSettings is the seller identity printed on receipts and invoices.
// Rows are versioned snapshots: updates insert a new row with a higher
// version instead of mutating in place, so documents issued under an older
// version are never retroactively changed.
type SellerSettings struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Version int       `gorm:"not null;uniqueIndex" json:"version"`

	BrandName    string `gorm:"size:255;not null" json:"brand_name"`
	LegalName    string `gorm:"size:255;not null" json:"legal_name"`
	AddressLine1 string `gorm:"size:255" json:"address_line1"`
	AddressLine2 string `gorm:"size:255" json:"address_line2,omitempty"`
	PostalCode   string `gorm:"size:16" json:"postal_code"`
	City         string `gorm:"size:128" json:"city"`
	Country      string `gorm:"size:64" json:"country"`

	// German tax identifiers.
	Steuernummer string `gorm:"size:64" json:"steuernummer,omitempty"`
	UstIDNr      string `gorm:"size:64" json:"ust_id_nr,omitempty"`
	Finanzamt    string `gorm:"size:128" json:"finanzamt,omitempty"`

	// Footer lines printed at the bottom of every document, one per line.
	FooterLine1 string `gorm:"size:255" json:"footer_line1,omitempty"`
	FooterLine2 string `gorm:"size:255" json:"footer_line2,omitempty"`
	FooterLine3 string `gorm:"size:255" json:"footer_line3,omitempty"`

	Locale   string `gorm:"size:10;default:'de-DE'" json:"locale"`
	Currency string `gorm:"size:10;default:'EUR'" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new settings version
func (s *SellerSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SellerSettings model
func (SellerSettings) TableName() string {
	return "seller_settings"
}

// FooterLines returns the non-empty footer lines in order.
func (s *SellerSettings) FooterLines() []string {
	var lines []string
	for _, l := range []string{s.FooterLine1, s.FooterLine2, s.FooterLine3} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
