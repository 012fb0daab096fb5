package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist represents an onboarded marketplace artist.
type Artist struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone      *string        `gorm:"size:64" json:"phone,omitempty"`
	Website    *string        `gorm:"size:255" json:"website,omitempty"`
	Instagram  *string        `gorm:"size:255" json:"instagram,omitempty"`
	Bio        *string        `gorm:"type:text" json:"bio,omitempty"`
	PayoutIBAN *string        `gorm:"size:64" json:"payout_iban,omitempty"`
	UstIDNr    *string        `gorm:"size:64" json:"ust_id_nr,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Applications []ArtistApplication `gorm:"foreignKey:ArtistID" json:"applications,omitempty"`
}

// BeforeCreate generates a UUID before creating a new artist
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}
