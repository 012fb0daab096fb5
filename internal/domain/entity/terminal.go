package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terminal is a payment terminal registered at a location.
type Terminal struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LocationID *uuid.UUID     `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Serial     string         `gorm:"size:128" json:"serial,omitempty"`
	Provider   string         `gorm:"size:64" json:"provider,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// BeforeCreate generates a UUID before creating a new terminal
func (t *Terminal) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Terminal model
func (Terminal) TableName() string {
	return "terminals"
}
