package entity

import (
	"time"

	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtistApplication is an onboarding application submitted through the
// public wizard and reviewed in the back office.
type ArtistApplication struct {
	ID         uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ArtistID   *uuid.UUID             `gorm:"type:uuid;index" json:"artist_id,omitempty"`
	Status     enum.ApplicationStatus `gorm:"default:0" json:"status"`
	Name       string                 `gorm:"size:255;not null" json:"name"`
	Email      string                 `gorm:"size:255;not null;index" json:"email"`
	Portfolio  *string                `gorm:"size:512" json:"portfolio,omitempty"`
	Statement  *string                `gorm:"type:text" json:"statement,omitempty"`
	ReviewNote *string                `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedBy *uuid.UUID             `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time             `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	DeletedAt  gorm.DeletedAt         `gorm:"index" json:"-"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}

// BeforeCreate generates a UUID before creating a new application
func (a *ArtistApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ArtistApplication model
func (ArtistApplication) TableName() string {
	return "artist_applications"
}

// IsOpen reports whether the application is still awaiting a decision.
func (a *ArtistApplication) IsOpen() bool {
	return a.Status == enum.ApplicationStatusSubmitted || a.Status == enum.ApplicationStatusInReview
}
