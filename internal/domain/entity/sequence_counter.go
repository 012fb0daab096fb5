package entity

import "time"

// CounterScope identifies which numbering sequence a counter belongs to.
type CounterScope string

const (
	CounterScopeReceipt CounterScope = "receipt"
	CounterScopeInvoice CounterScope = "invoice"
)

// Prefix returns the document-number prefix for the scope.
func (s CounterScope) Prefix() string {
	if s == CounterScopeInvoice {
		return "I"
	}
	return "R"
}

// SequenceCounter holds the last issued value for a (scope, year) pair.
// Rows are created lazily on first use and never deleted; the value only
// moves forward, via a single atomic upsert at the persistence layer.
type SequenceCounter struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Scope     CounterScope `gorm:"size:16;not null;uniqueIndex:idx_counter_scope_year" json:"scope"`
	Year      int          `gorm:"not null;uniqueIndex:idx_counter_scope_year" json:"year"`
	Value     int64        `gorm:"not null;default:0" json:"value"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName returns the table name for the SequenceCounter model
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
