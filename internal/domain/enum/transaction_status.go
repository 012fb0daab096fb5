package enum

// TransactionStatus represents the lifecycle state of a POS transaction.
// Stored as a string because the states are written by external payment
// pathways and read by humans in the back office.
type TransactionStatus string

const (
	TransactionStatusCreated        TransactionStatus = "created"
	TransactionStatusPaymentPending TransactionStatus = "payment_pending"
	TransactionStatusPaid           TransactionStatus = "paid"
	TransactionStatusFailed         TransactionStatus = "failed"
	TransactionStatusCancelled      TransactionStatus = "cancelled"
	TransactionStatusRefunded       TransactionStatus = "refunded"
	TransactionStatusStorno         TransactionStatus = "storno"
)

// Valid reports whether s is one of the known lifecycle states.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusCreated, TransactionStatusPaymentPending,
		TransactionStatusPaid, TransactionStatusFailed,
		TransactionStatusCancelled, TransactionStatusRefunded,
		TransactionStatusStorno:
		return true
	}
	return false
}
