package enum

// AuditAction enumerates the actions recorded in the append-only audit log.
type AuditAction string

const (
	AuditActionIssueReceipt               AuditAction = "ISSUE_RECEIPT"
	AuditActionIssueInvoice               AuditAction = "ISSUE_INVOICE"
	AuditActionInvoiceSkippedMissingBuyer AuditAction = "INVOICE_SKIPPED_MISSING_BUYER"
	AuditActionSellerSettingsUpdated      AuditAction = "SELLER_SETTINGS_UPDATED"
	AuditActionApplicationApproved        AuditAction = "APPLICATION_APPROVED"
	AuditActionApplicationRejected        AuditAction = "APPLICATION_REJECTED"
)
