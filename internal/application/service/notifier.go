package service

import (
	"context"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/pkg/email"
)

// EmailDocumentNotifier sends the buyer a download link when their invoice
// is issued.
type EmailDocumentNotifier struct {
	emails *email.EmailService
}

// NewEmailDocumentNotifier creates a notifier backed by the email service.
func NewEmailDocumentNotifier(emails *email.EmailService) *EmailDocumentNotifier {
	return &EmailDocumentNotifier{emails: emails}
}

// InvoiceIssued implements DocumentNotifier.
func (n *EmailDocumentNotifier) InvoiceIssued(_ context.Context, tx *entity.Transaction, invoiceNo, pdfURL string) error {
	name := tx.BuyerName
	if name == "" {
		name = "Customer"
	}
	return n.emails.SendInvoiceIssuedEmail(tx.BuyerEmail, name, invoiceNo, pdfURL)
}
