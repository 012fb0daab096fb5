package service

import (
	"strings"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
)

// InvoicePolicy decides when a transaction legally requires an invoice in
// addition to the receipt. The thresholds track German small-amount invoice
// rules and are configuration, not code constants, because they can change
// with regulation.
type InvoicePolicy struct {
	B2BThresholdCents int64
	B2CThresholdCents int64
}

// DefaultInvoicePolicy returns the current statutory thresholds:
// EUR 200 gross for business buyers, EUR 1000 gross for consumers.
func DefaultInvoicePolicy() InvoicePolicy {
	return InvoicePolicy{
		B2BThresholdCents: 20000,
		B2CThresholdCents: 100000,
	}
}

// ShouldIssueInvoice reports whether an invoice must be issued for the given
// buyer type and gross amount. Anonymous buyers never require one.
func (p InvoicePolicy) ShouldIssueInvoice(buyerType enum.BuyerType, grossCents int64) bool {
	switch buyerType {
	case enum.BuyerTypeB2B:
		return grossCents >= p.B2BThresholdCents
	case enum.BuyerTypeB2C:
		return grossCents >= p.B2CThresholdCents
	default:
		return false
	}
}

// HasRequiredInvoiceBuyerData reports whether the transaction carries enough
// buyer data to put on a legally valid invoice: a name and billing address
// always, plus a company name for business buyers.
func HasRequiredInvoiceBuyerData(tx *entity.Transaction) bool {
	if strings.TrimSpace(tx.BuyerName) == "" {
		return false
	}
	if strings.TrimSpace(tx.BuyerBillingAddress) == "" {
		return false
	}
	if tx.BuyerType == enum.BuyerTypeB2B && strings.TrimSpace(tx.BuyerCompany) == "" {
		return false
	}
	return true
}
