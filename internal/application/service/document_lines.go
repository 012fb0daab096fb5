package service

import (
	"fmt"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/pkg/money"
)

// Document content builders. Pure functions from a transaction snapshot to
// ordered text lines; the only timestamp is the transaction's own, so the
// same input always produces the same document.

const tseSignatureMaxLen = 180

// documentInput bundles everything a document is built from.
type documentInput struct {
	Tx        *entity.Transaction
	Seller    *entity.SellerSettings
	Location  *entity.Location
	Terminal  *entity.Terminal
	Breakdown []money.VatBucket
	Number    string
	IssuedAt  time.Time
}

func sectionHeader(title string) string {
	return fmt.Sprintf("==== %s ====", title)
}

// buildReceiptLines assembles the full receipt content.
func buildReceiptLines(in documentInput) []string {
	lines := []string{
		in.Seller.BrandName,
		"KASSENBELEG / RECEIPT",
		"",
		fmt.Sprintf("Receipt No: %s", in.Number),
		fmt.Sprintf("Date: %s", in.IssuedAt.UTC().Format("2006-01-02 15:04:05 UTC")),
		fmt.Sprintf("Transaction: %s", in.Tx.ID),
		"",
	}

	if in.Location != nil || in.Terminal != nil {
		lines = append(lines, sectionHeader("LOCATION"))
		if in.Location != nil {
			lines = append(lines, fmt.Sprintf("Location: %s", in.Location.Name))
			if in.Location.Address != "" {
				lines = append(lines, in.Location.Address)
			}
		}
		if in.Terminal != nil {
			lines = append(lines, fmt.Sprintf("Terminal: %s", in.Terminal.Name))
		}
		lines = append(lines, "")
	}

	lines = append(lines, itemLines(in.Tx)...)
	lines = append(lines, vatSummaryLines(in.Breakdown)...)
	lines = append(lines, totalsLines(in.Tx)...)

	lines = append(lines, sectionHeader("PAYMENT"))
	method := in.Tx.PaymentMethod
	if method == "" {
		method = "unknown"
	}
	lines = append(lines, fmt.Sprintf("Method: %s", method))
	if in.Tx.PaymentProvider != "" {
		lines = append(lines, fmt.Sprintf("Provider: %s", in.Tx.PaymentProvider))
	}
	lines = append(lines, "")

	lines = append(lines, buyerLines(in.Tx)...)
	lines = append(lines, sellerLines(in.Seller)...)
	lines = append(lines, tseLines(in.Tx)...)
	lines = append(lines, footerLines(in.Seller)...)

	return lines
}

// buildInvoiceLines assembles the full invoice content. Unlike the receipt
// it has no location/terminal or payment section, but the buyer block is
// mandatory (issuance is gated on buyer data being present).
func buildInvoiceLines(in documentInput) []string {
	lines := []string{
		in.Seller.BrandName,
		"RECHNUNG / INVOICE",
		"",
		fmt.Sprintf("Invoice No: %s", in.Number),
		fmt.Sprintf("Date: %s", in.IssuedAt.UTC().Format("2006-01-02 15:04:05 UTC")),
		fmt.Sprintf("Transaction: %s", in.Tx.ID),
		"",
	}

	lines = append(lines, buyerLines(in.Tx)...)
	lines = append(lines, itemLines(in.Tx)...)
	lines = append(lines, vatSummaryLines(in.Breakdown)...)
	lines = append(lines, totalsLines(in.Tx)...)
	lines = append(lines, sellerLines(in.Seller)...)
	lines = append(lines, tseLines(in.Tx)...)
	lines = append(lines, footerLines(in.Seller)...)

	return lines
}

func itemLines(tx *entity.Transaction) []string {
	lines := []string{sectionHeader("ORDER SUMMARY")}
	for _, it := range tx.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", it.Quantity, it.Title))
		lines = append(lines, fmt.Sprintf("    %s x %d @ %d%% VAT = %s",
			money.FormatEUR(it.UnitGrossCents), it.Quantity, it.VatRate,
			money.FormatEUR(it.LineTotalCents())))
	}
	return append(lines, "")
}

func vatSummaryLines(breakdown []money.VatBucket) []string {
	lines := []string{sectionHeader("VAT SUMMARY")}
	for _, b := range breakdown {
		lines = append(lines, fmt.Sprintf("VAT %d%%: gross %s / net %s / vat %s",
			b.Rate, money.FormatEUR(b.GrossCents), money.FormatEUR(b.NetCents),
			money.FormatEUR(b.VatCents)))
	}
	return append(lines, "")
}

func totalsLines(tx *entity.Transaction) []string {
	return []string{
		sectionHeader("TOTALS"),
		fmt.Sprintf("Net:   %s", money.FormatEUR(tx.NetCents)),
		fmt.Sprintf("VAT:   %s", money.FormatEUR(tx.VatCents)),
		fmt.Sprintf("Gross: %s", money.FormatEUR(tx.GrossCents)),
		"",
	}
}

// buyerLines renders the buyer block, omitting empty fields. Anonymous
// transactions produce no block at all.
func buyerLines(tx *entity.Transaction) []string {
	fields := []struct {
		label string
		value string
	}{
		{"Name", tx.BuyerName},
		{"Company", tx.BuyerCompany},
		{"Email", tx.BuyerEmail},
		{"Phone", tx.BuyerPhone},
		{"Billing Address", tx.BuyerBillingAddress},
		{"Shipping Address", tx.BuyerShippingAddress},
	}

	var lines []string
	for _, f := range fields {
		if f.value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", f.label, f.value))
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return append(append([]string{sectionHeader("BUYER")}, lines...), "")
}

func sellerLines(s *entity.SellerSettings) []string {
	lines := []string{sectionHeader("SELLER")}
	lines = append(lines, s.LegalName)
	if s.AddressLine1 != "" {
		lines = append(lines, s.AddressLine1)
	}
	if s.AddressLine2 != "" {
		lines = append(lines, s.AddressLine2)
	}
	if s.PostalCode != "" || s.City != "" {
		lines = append(lines, fmt.Sprintf("%s %s", s.PostalCode, s.City))
	}
	if s.Country != "" {
		lines = append(lines, s.Country)
	}
	if s.Steuernummer != "" {
		lines = append(lines, fmt.Sprintf("Steuernummer: %s", s.Steuernummer))
	}
	if s.UstIDNr != "" {
		lines = append(lines, fmt.Sprintf("USt-IdNr: %s", s.UstIDNr))
	}
	if s.Finanzamt != "" {
		lines = append(lines, fmt.Sprintf("Finanzamt: %s", s.Finanzamt))
	}
	return append(lines, "")
}

// tseLines renders the fiscal signature block. The signature itself is
// truncated: full TSE signatures run to several hundred characters and
// would dominate the document.
func tseLines(tx *entity.Transaction) []string {
	if tx.TseProvider == "" && tx.TseSignature == "" {
		return nil
	}

	sig := tx.TseSignature
	if len(sig) > tseSignatureMaxLen {
		sig = sig[:tseSignatureMaxLen] + "..."
	}

	lines := []string{sectionHeader("TSE")}
	if tx.TseProvider != "" {
		lines = append(lines, fmt.Sprintf("Provider: %s", tx.TseProvider))
	}
	if tx.TseSerial != "" {
		lines = append(lines, fmt.Sprintf("Serial: %s", tx.TseSerial))
	}
	if tx.TseTxID != "" {
		lines = append(lines, fmt.Sprintf("TSE-Tx: %s", tx.TseTxID))
	}
	lines = append(lines, fmt.Sprintf("Signature Counter: %d", tx.TseSignatureCounter))
	if tx.TseLogTime != "" {
		lines = append(lines, fmt.Sprintf("Log Time: %s", tx.TseLogTime))
	}
	if sig != "" {
		lines = append(lines, fmt.Sprintf("Signature: %s", sig))
	}
	return append(lines, "")
}

func footerLines(s *entity.SellerSettings) []string {
	footer := s.FooterLines()
	if len(footer) == 0 {
		return nil
	}
	return append([]string{sectionHeader("NOTES")}, footer...)
}
