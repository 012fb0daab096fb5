package service

import (
	"strings"
	"testing"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptInput() documentInput {
	tx := paidTransaction()
	tx.ID = uuid.MustParse("7b0e8a6e-1111-4222-8333-444455556666")
	return documentInput{
		Tx:     tx,
		Seller: testSeller(),
		Location: &entity.Location{
			Name:    "Galerie Berlin",
			Address: "Beispielstr. 1, 10115 Berlin",
		},
		Terminal:  &entity.Terminal{Name: "Kasse 1"},
		Breakdown: money.VatBreakdown([]money.LineItem{{Quantity: 1, UnitGrossCents: 11900, VatRate: 19}}),
		Number:    "R-2025-000042",
		IssuedAt:  time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildReceiptLinesIsDeterministic(t *testing.T) {
	in := receiptInput()
	assert.Equal(t, buildReceiptLines(in), buildReceiptLines(in))
}

func TestBuildReceiptLinesSections(t *testing.T) {
	lines := buildReceiptLines(receiptInput())
	joined := strings.Join(lines, "\n")

	assert.Equal(t, "Artclub", lines[0])
	assert.Equal(t, "KASSENBELEG / RECEIPT", lines[1])
	assert.Contains(t, joined, "Receipt No: R-2025-000042")
	assert.Contains(t, joined, "Date: 2025-03-14 12:00:00 UTC")

	for _, section := range []string{"LOCATION", "ORDER SUMMARY", "VAT SUMMARY", "TOTALS", "PAYMENT", "SELLER"} {
		assert.Contains(t, joined, "==== "+section+" ====")
	}

	assert.Contains(t, joined, "1x Print No. 4")
	assert.Contains(t, joined, "VAT 19%: gross 119.00 EUR / net 100.00 EUR / vat 19.00 EUR")
	assert.Contains(t, joined, "Gross: 119.00 EUR")
	assert.Contains(t, joined, "Method: card")
	assert.Contains(t, joined, "Steuernummer: 12/345/67890")
}

func TestBuildReceiptLinesOmitsBuyerBlockWhenAnonymous(t *testing.T) {
	lines := buildReceiptLines(receiptInput())
	assert.NotContains(t, strings.Join(lines, "\n"), "==== BUYER ====")
}

func TestBuildInvoiceLinesHasNoLocationOrPayment(t *testing.T) {
	in := receiptInput()
	in.Tx.BuyerName = "Erika Mustermann"
	in.Tx.BuyerBillingAddress = "Musterweg 2, 10115 Berlin"
	in.Number = "I-2025-000007"

	lines := buildInvoiceLines(in)
	joined := strings.Join(lines, "\n")

	assert.Equal(t, "RECHNUNG / INVOICE", lines[1])
	assert.Contains(t, joined, "Invoice No: I-2025-000007")
	assert.Contains(t, joined, "==== BUYER ====")
	assert.Contains(t, joined, "Name: Erika Mustermann")
	assert.NotContains(t, joined, "==== LOCATION ====")
	assert.NotContains(t, joined, "==== PAYMENT ====")
}

func TestBuyerLinesOmitEmptyFields(t *testing.T) {
	tx := paidTransaction()
	tx.BuyerName = "Max Mustermann"
	tx.BuyerBillingAddress = "Musterweg 2"

	lines := buyerLines(tx)
	require.NotEmpty(t, lines)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Name: Max Mustermann")
	assert.NotContains(t, joined, "Company:")
	assert.NotContains(t, joined, "Email:")
	assert.NotContains(t, joined, "Phone:")
}

func TestTseLinesTruncatesSignature(t *testing.T) {
	tx := paidTransaction()
	tx.TseProvider = "fiskaly"
	tx.TseSerial = "TSE-0001"
	tx.TseSignature = strings.Repeat("a", 400)
	tx.TseSignatureCounter = 77

	lines := tseLines(tx)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Signature Counter: 77")
	assert.Contains(t, joined, "Signature: "+strings.Repeat("a", tseSignatureMaxLen)+"...")
	assert.NotContains(t, joined, strings.Repeat("a", tseSignatureMaxLen+1))
}

func TestTseLinesAbsentWithoutSignatureData(t *testing.T) {
	tx := paidTransaction()
	assert.Nil(t, tseLines(tx))
}

func TestFooterLinesFromSellerSettings(t *testing.T) {
	seller := testSeller()
	seller.FooterLine1 = "Thank you for supporting art!"
	seller.FooterLine3 = "www.artclub.example"

	lines := footerLines(seller)
	require.Len(t, lines, 3)
	assert.Equal(t, "==== NOTES ====", lines[0])
	assert.Equal(t, "Thank you for supporting art!", lines[1])
	assert.Equal(t, "www.artclub.example", lines[2])
}
