package service

import (
	"testing"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReceiptContainsDocumentData(t *testing.T) {
	data := FormatReceipt(&entity.PrintableReceipt{
		BrandName:   "Artclub",
		TaxID:       "12/345/67890",
		ReceiptNo:   "R-2025-000042",
		Date:        "2025-03-14 12:00",
		PaymentType: "card",
		Items: []entity.PrintableReceiptItem{
			{Title: "Print No. 4", Quantity: 2, UnitGrossCents: 5950, TotalCents: 11900},
		},
		NetCents:    10000,
		VatCents:    1900,
		GrossCents:  11900,
		TseSerial:   "TSE-0001",
		TseSigCount: 77,
	})

	require.NotEmpty(t, data)
	out := string(data)

	assert.Contains(t, out, "Artclub")
	assert.Contains(t, out, "R-2025-000042")
	assert.Contains(t, out, "Print No. 4")
	assert.Contains(t, out, "119.00 EUR")
	assert.Contains(t, out, "@ 59.50 EUR each")
	assert.Contains(t, out, "TSE-0001")

	// ESC/POS init sequence and partial cut at the end.
	assert.Equal(t, byte(0x1B), data[0])
	assert.Contains(t, out, string([]byte{0x1D, 0x56}))
}
