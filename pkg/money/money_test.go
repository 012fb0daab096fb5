package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetCentsZeroRatePassthrough(t *testing.T) {
	for _, gross := range []int64{0, 1, 99, 100, 12345, 99999999} {
		assert.Equal(t, gross, NetCents(gross, 0))
	}
}

func TestNetCentsDecomposition(t *testing.T) {
	tests := []struct {
		gross int64
		rate  int
		net   int64
	}{
		{11900, 19, 10000},
		{10700, 7, 10000},
		{100, 19, 84}, // 84.03 rounds down
		{119, 19, 100},
		{107, 7, 100},
		{1, 19, 1}, // 0.84 rounds up
		{0, 19, 0},
		{19999, 19, 16806},
		{20000, 19, 16807}, // 16806.72 rounds up
	}
	for _, tt := range tests {
		assert.Equal(t, tt.net, NetCents(tt.gross, tt.rate), "gross=%d rate=%d", tt.gross, tt.rate)
	}
}

func TestNetPlusVatEqualsGross(t *testing.T) {
	for _, rate := range []int{0, 7, 19} {
		for gross := int64(0); gross < 5000; gross++ {
			net := NetCents(gross, rate)
			vat := VatCents(gross, rate)
			require.Equal(t, gross, net+vat)
			require.GreaterOrEqual(t, vat, int64(0))
			require.LessOrEqual(t, net, gross)
		}
	}
}

func TestVatBreakdownAggregatesPerRate(t *testing.T) {
	items := []LineItem{
		{Quantity: 2, UnitGrossCents: 1000, VatRate: 19},
		{Quantity: 1, UnitGrossCents: 500, VatRate: 19},
		{Quantity: 3, UnitGrossCents: 200, VatRate: 7},
	}

	buckets := VatBreakdown(items)
	require.Len(t, buckets, 2)

	// Sorted ascending by rate.
	assert.Equal(t, 7, buckets[0].Rate)
	assert.Equal(t, int64(600), buckets[0].GrossCents)
	assert.Equal(t, 19, buckets[1].Rate)
	assert.Equal(t, int64(2500), buckets[1].GrossCents)

	var bucketGross, itemGross int64
	for _, b := range buckets {
		bucketGross += b.GrossCents
		assert.Equal(t, b.GrossCents, b.NetCents+b.VatCents)
	}
	for _, it := range items {
		itemGross += int64(it.Quantity) * it.UnitGrossCents
	}
	assert.Equal(t, itemGross, bucketGross)
}

func TestVatBreakdownOmitsEmptyBuckets(t *testing.T) {
	buckets := VatBreakdown([]LineItem{{Quantity: 1, UnitGrossCents: 100, VatRate: 19}})
	require.Len(t, buckets, 1)
	assert.Equal(t, 19, buckets[0].Rate)

	assert.Empty(t, VatBreakdown(nil))
}

func TestVatBreakdownDerivesFromBucketGross(t *testing.T) {
	// 101 cents at 19% rounds to 85 net per line (84.87 -> 85).
	// Per-line rounding then summing would give 85*3 = 255;
	// bucket-level derivation gives round(303 * 100/119) = 255 here,
	// but for 33 cents: per-line round(27.73)=28, x3 = 84 vs
	// bucket round(99*100/119) = 83. The bucket value is authoritative.
	buckets := VatBreakdown([]LineItem{
		{Quantity: 1, UnitGrossCents: 33, VatRate: 19},
		{Quantity: 1, UnitGrossCents: 33, VatRate: 19},
		{Quantity: 1, UnitGrossCents: 33, VatRate: 19},
	})
	require.Len(t, buckets, 1)
	assert.Equal(t, int64(99), buckets[0].GrossCents)
	assert.Equal(t, int64(83), buckets[0].NetCents)
	assert.Equal(t, int64(16), buckets[0].VatCents)
}

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "0.00 EUR", FormatEUR(0))
	assert.Equal(t, "12.50 EUR", FormatEUR(1250))
	assert.Equal(t, "0.05 EUR", FormatEUR(5))
	assert.Equal(t, "-3.40 EUR", FormatEUR(-340))
}
