package money

import (
	"fmt"
	"math"
	"sort"
)

// LineItem is the minimal view of a transaction line needed for VAT math.
type LineItem struct {
	Quantity       int
	UnitGrossCents int64
	VatRate        int // percent: 0, 7 or 19
}

// VatBucket aggregates all line items sharing one VAT rate.
type VatBucket struct {
	Rate       int   `json:"rate"`
	GrossCents int64 `json:"gross_cents"`
	NetCents   int64 `json:"net_cents"`
	VatCents   int64 `json:"vat_cents"`
}

// NetCents decomposes a gross amount into its net part for the given VAT rate.
// Rate 0 passes the gross through unchanged. Rounding is half-up on the
// floating intermediate; the invariant net + (gross - net) == gross holds by
// construction and gross - net is never negative for non-negative input.
func NetCents(grossCents int64, vatRate int) int64 {
	if vatRate == 0 {
		return grossCents
	}
	return int64(math.Round(float64(grossCents) * 100 / float64(100+vatRate)))
}

// VatCents returns the VAT part of a gross amount for the given rate.
func VatCents(grossCents int64, vatRate int) int64 {
	return grossCents - NetCents(grossCents, vatRate)
}

// VatBreakdown groups items by VAT rate and derives net/vat once per bucket
// from the aggregated bucket gross. Deriving from the bucket total (instead
// of rounding per line and summing) keeps many same-rate lines from drifting
// by a cent. Buckets with no lines are omitted; output is sorted by rate.
func VatBreakdown(items []LineItem) []VatBucket {
	grossByRate := make(map[int]int64)
	for _, it := range items {
		grossByRate[it.VatRate] += int64(it.Quantity) * it.UnitGrossCents
	}

	buckets := make([]VatBucket, 0, len(grossByRate))
	for rate, gross := range grossByRate {
		net := NetCents(gross, rate)
		buckets = append(buckets, VatBucket{
			Rate:       rate,
			GrossCents: gross,
			NetCents:   net,
			VatCents:   gross - net,
		})
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Rate < buckets[j].Rate })
	return buckets
}

// FormatEUR renders a cent amount as a decimal euro string, e.g. "12.50 EUR".
// Document lines are ASCII only, so the currency is spelled out rather than
// using the euro sign.
func FormatEUR(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d EUR", sign, cents/100, cents%100)
}
