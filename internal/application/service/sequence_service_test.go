package service

import (
	"context"
	"testing"
	"time"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNumberFormat(t *testing.T) {
	svc := NewSequenceService(newFakeCounterRepo())
	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	receipt, err := svc.NextNumber(context.Background(), entity.CounterScopeReceipt, date)
	require.NoError(t, err)
	assert.Equal(t, "R-2025-000001", receipt)

	invoice, err := svc.NextNumber(context.Background(), entity.CounterScopeInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "I-2025-000001", invoice)
}

func TestNextNumberIsMonotonicPerScope(t *testing.T) {
	svc := NewSequenceService(newFakeCounterRepo())
	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		no, err := svc.NextNumber(context.Background(), entity.CounterScopeReceipt, date)
		require.NoError(t, err)
		assert.Equal(t, len("R-2025-000001"), len(no))
	}

	// Receipt allocations must not advance the invoice sequence.
	invoice, err := svc.NextNumber(context.Background(), entity.CounterScopeInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "I-2025-000001", invoice)
}

func TestNextNumberRestartsPerYear(t *testing.T) {
	svc := NewSequenceService(newFakeCounterRepo())

	no2025, err := svc.NextNumber(context.Background(), entity.CounterScopeReceipt,
		time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "R-2025-000001", no2025)

	no2026, err := svc.NextNumber(context.Background(), entity.CounterScopeReceipt,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "R-2026-000001", no2026)
}

func TestNextNumberUsesUTCYear(t *testing.T) {
	svc := NewSequenceService(newFakeCounterRepo())

	// 2026-01-01 00:30 Berlin time is still 2025 in UTC.
	berlin := time.FixedZone("CET", 3600)
	no, err := svc.NextNumber(context.Background(), entity.CounterScopeReceipt,
		time.Date(2026, 1, 1, 0, 30, 0, 0, berlin))
	require.NoError(t, err)
	assert.Equal(t, "R-2025-000001", no)
}
