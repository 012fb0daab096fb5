package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN. Tests that
// need a real Postgres are skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// Concurrent appends must serialize chain construction. A plain locking read
// of the tail row lets a blocked session resume with its pre-commit snapshot
// and chain onto the same predecessor as the session it waited for, which
// forks the chain and makes verification report tampering on an honest log.
func TestAuditRepository_ConcurrentAppendsKeepChainIntact(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.AutoMigrate(&entity.AuditLogEntry{}))
	require.NoError(t, db.Exec("TRUNCATE audit_log_entries RESTART IDENTITY").Error)

	repo := NewAuditRepository(db)
	ctx := context.Background()

	const workers = 8
	const appendsPerWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*appendsPerWorker)
	start := make(chan struct{})

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < appendsPerWorker; i++ {
				txID := uuid.New()
				errs <- repo.Append(ctx, &entity.AuditLogEntry{
					ActorAdminID:  uuid.New(),
					Action:        enum.AuditActionIssueReceipt,
					TransactionID: &txID,
					Payload:       `{"receipt_no":"R-2025-000001"}`,
				})
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, workers*appendsPerWorker)

	// Exactly one genesis entry, and every hash links to its predecessor.
	prevHash := ""
	for i := range entries {
		e := &entries[i]
		require.True(t, e.VerifyAgainst(prevHash),
			"chain broken at entry %d (id %d)", i, e.ID)
		prevHash = e.Hash
	}
}
