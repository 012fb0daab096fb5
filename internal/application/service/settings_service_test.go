package service

import (
	"context"
	"testing"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsCreatesNewVersion(t *testing.T) {
	repo := &fakeSettingsRepo{settings: testSeller()}
	audit := &fakeAuditRepo{}
	svc := NewSettingsService(repo, audit)
	adminID := uuid.New()

	updated, err := svc.UpdateSettings(context.Background(), adminID, &entity.SellerSettings{
		BrandName: "Artclub",
		LegalName: "Artclub GmbH",
		City:      "Hamburg",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Version)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, enum.AuditActionSellerSettingsUpdated, audit.entries[0].Action)
	assert.Equal(t, adminID, audit.entries[0].ActorAdminID)

	current, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", current.City)
}

func TestUpdateSettingsRequiresNames(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, &fakeAuditRepo{})

	_, err := svc.UpdateSettings(context.Background(), uuid.New(), &entity.SellerSettings{
		BrandName: "Artclub",
	})
	assert.Error(t, err)
}

func TestGetCurrentWithoutSettings(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, &fakeAuditRepo{})

	_, err := svc.GetCurrent(context.Background())
	assert.Error(t, err)
}
