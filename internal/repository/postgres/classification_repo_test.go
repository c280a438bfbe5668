package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/skinaid/skinaid-web/internal/repository/postgres"
	"github.com/skinaid/skinaid-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationRepository_GetByUserID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewClassificationRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	older := testutil.NewClassificationBuilder().
		WithOwner(owner).
		WithPrediction("Psoriasis pictures Lichen Planus").
		Build(t, testDB.DB)
	require.NoError(t, testDB.DB.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := testutil.NewClassificationBuilder().
		WithOwner(owner).
		WithPrediction("Eczema Photos").
		Build(t, testDB.DB)

	testutil.NewClassificationBuilder().WithOwner(other).Build(t, testDB.DB)

	records, err := repo.GetByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first, and nothing from the other owner
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
	for _, rec := range records {
		assert.Equal(t, owner.ID, rec.UserID)
	}
}
