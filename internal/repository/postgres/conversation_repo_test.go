package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/domain"
	"github.com/skinaid/skinaid-web/internal/repository/postgres"
	"github.com/skinaid/skinaid-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewConversationRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	conversation := &domain.Conversation{
		ID:     uuid.New(),
		UserID: owner.ID,
		Messages: []domain.Message{
			{Sender: domain.SenderUser, Content: "hello"},
			{Sender: domain.SenderBot, Content: "hi, how can I help?"},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, conversation))

	got, err := repo.GetByID(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, got.ID)
	assert.Equal(t, owner.ID, got.UserID)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "hello", got.Messages[0].Content)
	assert.Equal(t, domain.SenderBot, got.Messages[1].Sender)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.Error(t, err)
}

func TestConversationRepository_UpdatePreservesOrder(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewConversationRepository(testDB.DB)
	ctx := context.Background()

	conversation := testutil.NewConversationBuilder().Build(t, testDB.DB)
	before := len(conversation.Messages)

	conversation.Messages = append(conversation.Messages,
		domain.Message{Sender: domain.SenderUser, Content: "follow-up question"},
		domain.Message{Sender: domain.SenderBot, Content: "follow-up answer"},
	)
	require.NoError(t, repo.Update(ctx, conversation))

	got, err := repo.GetByID(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, before+2)
	assert.Equal(t, "follow-up question", got.Messages[before].Content)
	assert.Equal(t, "follow-up answer", got.Messages[before+1].Content)
}

func TestConversationRepository_GetByUserID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewConversationRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	older := testutil.NewConversationBuilder().WithOwner(owner).Build(t, testDB.DB)
	// Spread updated_at so the recency ordering is deterministic
	require.NoError(t, testDB.DB.Model(older).Update("updated_at", time.Now().Add(-time.Hour)).Error)
	newer := testutil.NewConversationBuilder().WithOwner(owner).Build(t, testDB.DB)
	testutil.NewConversationBuilder().WithOwner(other).Build(t, testDB.DB)

	conversations, err := repo.GetByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, newer.ID, conversations[0].ID)
	assert.Equal(t, older.ID, conversations[1].ID)
	for _, c := range conversations {
		assert.Equal(t, owner.ID, c.UserID)
	}
}
