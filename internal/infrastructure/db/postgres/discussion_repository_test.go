package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeforge/internal/domain/entities"
)

func TestDiscussionRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDiscussionRepository(db)
	author := createTestUser(t, db, "alice", "alice@example.com")

	validated, err := entities.NewValidatedDiscussion(
		entities.NewDiscussion("DP tips", "How do I get better at DP?", author.Id, author.Username, []string{"dynamic-programming"}))
	require.NoError(t, err)

	created, err := repo.Create(validated)
	require.NoError(t, err)

	found, err := repo.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "DP tips", found.Title)
	assert.Equal(t, "alice", found.AuthorUsername)
	assert.Equal(t, []string{"dynamic-programming"}, found.Tags)
}

func TestDiscussionRepository_IncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDiscussionRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "alice", "alice@example.com")

	validated, err := entities.NewValidatedDiscussion(
		entities.NewDiscussion("DP tips", "content", author.Id, author.Username, nil))
	require.NoError(t, err)
	created, err := repo.Create(validated)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementViews(ctx, created.Id))
	require.NoError(t, repo.IncrementViews(ctx, created.Id))

	found, err := repo.FindById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, found.ViewsCount)
}

func TestDiscussionRepository_CreateReplyBumpsCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDiscussionRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "alice", "alice@example.com")
	replier := createTestUser(t, db, "bob", "bob@example.com")

	validated, err := entities.NewValidatedDiscussion(
		entities.NewDiscussion("DP tips", "content", author.Id, author.Username, nil))
	require.NoError(t, err)
	discussion, err := repo.Create(validated)
	require.NoError(t, err)

	validatedReply, err := entities.NewValidatedReply(
		entities.NewReply(discussion.Id, "Practice daily.", replier.Id, replier.Username))
	require.NoError(t, err)

	reply, err := repo.CreateReply(validatedReply)
	require.NoError(t, err)
	assert.Equal(t, "Practice daily.", reply.Content)

	updated, err := repo.FindById(discussion.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.RepliesCount)
	assert.True(t, updated.LastActivity.After(discussion.CreatedAt) || updated.LastActivity.Equal(discussion.CreatedAt))

	replies, err := repo.ListReplies(ctx, discussion.Id)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "bob", replies[0].AuthorUsername)
}
