package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
)

func createTestContest(t *testing.T, db *gorm.DB, title string, start time.Time) *entities.Contest {
	t.Helper()

	validated, err := entities.NewValidatedContest(entities.NewContest(title, "description", start, 90))
	require.NoError(t, err)

	created, err := NewContestRepository(db).Create(validated)
	require.NoError(t, err)
	return created
}

func TestContestRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContestRepository(db)
	created := createTestContest(t, db, "Weekly Contest 420", time.Now().Add(time.Hour))

	found, err := repo.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Weekly Contest 420", found.Title)
	assert.Equal(t, 90, found.Duration)

	missing, err := repo.FindById(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContestRepository_ListOrdersByStartTime(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContestRepository(db)

	createTestContest(t, db, "Older", time.Now().Add(-48*time.Hour))
	createTestContest(t, db, "Newer", time.Now().Add(24*time.Hour))

	contests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 2)
	assert.Equal(t, "Newer", contests[0].Title)
}

func TestContestRepository_AddParticipantIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContestRepository(db)
	ctx := context.Background()
	contest := createTestContest(t, db, "Weekly Contest 420", time.Now())
	userID := uuid.New()

	require.NoError(t, repo.AddParticipant(ctx, contest.Id, userID))
	require.NoError(t, repo.AddParticipant(ctx, contest.Id, userID))

	found, err := repo.FindById(contest.Id)
	require.NoError(t, err)
	assert.Len(t, found.Participants, 1)
	assert.Equal(t, userID, found.Participants[0])
}
