package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeforge/internal/domain/repositories"
)

func TestSeed_LoadsStarterCatalog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(db))

	problems, err := NewProblemRepository(db).List(ctx, repositories.ProblemFilter{})
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "Two Sum", problems[0].Title)
	assert.Equal(t, "Add Two Numbers", problems[1].Title)
	assert.NotEmpty(t, problems[0].TestCases)
	assert.NotEmpty(t, problems[0].StarterCode.Python)

	contests, err := NewContestRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, contests, 2)

	discussions, err := NewDiscussionRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, discussions, 2)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	count, err := NewProblemRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
