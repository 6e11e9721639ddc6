package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

func TestProblemRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db)
	created := createTestProblem(t, db, 1, "Two Sum", entities.DifficultyEasy)

	byID, err := repo.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Two Sum", byID.Title)
	assert.Equal(t, []string{"array"}, byID.Tags)
	require.Len(t, byID.TestCases, 2)
	assert.True(t, byID.TestCases[1].IsHidden)

	byNumber, err := repo.FindByNumber(1)
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, created.Id, byNumber.Id)
}

func TestProblemRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	createTestProblem(t, db, 1, "Two Sum", entities.DifficultyEasy)
	createTestProblem(t, db, 2, "Add Two Numbers", entities.DifficultyMedium)
	hard := entities.NewProblem(3, "Median of Arrays", "description", entities.DifficultyHard)
	hard.Tags = []string{"binary-search"}
	validated, err := entities.NewValidatedProblem(hard)
	require.NoError(t, err)
	_, err = repo.Create(validated)
	require.NoError(t, err)

	all, err := repo.List(ctx, repositories.ProblemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].Number)

	easy, err := repo.List(ctx, repositories.ProblemFilter{Difficulty: entities.DifficultyEasy})
	require.NoError(t, err)
	require.Len(t, easy, 1)
	assert.Equal(t, "Two Sum", easy[0].Title)

	tagged, err := repo.List(ctx, repositories.ProblemFilter{Tag: "binary-search"})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, 3, tagged[0].Number)

	searched, err := repo.List(ctx, repositories.ProblemFilter{Search: "Two"})
	require.NoError(t, err)
	assert.Len(t, searched, 2)

	lower, err := repo.List(ctx, repositories.ProblemFilter{Search: "two sum"})
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "Two Sum", lower[0].Title)
}

func TestProblemRepository_IncrementSubmissions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()
	created := createTestProblem(t, db, 1, "Two Sum", entities.DifficultyEasy)

	require.NoError(t, repo.IncrementSubmissions(ctx, created.Id, true))
	require.NoError(t, repo.IncrementSubmissions(ctx, created.Id, false))

	updated, err := repo.FindById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalSubmissions)
	assert.Equal(t, 1, updated.AcceptedSubmissions)
}

func TestProblemRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db)

	createTestProblem(t, db, 1, "Two Sum", entities.DifficultyEasy)
	createTestProblem(t, db, 2, "Add Two Numbers", entities.DifficultyMedium)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
