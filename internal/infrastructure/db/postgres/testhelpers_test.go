package postgres

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codeforge/internal/domain/entities"
)

// setupTestDB opens a throwaway sqlite database with the full schema. The
// column types are JSON-serialized so the models work on both drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(entities.NewUser(username, email, "password123"))
	require.NoError(t, err)

	user, err := NewUserRepository(db).Create(validated)
	require.NoError(t, err)
	return user
}

func createTestProblem(t *testing.T, db *gorm.DB, number int, title string, difficulty entities.Difficulty) *entities.Problem {
	t.Helper()

	problem := entities.NewProblem(number, title, "description", difficulty)
	problem.Tags = []string{"array"}
	problem.TestCases = []entities.TestCase{
		{Input: "1", ExpectedOutput: "1"},
		{Input: "2", ExpectedOutput: "2", IsHidden: true},
	}

	validated, err := entities.NewValidatedProblem(problem)
	require.NoError(t, err)

	created, err := NewProblemRepository(db).Create(validated)
	require.NoError(t, err)
	return created
}
