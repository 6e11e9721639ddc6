package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
	"codeforge/internal/infrastructure"
	"codeforge/internal/infrastructure/db/postgres"
)

// fixture wires real repositories on a throwaway sqlite database with a
// disabled Redis. Tests that need the executor plug in a fake.
type fixture struct {
	db              *gorm.DB
	userRepo        repositories.UserRepository
	problemRepo     repositories.ProblemRepository
	submissionRepo  repositories.SubmissionRepository
	contestRepo     repositories.ContestRepository
	discussionRepo  repositories.DiscussionRepository
	idempotencyRepo repositories.IdempotencyRepository
	redis           *infrastructure.RedisService
	jwt             *infrastructure.JWTService
	limiter         *infrastructure.RateLimiter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return &fixture{
		db:              db,
		userRepo:        postgres.NewUserRepository(db),
		problemRepo:     postgres.NewProblemRepository(db),
		submissionRepo:  postgres.NewSubmissionRepository(db),
		contestRepo:     postgres.NewContestRepository(db),
		discussionRepo:  postgres.NewDiscussionRepository(db),
		idempotencyRepo: postgres.NewIdempotencyRepository(db),
		redis:           infrastructure.NewRedisServiceWithClient(nil),
		jwt:             infrastructure.NewJWTServiceWithSecret("test-secret", time.Hour),
		limiter:         infrastructure.NewRateLimiter(time.Minute, 1000),
	}
}

func (f *fixture) createUser(t *testing.T, username, email string) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(entities.NewUser(username, email, "password123"))
	require.NoError(t, err)

	user, err := f.userRepo.Create(validated)
	require.NoError(t, err)
	return user
}

func (f *fixture) createProblem(t *testing.T, number int, title string, difficulty entities.Difficulty, minTier entities.Tier) *entities.Problem {
	t.Helper()

	problem := entities.NewProblem(number, title, "description", difficulty)
	problem.MinTier = minTier
	problem.TestCases = []entities.TestCase{
		{Input: "1", ExpectedOutput: "2"},
		{Input: "2", ExpectedOutput: "4", IsHidden: true},
	}

	validated, err := entities.NewValidatedProblem(problem)
	require.NoError(t, err)

	created, err := f.problemRepo.Create(validated)
	require.NoError(t, err)
	return created
}

// fakeExecutor returns a fixed output for every input, enough to drive the
// judge through accept and reject paths.
type fakeExecutor struct {
	outputs map[string]string
}

func (f *fakeExecutor) Execute(ctx context.Context, language entities.Language, code, input string) *entities.ExecutionResult {
	return &entities.ExecutionResult{
		Status:  entities.StatusAccepted,
		Output:  f.outputs[input],
		Runtime: 10,
		Memory:  10,
	}
}

// passingExecutor answers every seeded case correctly.
func passingExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: map[string]string{"1": "2", "2": "4"}}
}

// failingExecutor answers the first case correctly and the second wrong.
func failingExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: map[string]string{"1": "2", "2": "5"}}
}
