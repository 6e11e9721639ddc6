package repositories

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

// ProblemFilter narrows List results. Zero values mean no filtering.
type ProblemFilter struct {
	Difficulty entities.Difficulty
	Tag        string
	Search     string
}

type ProblemRepository interface {
	Create(problem *entities.ValidatedProblem) (*entities.Problem, error)
	FindById(id uuid.UUID) (*entities.Problem, error)
	FindByNumber(number int) (*entities.Problem, error)
	List(ctx context.Context, filter ProblemFilter) ([]*entities.Problem, error)
	Count(ctx context.Context) (int64, error)
	IncrementSubmissions(ctx context.Context, problemID uuid.UUID, accepted bool) error
}
