package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/common"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/application/query"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type ProblemService struct {
	problemRepo    repositories.ProblemRepository
	submissionRepo repositories.SubmissionRepository
}

func NewProblemService(
	problemRepo repositories.ProblemRepository,
	submissionRepo repositories.SubmissionRepository,
) interfaces.ProblemService {
	return &ProblemService{
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *ProblemService) List(ctx context.Context, user *entities.User, filter repositories.ProblemFilter) (*query.ProblemQueryListResult, error) {
	problems, err := s.problemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	solved, err := s.submissionRepo.AcceptedProblemIds(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	results := make([]*common.ProblemResult, 0, len(problems))
	for _, problem := range problems {
		if !problem.AccessibleBy(user.Tier) {
			continue
		}
		results = append(results, mapper.NewProblemResultFromEntity(problem, user.Tier, solved[problem.Id]))
	}

	return &query.ProblemQueryListResult{Result: results}, nil
}

func (s *ProblemService) Get(ctx context.Context, user *entities.User, id uuid.UUID) (*query.ProblemQueryResult, error) {
	problem, err := s.problemRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("%w: problem", ErrNotFound)
	}

	if !problem.AccessibleBy(user.Tier) {
		return nil, fmt.Errorf("%w: %s problem requires %s tier", ErrTierRequired, problem.Title, problem.MinTier)
	}

	hasAccepted, err := s.submissionRepo.HasAccepted(ctx, user.Id, problem.Id)
	if err != nil {
		return nil, err
	}

	return &query.ProblemQueryResult{
		Result: mapper.NewProblemResultFromEntity(problem, user.Tier, hasAccepted),
	}, nil
}

func (s *ProblemService) Create(createCommand *command.CreateProblemCommand) (*command.CreateProblemCommandResult, error) {
	existing, err := s.problemRepo.FindByNumber(createCommand.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: problem number %d", ErrAlreadyExists, createCommand.Number)
	}

	problem := entities.NewProblem(createCommand.Number, createCommand.Title, createCommand.Description,
		entities.Difficulty(createCommand.Difficulty))
	problem.Tags = createCommand.Tags
	problem.Examples = createCommand.Examples
	problem.Constraints = createCommand.Constraints
	problem.TestCases = createCommand.TestCases
	problem.StarterCode = createCommand.StarterCode
	if createCommand.MinTier != "" {
		tier, err := entities.ParseTier(createCommand.MinTier)
		if err != nil {
			return nil, err
		}
		problem.MinTier = tier
	}

	validated, err := entities.NewValidatedProblem(problem)
	if err != nil {
		return nil, err
	}

	created, err := s.problemRepo.Create(validated)
	if err != nil {
		return nil, err
	}

	return &command.CreateProblemCommandResult{
		Result: mapper.NewProblemResultFromEntity(created, entities.TierPremium, false),
	}, nil
}
