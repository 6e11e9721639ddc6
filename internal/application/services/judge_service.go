package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/delivery/ws"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
	"codeforge/internal/infrastructure"
	"codeforge/internal/infrastructure/executor"
	"codeforge/internal/messaging"
)

// Per-window submission budgets by tier.
var tierSubmitLimits = map[entities.Tier]int{
	entities.TierFree:    20,
	entities.TierPro:     100,
	entities.TierPremium: 500,
}

type JudgeService struct {
	problemRepo    repositories.ProblemRepository
	submissionRepo repositories.SubmissionRepository
	userRepo       repositories.UserRepository
	redisService   *infrastructure.RedisService
	rateLimiter    *infrastructure.RateLimiter
	exec           executor.Executor
	hub            *ws.Hub
}

func NewJudgeService(
	problemRepo repositories.ProblemRepository,
	submissionRepo repositories.SubmissionRepository,
	userRepo repositories.UserRepository,
	redisService *infrastructure.RedisService,
	rateLimiter *infrastructure.RateLimiter,
	exec executor.Executor,
	hub *ws.Hub,
) interfaces.JudgeService {
	return &JudgeService{
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		redisService:   redisService,
		rateLimiter:    rateLimiter,
		exec:           exec,
		hub:            hub,
	}
}

func (s *JudgeService) RunCode(ctx context.Context, user *entities.User, runCommand *command.RunCodeCommand) (*command.RunCodeCommandResult, error) {
	problem, err := s.findProblem(runCommand.ProblemId)
	if err != nil {
		return nil, err
	}
	if !problem.AccessibleBy(user.Tier) {
		return nil, fmt.Errorf("%w: problem requires %s tier", ErrTierRequired, problem.MinTier)
	}

	language := entities.Language(runCommand.Language)
	input := runCommand.TestInput
	if input == "" && len(problem.Examples) > 0 {
		// Use first example as test input
		input = problem.Examples[0].Input
	}

	result := s.exec.Execute(ctx, language, runCommand.Code, input)
	return &command.RunCodeCommandResult{Result: result}, nil
}

func (s *JudgeService) SubmitCode(ctx context.Context, user *entities.User, submitCommand *command.SubmitCodeCommand) (*command.SubmitCodeCommandResult, error) {
	if !s.rateLimiter.AllowWithLimit("submit:"+user.Id.String(), tierSubmitLimits[user.Tier]) {
		return nil, ErrRateLimited
	}

	problem, err := s.findProblem(submitCommand.ProblemId)
	if err != nil {
		return nil, err
	}
	if !problem.AccessibleBy(user.Tier) {
		return nil, fmt.Errorf("%w: problem requires %s tier", ErrTierRequired, problem.MinTier)
	}

	language := entities.Language(submitCommand.Language)
	result := executor.TestSolution(ctx, s.exec, language, submitCommand.Code, problem.JudgeCases())

	submission := entities.NewSubmission(user.Id, problem.Id, language, submitCommand.Code)
	submission.ApplyResult(result)

	firstAccept := false
	if submission.Accepted() {
		hadAccepted, err := s.submissionRepo.HasAccepted(ctx, user.Id, problem.Id)
		if err != nil {
			return nil, err
		}
		firstAccept = !hadAccepted
	}

	created, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, err
	}

	if err := s.problemRepo.IncrementSubmissions(ctx, problem.Id, submission.Accepted()); err != nil {
		log.Printf("Failed to update problem counters: %v", err)
	}

	if firstAccept {
		if err := s.userRepo.RecordSolve(ctx, user.Id, problem.Difficulty); err != nil {
			log.Printf("Failed to update user solve counters: %v", err)
		}
		if err := s.redisService.SetSolvedScore(ctx, user.Username, user.TotalSolved+1); err != nil {
			log.Printf("Failed to update leaderboard: %v", err)
		}
	}

	s.announce(created)

	return &command.SubmitCodeCommandResult{
		Result: mapper.NewSubmissionResultFromEntity(created),
	}, nil
}

// announce fans the verdict out to NATS and the submitter's sockets.
// Delivery is best effort on both paths.
func (s *JudgeService) announce(submission *entities.Submission) {
	event := messaging.SubmissionJudgedEvent{
		SubmissionId: submission.Id,
		UserId:       submission.UserId,
		ProblemId:    submission.ProblemId,
		Status:       string(submission.Status),
		JudgedAt:     time.Now(),
	}
	if err := messaging.PublishSubmissionJudged(event); err != nil {
		log.Printf("Failed to publish submission event: %v", err)
	}

	if s.hub != nil {
		s.hub.SendToUser(submission.UserId, ws.Event{
			Type: ws.EventSubmissionJudged,
			Data: mapper.NewSubmissionResultFromEntity(submission),
		})
	}
}

func (s *JudgeService) findProblem(id string) (*entities.Problem, error) {
	problemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: problem", ErrNotFound)
	}

	problem, err := s.problemRepo.FindById(problemID)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("%w: problem", ErrNotFound)
	}
	return problem, nil
}
