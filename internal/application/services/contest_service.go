package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/common"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/application/query"
	"codeforge/internal/delivery/ws"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type ContestService struct {
	contestRepo repositories.ContestRepository
	hub         *ws.Hub
}

func NewContestService(contestRepo repositories.ContestRepository, hub *ws.Hub) interfaces.ContestService {
	return &ContestService{contestRepo: contestRepo, hub: hub}
}

func (s *ContestService) List(ctx context.Context) (*query.ContestQueryListResult, error) {
	contests, err := s.contestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := make([]*common.ContestResult, 0, len(contests))
	for _, contest := range contests {
		results = append(results, mapper.NewContestResultFromEntity(contest, now))
	}
	return &query.ContestQueryListResult{Result: results}, nil
}

func (s *ContestService) Get(id uuid.UUID) (*query.ContestQueryResult, error) {
	contest, err := s.contestRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, fmt.Errorf("%w: contest", ErrNotFound)
	}

	return &query.ContestQueryResult{
		Result: mapper.NewContestResultFromEntity(contest, time.Now()),
	}, nil
}

func (s *ContestService) Create(createCommand *command.CreateContestCommand) (*command.CreateContestCommandResult, error) {
	contest := entities.NewContest(createCommand.Title, createCommand.Description,
		createCommand.StartTime, createCommand.Duration)
	contest.Image = createCommand.Image

	for _, raw := range createCommand.ProblemIds {
		problemID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid problem id %q: %w", raw, err)
		}
		contest.ProblemIds = append(contest.ProblemIds, problemID)
	}

	validated, err := entities.NewValidatedContest(contest)
	if err != nil {
		return nil, err
	}

	created, err := s.contestRepo.Create(validated)
	if err != nil {
		return nil, err
	}

	return &command.CreateContestCommandResult{
		Result: mapper.NewContestResultFromEntity(created, time.Now()),
	}, nil
}

func (s *ContestService) Join(ctx context.Context, user *entities.User, joinCommand *command.JoinContestCommand) (*command.JoinContestCommandResult, error) {
	contestID, err := uuid.Parse(joinCommand.ContestId)
	if err != nil {
		return nil, fmt.Errorf("%w: contest", ErrNotFound)
	}

	contest, err := s.contestRepo.FindById(contestID)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, fmt.Errorf("%w: contest", ErrNotFound)
	}

	if contest.StatusAt(time.Now()) == entities.ContestEnded {
		return nil, fmt.Errorf("contest %q has ended", contest.Title)
	}

	if err := s.contestRepo.AddParticipant(ctx, contestID, user.Id); err != nil {
		return nil, err
	}

	joined, err := s.contestRepo.FindById(contestID)
	if err != nil {
		return nil, err
	}

	result := mapper.NewContestResultFromEntity(joined, time.Now())

	if s.hub != nil {
		s.hub.Broadcast(ws.Event{Type: ws.EventContestUpdate, Data: result})
	}

	return &command.JoinContestCommandResult{Result: result}, nil
}
