package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/common"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/application/query"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type DiscussionService struct {
	discussionRepo repositories.DiscussionRepository
}

func NewDiscussionService(discussionRepo repositories.DiscussionRepository) interfaces.DiscussionService {
	return &DiscussionService{discussionRepo: discussionRepo}
}

func (s *DiscussionService) List(ctx context.Context) (*query.DiscussionQueryListResult, error) {
	discussions, err := s.discussionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*common.DiscussionResult, 0, len(discussions))
	for _, discussion := range discussions {
		results = append(results, mapper.NewDiscussionResultFromEntity(discussion))
	}
	return &query.DiscussionQueryListResult{Result: results}, nil
}

func (s *DiscussionService) Get(ctx context.Context, id uuid.UUID) (*query.DiscussionQueryResult, error) {
	discussion, err := s.discussionRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, fmt.Errorf("%w: discussion", ErrNotFound)
	}

	// Reading a thread counts as a view.
	if err := s.discussionRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("Failed to bump view counter: %v", err)
	} else {
		discussion.RecordView()
	}

	replies, err := s.discussionRepo.ListReplies(ctx, id)
	if err != nil {
		return nil, err
	}

	replyResults := make([]*common.ReplyResult, 0, len(replies))
	for _, reply := range replies {
		replyResults = append(replyResults, mapper.NewReplyResultFromEntity(reply))
	}

	return &query.DiscussionQueryResult{
		Result:  mapper.NewDiscussionResultFromEntity(discussion),
		Replies: replyResults,
	}, nil
}

func (s *DiscussionService) Create(user *entities.User, createCommand *command.CreateDiscussionCommand) (*command.CreateDiscussionCommandResult, error) {
	discussion := entities.NewDiscussion(createCommand.Title, createCommand.Content,
		user.Id, user.Username, createCommand.Tags)

	validated, err := entities.NewValidatedDiscussion(discussion)
	if err != nil {
		return nil, err
	}

	created, err := s.discussionRepo.Create(validated)
	if err != nil {
		return nil, err
	}

	return &command.CreateDiscussionCommandResult{
		Result: mapper.NewDiscussionResultFromEntity(created),
	}, nil
}

func (s *DiscussionService) Reply(user *entities.User, replyCommand *command.CreateReplyCommand) (*command.CreateReplyCommandResult, error) {
	discussionID, err := uuid.Parse(replyCommand.DiscussionId)
	if err != nil {
		return nil, fmt.Errorf("%w: discussion", ErrNotFound)
	}

	discussion, err := s.discussionRepo.FindById(discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, fmt.Errorf("%w: discussion", ErrNotFound)
	}

	reply := entities.NewReply(discussionID, replyCommand.Content, user.Id, user.Username)
	validated, err := entities.NewValidatedReply(reply)
	if err != nil {
		return nil, err
	}

	created, err := s.discussionRepo.CreateReply(validated)
	if err != nil {
		return nil, err
	}

	return &command.CreateReplyCommandResult{
		Result: mapper.NewReplyResultFromEntity(created),
	}, nil
}
