package repositories

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type DiscussionRepository interface {
	Create(discussion *entities.ValidatedDiscussion) (*entities.Discussion, error)
	FindById(id uuid.UUID) (*entities.Discussion, error)
	List(ctx context.Context) ([]*entities.Discussion, error)
	IncrementViews(ctx context.Context, discussionID uuid.UUID) error
	CreateReply(reply *entities.ValidatedReply) (*entities.Reply, error)
	ListReplies(ctx context.Context, discussionID uuid.UUID) ([]*entities.Reply, error)
}
