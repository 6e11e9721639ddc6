package repositories

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entities.Submission) (*entities.Submission, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Submission, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (total int64, accepted int64, err error)
	HasAccepted(ctx context.Context, userID, problemID uuid.UUID) (bool, error)
	AcceptedProblemIds(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
}
