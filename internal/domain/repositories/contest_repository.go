package repositories

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type ContestRepository interface {
	Create(contest *entities.ValidatedContest) (*entities.Contest, error)
	FindById(id uuid.UUID) (*entities.Contest, error)
	List(ctx context.Context) ([]*entities.Contest, error)
	AddParticipant(ctx context.Context, contestID, userID uuid.UUID) error
}
