package repositories

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Update(user *entities.ValidatedUser) (*entities.User, error)
	Delete(id uuid.UUID) error
	UpdateTokens(ctx context.Context, userID uuid.UUID, token string) error
	RecordSolve(ctx context.Context, userID uuid.UUID, difficulty entities.Difficulty) error
	SetTier(ctx context.Context, userID uuid.UUID, tier entities.Tier) error
	TopBySolved(ctx context.Context, limit int) ([]*entities.User, error)
}
