package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	if err := r.db.Create(userToModel(userEntity)).Error; err != nil {
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&userModel), nil
}

func (r *UserRepository) Update(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	if err := r.db.Save(userToModel(userEntity)).Error; err != nil {
		return nil, err
	}

	return r.FindById(userEntity.Id)
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&UserModel{}, "id = ?", id).Error
}

func (r *UserRepository) UpdateTokens(ctx context.Context, userID uuid.UUID, token string) error {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&userModel).Error; err != nil {
		return err
	}
	userModel.Tokens = append(userModel.Tokens, token)
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", userID).Update("tokens", userModel.Tokens).Error
}

func (r *UserRepository) RecordSolve(ctx context.Context, userID uuid.UUID, difficulty entities.Difficulty) error {
	updates := map[string]interface{}{
		"total_solved": gorm.Expr("total_solved + 1"),
	}
	switch difficulty {
	case entities.DifficultyEasy:
		updates["easy_solved"] = gorm.Expr("easy_solved + 1")
	case entities.DifficultyMedium:
		updates["medium_solved"] = gorm.Expr("medium_solved + 1")
	case entities.DifficultyHard:
		updates["hard_solved"] = gorm.Expr("hard_solved + 1")
	}
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) SetTier(ctx context.Context, userID uuid.UUID, tier entities.Tier) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", userID).Update("tier", string(tier)).Error
}

func (r *UserRepository) TopBySolved(ctx context.Context, limit int) ([]*entities.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("total_solved DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for i := range models {
		users = append(users, userToEntity(&models[i]))
	}
	return users, nil
}
