package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type ContestRepository struct {
	db *gorm.DB
}

func NewContestRepository(db *gorm.DB) repositories.ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) Create(contest *entities.ValidatedContest) (*entities.Contest, error) {
	contestEntity := contest.GetContest()

	if err := r.db.Create(contestToModel(contestEntity)).Error; err != nil {
		return nil, err
	}
	return r.FindById(contestEntity.Id)
}

func (r *ContestRepository) FindById(id uuid.UUID) (*entities.Contest, error) {
	var model ContestModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return contestToEntity(&model), nil
}

func (r *ContestRepository) List(ctx context.Context) ([]*entities.Contest, error) {
	var models []ContestModel
	if err := r.db.WithContext(ctx).Order("start_time DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	contests := make([]*entities.Contest, 0, len(models))
	for i := range models {
		contests = append(contests, contestToEntity(&models[i]))
	}
	return contests, nil
}

func (r *ContestRepository) AddParticipant(ctx context.Context, contestID, userID uuid.UUID) error {
	var model ContestModel
	if err := r.db.WithContext(ctx).Where("id = ?", contestID).First(&model).Error; err != nil {
		return err
	}

	contest := contestToEntity(&model)
	if !contest.Join(userID) {
		return nil // already joined
	}

	return r.db.WithContext(ctx).Model(&ContestModel{}).
		Where("id = ?", contestID).
		Update("participants", UUIDSlice(contest.Participants)).Error
}
