package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) repositories.SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) (*entities.Submission, error) {
	if err := r.db.WithContext(ctx).Create(submissionToModel(submission)).Error; err != nil {
		return nil, err
	}
	return r.FindById(ctx, submission.Id)
}

func (r *SubmissionRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	var model SubmissionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return submissionToEntity(&model), nil
}

func (r *SubmissionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Submission, error) {
	var models []SubmissionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	submissions := make([]*entities.Submission, 0, len(models))
	for i := range models {
		submissions = append(submissions, submissionToEntity(&models[i]))
	}
	return submissions, nil
}

func (r *SubmissionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	var total, accepted int64
	if err := r.db.WithContext(ctx).Model(&SubmissionModel{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&SubmissionModel{}).
		Where("user_id = ? AND status = ?", userID, string(entities.StatusAccepted)).
		Count(&accepted).Error; err != nil {
		return 0, 0, err
	}
	return total, accepted, nil
}

func (r *SubmissionRepository) HasAccepted(ctx context.Context, userID, problemID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SubmissionModel{}).
		Where("user_id = ? AND problem_id = ? AND status = ?", userID, problemID, string(entities.StatusAccepted)).
		Count(&count).Error
	return count > 0, err
}

func (r *SubmissionRepository) AcceptedProblemIds(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&SubmissionModel{}).
		Distinct("problem_id").
		Where("user_id = ? AND status = ?", userID, string(entities.StatusAccepted)).
		Pluck("problem_id", &ids).Error
	if err != nil {
		return nil, err
	}

	solved := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		solved[id] = true
	}
	return solved, nil
}
