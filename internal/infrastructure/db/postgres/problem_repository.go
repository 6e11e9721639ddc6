package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type ProblemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) repositories.ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) Create(problem *entities.ValidatedProblem) (*entities.Problem, error) {
	problemEntity := problem.GetProblem()

	if err := r.db.Create(problemToModel(problemEntity)).Error; err != nil {
		return nil, err
	}

	return r.FindById(problemEntity.Id)
}

func (r *ProblemRepository) FindById(id uuid.UUID) (*entities.Problem, error) {
	var model ProblemModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return problemToEntity(&model), nil
}

func (r *ProblemRepository) FindByNumber(number int) (*entities.Problem, error) {
	var model ProblemModel
	if err := r.db.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return problemToEntity(&model), nil
}

func (r *ProblemRepository) List(ctx context.Context, filter repositories.ProblemFilter) ([]*entities.Problem, error) {
	query := r.db.WithContext(ctx).Model(&ProblemModel{})

	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var models []ProblemModel
	if err := query.Order("number ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	problems := make([]*entities.Problem, 0, len(models))
	for i := range models {
		problem := problemToEntity(&models[i])
		// Tags live in a JSON column, so tag filtering happens here rather
		// than in SQL.
		if filter.Tag != "" && !hasTag(problem.Tags, filter.Tag) {
			continue
		}
		problems = append(problems, problem)
	}
	return problems, nil
}

func (r *ProblemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProblemModel{}).Count(&count).Error
	return count, err
}

func (r *ProblemRepository) IncrementSubmissions(ctx context.Context, problemID uuid.UUID, accepted bool) error {
	updates := map[string]interface{}{
		"total_submissions": gorm.Expr("total_submissions + 1"),
	}
	if accepted {
		updates["accepted_submissions"] = gorm.Expr("accepted_submissions + 1")
	}
	return r.db.WithContext(ctx).Model(&ProblemModel{}).Where("id = ?", problemID).Updates(updates).Error
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
