package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type DiscussionRepository struct {
	db *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) repositories.DiscussionRepository {
	return &DiscussionRepository{db: db}
}

func (r *DiscussionRepository) Create(discussion *entities.ValidatedDiscussion) (*entities.Discussion, error) {
	discussionEntity := discussion.GetDiscussion()

	if err := r.db.Create(discussionToModel(discussionEntity)).Error; err != nil {
		return nil, err
	}
	return r.FindById(discussionEntity.Id)
}

func (r *DiscussionRepository) FindById(id uuid.UUID) (*entities.Discussion, error) {
	var model DiscussionModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return discussionToEntity(&model), nil
}

func (r *DiscussionRepository) List(ctx context.Context) ([]*entities.Discussion, error) {
	var models []DiscussionModel
	if err := r.db.WithContext(ctx).Order("last_activity DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	discussions := make([]*entities.Discussion, 0, len(models))
	for i := range models {
		discussions = append(discussions, discussionToEntity(&models[i]))
	}
	return discussions, nil
}

func (r *DiscussionRepository) IncrementViews(ctx context.Context, discussionID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&DiscussionModel{}).
		Where("id = ?", discussionID).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *DiscussionRepository) CreateReply(reply *entities.ValidatedReply) (*entities.Reply, error) {
	replyEntity := reply.GetReply()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ReplyModel{
			Id:             replyEntity.Id,
			DiscussionId:   replyEntity.DiscussionId,
			Content:        replyEntity.Content,
			AuthorId:       replyEntity.AuthorId,
			AuthorUsername: replyEntity.AuthorUsername,
			CreatedAt:      replyEntity.CreatedAt,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&DiscussionModel{}).
			Where("id = ?", replyEntity.DiscussionId).
			Updates(map[string]interface{}{
				"replies_count": gorm.Expr("replies_count + 1"),
				"last_activity": time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return replyEntity, nil
}

func (r *DiscussionRepository) ListReplies(ctx context.Context, discussionID uuid.UUID) ([]*entities.Reply, error) {
	var models []ReplyModel
	err := r.db.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	replies := make([]*entities.Reply, 0, len(models))
	for i := range models {
		replies = append(replies, replyToEntity(&models[i]))
	}
	return replies, nil
}
