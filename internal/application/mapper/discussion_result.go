package mapper

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

func NewDiscussionResultFromEntity(discussion *entities.Discussion) *common.DiscussionResult {
	return &common.DiscussionResult{
		Id:             discussion.Id,
		Title:          discussion.Title,
		Content:        discussion.Content,
		AuthorUsername: discussion.AuthorUsername,
		Tags:           discussion.Tags,
		RepliesCount:   discussion.RepliesCount,
		ViewsCount:     discussion.ViewsCount,
		CreatedAt:      discussion.CreatedAt,
		LastActivity:   discussion.LastActivity,
	}
}

func NewReplyResultFromEntity(reply *entities.Reply) *common.ReplyResult {
	return &common.ReplyResult{
		Id:             reply.Id,
		Content:        reply.Content,
		AuthorUsername: reply.AuthorUsername,
		CreatedAt:      reply.CreatedAt,
	}
}
