package command

import "codeforge/internal/application/common"

type CreateDiscussionCommand struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type CreateDiscussionCommandResult struct {
	Result *common.DiscussionResult `json:"result"`
}

type CreateReplyCommand struct {
	DiscussionId string `json:"discussion_id"`
	Content      string `json:"content"`
}

type CreateReplyCommandResult struct {
	Result *common.ReplyResult `json:"result"`
}
