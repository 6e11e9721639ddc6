package query

import "codeforge/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type ProblemQueryResult struct {
	Result *common.ProblemResult `json:"result"`
}

type ProblemQueryListResult struct {
	Result []*common.ProblemResult `json:"result"`
}

type SubmissionQueryResult struct {
	Result *common.SubmissionResult `json:"result"`
}

type ContestQueryResult struct {
	Result *common.ContestResult `json:"result"`
}

type ContestQueryListResult struct {
	Result []*common.ContestResult `json:"result"`
}

type DiscussionQueryResult struct {
	Result  *common.DiscussionResult `json:"result"`
	Replies []*common.ReplyResult    `json:"replies,omitempty"`
}

type DiscussionQueryListResult struct {
	Result []*common.DiscussionResult `json:"result"`
}

type UserStatsQueryResult struct {
	Result *common.UserStatsResult `json:"result"`
}

type LeaderboardQueryResult struct {
	Result []*common.LeaderboardEntry `json:"result"`
}
