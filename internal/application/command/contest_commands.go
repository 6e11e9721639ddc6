package command

import (
	"time"

	"codeforge/internal/application/common"
)

type CreateContestCommand struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	Duration    int       `json:"duration"`
	ProblemIds  []string  `json:"problems"`
	Image       string    `json:"image,omitempty"`
}

type CreateContestCommandResult struct {
	Result *common.ContestResult `json:"result"`
}

type JoinContestCommand struct {
	ContestId string `json:"contest_id"`
}

type JoinContestCommandResult struct {
	Result *common.ContestResult `json:"result"`
}
