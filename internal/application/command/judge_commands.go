package command

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

type RunCodeCommand struct {
	ProblemId string `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
	TestInput string `json:"test_input,omitempty"`
}

type RunCodeCommandResult struct {
	Result *entities.ExecutionResult `json:"result"`
}

type SubmitCodeCommand struct {
	ProblemId string `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
}

type SubmitCodeCommandResult struct {
	Result *common.SubmissionResult `json:"result"`
}
