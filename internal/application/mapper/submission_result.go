package mapper

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

func NewSubmissionResultFromEntity(submission *entities.Submission) *common.SubmissionResult {
	return &common.SubmissionResult{
		Id:              submission.Id,
		UserId:          submission.UserId,
		ProblemId:       submission.ProblemId,
		Language:        submission.Language,
		Code:            submission.Code,
		Status:          submission.Status,
		Runtime:         submission.Runtime,
		Memory:          submission.Memory,
		PassedTestCases: submission.PassedTestCases,
		TotalTestCases:  submission.TotalTestCases,
		ErrorMessage:    submission.ErrorMessage,
		SubmittedAt:     submission.SubmittedAt,
	}
}
