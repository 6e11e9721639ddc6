package common

import (
	"time"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type SubmissionResult struct {
	Id              uuid.UUID                 `json:"id"`
	UserId          uuid.UUID                 `json:"user_id"`
	ProblemId       uuid.UUID                 `json:"problem_id"`
	Language        entities.Language         `json:"language"`
	Code            string                    `json:"code"`
	Status          entities.SubmissionStatus `json:"status"`
	Runtime         float64                   `json:"runtime"`
	Memory          float64                   `json:"memory"`
	PassedTestCases int                       `json:"passed_test_cases"`
	TotalTestCases  int                       `json:"total_test_cases"`
	ErrorMessage    string                    `json:"error_message,omitempty"`
	SubmittedAt     time.Time                 `json:"submitted_at"`
}
