package entities

import (
	"time"

	"github.com/google/uuid"
)

type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
)

func (l Language) Valid() bool {
	switch l {
	case LanguagePython, LanguageJavaScript, LanguageJava, LanguageCpp:
		return true
	}
	return false
}

type SubmissionStatus string

const (
	StatusAccepted            SubmissionStatus = "Accepted"
	StatusWrongAnswer         SubmissionStatus = "Wrong Answer"
	StatusTimeLimitExceeded   SubmissionStatus = "Time Limit Exceeded"
	StatusMemoryLimitExceeded SubmissionStatus = "Memory Limit Exceeded"
	StatusRuntimeError        SubmissionStatus = "Runtime Error"
	StatusCompileError        SubmissionStatus = "Compile Error"
)

// ExecutionResult is the outcome of running code, either against a single
// input (run) or a full case list (submit).
type ExecutionResult struct {
	Status       SubmissionStatus `json:"status"`
	Output       string           `json:"output"`
	Runtime      float64          `json:"runtime"` // milliseconds
	Memory       float64          `json:"memory"`  // megabytes
	PassedTests  int              `json:"passed_tests"`
	TotalTests   int              `json:"total_tests"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

type Submission struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ProblemId       uuid.UUID
	Language        Language
	Code            string
	Status          SubmissionStatus
	Runtime         float64
	Memory          float64
	PassedTestCases int
	TotalTestCases  int
	ErrorMessage    string
	SubmittedAt     time.Time
}

func NewSubmission(userId, problemId uuid.UUID, language Language, code string) *Submission {
	return &Submission{
		Id:          uuid.New(),
		UserId:      userId,
		ProblemId:   problemId,
		Language:    language,
		Code:        code,
		SubmittedAt: time.Now(),
	}
}

// ApplyResult copies a judge verdict onto the submission record.
func (s *Submission) ApplyResult(result *ExecutionResult) {
	s.Status = result.Status
	s.Runtime = result.Runtime
	s.Memory = result.Memory
	s.PassedTestCases = result.PassedTests
	s.TotalTestCases = result.TotalTests
	s.ErrorMessage = result.ErrorMessage
}

func (s *Submission) Accepted() bool {
	return s.Status == StatusAccepted
}
