package mapper

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

// NewProblemResultFromEntity serializes a problem for a caller of the given
// tier. Hidden test cases are stripped below premium.
func NewProblemResultFromEntity(problem *entities.Problem, tier entities.Tier, solved bool) *common.ProblemResult {
	return &common.ProblemResult{
		Id:               problem.Id,
		Number:           problem.Number,
		Title:            problem.Title,
		Description:      problem.Description,
		Difficulty:       problem.Difficulty,
		Tags:             problem.Tags,
		Examples:         problem.Examples,
		Constraints:      problem.Constraints,
		TestCases:        problem.VisibleTestCases(tier),
		StarterCode:      problem.StarterCode,
		MinTier:          problem.MinTier,
		AcceptanceRate:   problem.AcceptanceRate,
		TotalSubmissions: problem.TotalSubmissions,
		Solved:           solved,
		CreatedAt:        problem.CreatedAt,
	}
}
