package command

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

type CreateProblemCommand struct {
	Number      int                  `json:"number"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Difficulty  string               `json:"difficulty"`
	Tags        []string             `json:"tags"`
	Examples    []entities.Example   `json:"examples"`
	Constraints []string             `json:"constraints"`
	TestCases   []entities.TestCase  `json:"test_cases"`
	StarterCode entities.StarterCode `json:"starter_code"`
	MinTier     string               `json:"min_tier,omitempty"`
}

type CreateProblemCommandResult struct {
	Result *common.ProblemResult `json:"result"`
}
