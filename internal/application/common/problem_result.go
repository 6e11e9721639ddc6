package common

import (
	"time"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type ProblemResult struct {
	Id               uuid.UUID            `json:"id"`
	Number           int                  `json:"number"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Difficulty       entities.Difficulty  `json:"difficulty"`
	Tags             []string             `json:"tags"`
	Examples         []entities.Example   `json:"examples"`
	Constraints      []string             `json:"constraints"`
	TestCases        []entities.TestCase  `json:"test_cases,omitempty"`
	StarterCode      entities.StarterCode `json:"starter_code"`
	MinTier          entities.Tier        `json:"min_tier"`
	AcceptanceRate   float64              `json:"acceptance_rate"`
	TotalSubmissions int                  `json:"total_submissions"`
	Solved           bool                 `json:"solved"`
	CreatedAt        time.Time            `json:"created_at"`
}
