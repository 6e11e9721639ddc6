package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// TestCase is a judge input/output pair. Hidden cases run during judging but
// are never serialized to callers below the premium tier.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	IsHidden       bool   `json:"is_hidden"`
}

type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// StarterCode holds the per-language editor scaffold.
type StarterCode struct {
	Python     string `json:"python"`
	JavaScript string `json:"javascript"`
	Java       string `json:"java"`
	Cpp        string `json:"cpp"`
}

type Problem struct {
	Id                  uuid.UUID
	Number              int
	Title               string
	Description         string
	Difficulty          Difficulty
	Tags                []string
	Examples            []Example
	Constraints         []string
	TestCases           []TestCase
	StarterCode         StarterCode
	MinTier             Tier
	AcceptanceRate      float64
	TotalSubmissions    int
	AcceptedSubmissions int
	CreatedAt           time.Time
}

func NewProblem(number int, title, description string, difficulty Difficulty) *Problem {
	return &Problem{
		Id:          uuid.New(),
		Number:      number,
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		MinTier:     TierFree,
		CreatedAt:   time.Now(),
	}
}

func (p *Problem) validate() error {
	if p.Number <= 0 {
		return errors.New("problem number must be positive")
	}
	if p.Title == "" {
		return errors.New("title must not be empty")
	}
	if !p.Difficulty.Valid() {
		return errors.New("difficulty must be Easy, Medium or Hard")
	}
	if !p.MinTier.Valid() {
		return errors.New("min tier must be free, pro or premium")
	}
	return nil
}

// JudgeCases returns the cases submissions run against. When a problem has no
// test cases the first example serves as a single visible case.
func (p *Problem) JudgeCases() []TestCase {
	if len(p.TestCases) > 0 {
		return p.TestCases
	}
	if len(p.Examples) > 0 {
		return []TestCase{{
			Input:          p.Examples[0].Input,
			ExpectedOutput: p.Examples[0].Output,
		}}
	}
	return nil
}

// VisibleTestCases filters hidden cases for callers below premium.
func (p *Problem) VisibleTestCases(tier Tier) []TestCase {
	if tier.AtLeast(TierPremium) {
		return p.TestCases
	}
	visible := make([]TestCase, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		if !tc.IsHidden {
			visible = append(visible, tc)
		}
	}
	return visible
}

// AccessibleBy reports whether a user of the given tier can open the problem.
func (p *Problem) AccessibleBy(tier Tier) bool {
	return tier.AtLeast(p.MinTier)
}

type ValidatedProblem struct {
	*Problem
}

func NewValidatedProblem(problem *Problem) (*ValidatedProblem, error) {
	if err := problem.validate(); err != nil {
		return nil, err
	}
	return &ValidatedProblem{Problem: problem}, nil
}

func (vp *ValidatedProblem) GetProblem() *Problem {
	return vp.Problem
}
