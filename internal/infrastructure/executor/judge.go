package executor

import (
	"context"
	"fmt"
	"strings"

	"codeforge/internal/domain/entities"
)

// TestSolution runs code against every case in order. The first failing case
// short-circuits: a Wrong Answer carries the expected/actual pair in the
// output, any other non-accept verdict is returned as-is.
func TestSolution(ctx context.Context, e Executor, language entities.Language, code string, cases []entities.TestCase) *entities.ExecutionResult {
	passed := 0
	total := len(cases)
	totalRuntime := 0.0

	for _, tc := range cases {
		result := e.Execute(ctx, language, code, tc.Input)

		if result.Status != entities.StatusAccepted {
			result.PassedTests = passed
			result.TotalTests = total
			return result
		}

		expected := strings.TrimSpace(tc.ExpectedOutput)
		actual := strings.TrimSpace(result.Output)
		if expected != actual {
			return &entities.ExecutionResult{
				Status:      entities.StatusWrongAnswer,
				Output:      fmt.Sprintf("Expected: %s\nActual: %s", expected, actual),
				Runtime:     result.Runtime,
				PassedTests: passed,
				TotalTests:  total,
			}
		}

		passed++
		totalRuntime += result.Runtime
	}

	avgRuntime := 0.0
	if total > 0 {
		avgRuntime = totalRuntime / float64(total)
	}

	return &entities.ExecutionResult{
		Status:      entities.StatusAccepted,
		Output:      fmt.Sprintf("All test cases passed!\nAverage Runtime: %.2fms", avgRuntime),
		Runtime:     avgRuntime,
		PassedTests: passed,
		TotalTests:  total,
	}
}
