package mapper

import (
	"time"

	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

func NewContestResultFromEntity(contest *entities.Contest, now time.Time) *common.ContestResult {
	return &common.ContestResult{
		Id:                contest.Id,
		Title:             contest.Title,
		Description:       contest.Description,
		Status:            contest.StatusAt(now),
		StartTime:         contest.StartTime,
		Duration:          contest.Duration,
		ProblemIds:        contest.ProblemIds,
		ParticipantsCount: len(contest.Participants),
		Image:             contest.Image,
	}
}
