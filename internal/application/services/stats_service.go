package services

import (
	"context"
	"math"

	"codeforge/internal/application/common"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/application/query"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
	"codeforge/internal/infrastructure"
)

const recentSubmissionLimit = 10

type StatsService struct {
	problemRepo    repositories.ProblemRepository
	submissionRepo repositories.SubmissionRepository
	userRepo       repositories.UserRepository
	redisService   *infrastructure.RedisService
}

func NewStatsService(
	problemRepo repositories.ProblemRepository,
	submissionRepo repositories.SubmissionRepository,
	userRepo repositories.UserRepository,
	redisService *infrastructure.RedisService,
) interfaces.StatsService {
	return &StatsService{
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		redisService:   redisService,
	}
}

func (s *StatsService) UserStats(ctx context.Context, user *entities.User) (*query.UserStatsQueryResult, error) {
	totalProblems, err := s.problemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.submissionRepo.ListRecent(ctx, user.Id, recentSubmissionLimit)
	if err != nil {
		return nil, err
	}

	recentResults := make([]*common.SubmissionResult, 0, len(recent))
	for _, submission := range recent {
		recentResults = append(recentResults, mapper.NewSubmissionResultFromEntity(submission))
	}

	total, accepted, err := s.submissionRepo.CountByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	acceptanceRate := 0.0
	if total > 0 {
		acceptanceRate = math.Round(float64(accepted)/float64(total)*1000) / 10
	}

	return &query.UserStatsQueryResult{
		Result: &common.UserStatsResult{
			TotalProblems:     int(totalProblems),
			SolvedProblems:    user.TotalSolved,
			EasySolved:        user.EasySolved,
			MediumSolved:      user.MediumSolved,
			HardSolved:        user.HardSolved,
			AcceptanceRate:    acceptanceRate,
			Ranking:           user.Ranking,
			Streak:            user.Streak,
			RecentSubmissions: recentResults,
		},
	}, nil
}

// Leaderboard reads the Redis sorted set first and falls back to the
// database when Redis has nothing.
func (s *StatsService) Leaderboard(ctx context.Context, limit int) (*query.LeaderboardQueryResult, error) {
	entries := make([]*common.LeaderboardEntry, 0, limit)

	scores, err := s.redisService.TopSolvers(ctx, limit)
	if err == nil && len(scores) > 0 {
		for i, z := range scores {
			username, _ := z.Member.(string)
			entries = append(entries, &common.LeaderboardEntry{
				Rank:        i + 1,
				Username:    username,
				TotalSolved: int(z.Score),
			})
		}
		return &query.LeaderboardQueryResult{Result: entries}, nil
	}

	users, err := s.userRepo.TopBySolved(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i, user := range users {
		entries = append(entries, &common.LeaderboardEntry{
			Rank:        i + 1,
			Username:    user.Username,
			TotalSolved: user.TotalSolved,
		})
	}
	return &query.LeaderboardQueryResult{Result: entries}, nil
}
