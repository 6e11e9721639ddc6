package interfaces

import (
	"context"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/query"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

type UserService interface {
	Register(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	SendVerification(sendCommand *command.SendVerificationCommand) (*command.SendVerificationCommandResult, error)
	VerifyEmail(verifyCommand *command.VerifyEmailCommand) (*command.VerifyEmailCommandResult, error)
	UpgradeTier(userID uuid.UUID, upgradeCommand *command.UpgradeTierCommand) (*command.UpgradeTierCommandResult, error)
	FindUserById(id uuid.UUID) (*query.UserQueryResult, error)
}

type ProblemService interface {
	List(ctx context.Context, user *entities.User, filter repositories.ProblemFilter) (*query.ProblemQueryListResult, error)
	Get(ctx context.Context, user *entities.User, id uuid.UUID) (*query.ProblemQueryResult, error)
	Create(createCommand *command.CreateProblemCommand) (*command.CreateProblemCommandResult, error)
}

type JudgeService interface {
	RunCode(ctx context.Context, user *entities.User, runCommand *command.RunCodeCommand) (*command.RunCodeCommandResult, error)
	SubmitCode(ctx context.Context, user *entities.User, submitCommand *command.SubmitCodeCommand) (*command.SubmitCodeCommandResult, error)
}

type StatsService interface {
	UserStats(ctx context.Context, user *entities.User) (*query.UserStatsQueryResult, error)
	Leaderboard(ctx context.Context, limit int) (*query.LeaderboardQueryResult, error)
}

type ContestService interface {
	List(ctx context.Context) (*query.ContestQueryListResult, error)
	Get(id uuid.UUID) (*query.ContestQueryResult, error)
	Create(createCommand *command.CreateContestCommand) (*command.CreateContestCommandResult, error)
	Join(ctx context.Context, user *entities.User, joinCommand *command.JoinContestCommand) (*command.JoinContestCommandResult, error)
}

type DiscussionService interface {
	List(ctx context.Context) (*query.DiscussionQueryListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*query.DiscussionQueryResult, error)
	Create(user *entities.User, createCommand *command.CreateDiscussionCommand) (*command.CreateDiscussionCommandResult, error)
	Reply(user *entities.User, replyCommand *command.CreateReplyCommand) (*command.CreateReplyCommandResult, error)
}
