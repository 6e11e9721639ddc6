package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"codeforge/internal/application/command"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/delivery/ws"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
)

const leaderboardLimit = 25

type Handler struct {
	userService       interfaces.UserService
	problemService    interfaces.ProblemService
	judgeService      interfaces.JudgeService
	statsService      interfaces.StatsService
	contestService    interfaces.ContestService
	discussionService interfaces.DiscussionService
	hub               *ws.Hub
}

func NewHandler(
	userService interfaces.UserService,
	problemService interfaces.ProblemService,
	judgeService interfaces.JudgeService,
	statsService interfaces.StatsService,
	contestService interfaces.ContestService,
	discussionService interfaces.DiscussionService,
	hub *ws.Hub,
) *Handler {
	return &Handler{
		userService:       userService,
		problemService:    problemService,
		judgeService:      judgeService,
		statsService:      statsService,
		contestService:    contestService,
		discussionService: discussionService,
		hub:               hub,
	}
}

// Health reports liveness plus socket pressure.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "CodeForge API is running!",
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"connections": h.hub.ConnectionCount(),
	})
}

// ==================== AUTH ====================

func (h *Handler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return sendError(c, http.StatusBadRequest, "username, email and password are required")
	}

	result, err := h.userService.Register(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}
	if cmd.Email == "" || cmd.Password == "" {
		return sendError(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.userService.Login(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) Me(c echo.Context) error {
	user := currentUser(c)
	result, err := h.userService.FindUserById(user.Id)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) SendVerification(c echo.Context) error {
	var cmd command.SendVerificationCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.userService.SendVerification(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) VerifyEmail(c echo.Context) error {
	var cmd command.VerifyEmailCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.userService.VerifyEmail(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) UpgradeTier(c echo.Context) error {
	var cmd command.UpgradeTierCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.userService.UpgradeTier(currentUser(c).Id, &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

// ==================== PROBLEMS ====================

func (h *Handler) ListProblems(c echo.Context) error {
	filter := repositories.ProblemFilter{
		Difficulty: entities.Difficulty(c.QueryParam("difficulty")),
		Tag:        c.QueryParam("tag"),
		Search:     c.QueryParam("search"),
	}

	result, err := h.problemService.List(c.Request().Context(), currentUser(c), filter)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) GetProblem(c echo.Context) error {
	problemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusNotFound, "Problem not found")
	}

	result, err := h.problemService.Get(c.Request().Context(), currentUser(c), problemID)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) CreateProblem(c echo.Context) error {
	var cmd command.CreateProblemCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.problemService.Create(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusCreated, result)
}

// ==================== CODE EXECUTION ====================

func (h *Handler) RunCode(c echo.Context) error {
	var cmd command.RunCodeCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.judgeService.RunCode(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) SubmitCode(c echo.Context) error {
	var cmd command.SubmitCodeCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.judgeService.SubmitCode(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

// ==================== STATS ====================

func (h *Handler) UserStats(c echo.Context) error {
	result, err := h.statsService.UserStats(c.Request().Context(), currentUser(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) Leaderboard(c echo.Context) error {
	result, err := h.statsService.Leaderboard(c.Request().Context(), leaderboardLimit)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

// ==================== CONTESTS ====================

func (h *Handler) ListContests(c echo.Context) error {
	result, err := h.contestService.List(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) CreateContest(c echo.Context) error {
	var cmd command.CreateContestCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.contestService.Create(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusCreated, result)
}

func (h *Handler) GetContest(c echo.Context) error {
	contestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusNotFound, "Contest not found")
	}

	result, err := h.contestService.Get(contestID)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) JoinContest(c echo.Context) error {
	cmd := command.JoinContestCommand{ContestId: c.Param("id")}

	result, err := h.contestService.Join(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

// ==================== DISCUSSIONS ====================

func (h *Handler) ListDiscussions(c echo.Context) error {
	result, err := h.discussionService.List(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) GetDiscussion(c echo.Context) error {
	discussionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusNotFound, "Discussion not found")
	}

	result, err := h.discussionService.Get(c.Request().Context(), discussionID)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusOK, result)
}

func (h *Handler) CreateDiscussion(c echo.Context) error {
	var cmd command.CreateDiscussionCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}

	result, err := h.discussionService.Create(currentUser(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusCreated, result)
}

func (h *Handler) CreateReply(c echo.Context) error {
	var cmd command.CreateReplyCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid input data")
	}
	cmd.DiscussionId = c.Param("id")

	result, err := h.discussionService.Reply(currentUser(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}
	return sendJSON(c, http.StatusCreated, result)
}

// ==================== REALTIME ====================

func (h *Handler) WebSocket(c echo.Context) error {
	user := currentUser(c)
	return h.hub.Serve(c.Response(), c.Request(), user.Id)
}
