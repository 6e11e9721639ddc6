package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes mounts the API surface on the echo instance. Routes
// that read or act on behalf of a user sit behind the auth middleware.
func RegisterRoutes(e *echo.Echo, h *Handler, auth echo.MiddlewareFunc) {
	e.Use(middleware.Recover())
	e.Use(NewEdgeLimiter().Middleware())

	e.GET("/", h.Health)
	e.GET("/health", h.Health)

	api := e.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/send-verification", h.SendVerification)
	api.POST("/auth/verify", h.VerifyEmail)
	api.GET("/auth/me", h.Me, auth)

	api.POST("/users/tier", h.UpgradeTier, auth)
	api.GET("/users/stats", h.UserStats, auth)
	api.GET("/users/leaderboard", h.Leaderboard)

	api.GET("/problems", h.ListProblems, auth)
	api.GET("/problems/:id", h.GetProblem, auth)
	api.POST("/problems", h.CreateProblem, auth)

	api.POST("/code/run", h.RunCode, auth)
	api.POST("/code/submit", h.SubmitCode, auth)

	api.GET("/contests", h.ListContests)
	api.GET("/contests/:id", h.GetContest)
	api.POST("/contests", h.CreateContest, auth)
	api.POST("/contests/:id/join", h.JoinContest, auth)

	api.GET("/discussions", h.ListDiscussions)
	api.GET("/discussions/:id", h.GetDiscussion)
	api.POST("/discussions", h.CreateDiscussion, auth)
	api.POST("/discussions/:id/replies", h.CreateReply, auth)

	api.GET("/ws", h.WebSocket, auth)
}
