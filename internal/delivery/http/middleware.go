package http

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
	"codeforge/internal/infrastructure"
)

const (
	// Performance settings
	maxConcurrentRequests = 10000
	rateLimitRequests     = 5000 // Requests per second
	rateLimitBurst        = 1000 // Burst capacity

	currentUserKey = "currentUser"
)

// EdgeLimiter guards the whole HTTP surface with a token bucket and an
// active-request cap.
type EdgeLimiter struct {
	limiter        *rate.Limiter
	activeRequests int32
}

func NewEdgeLimiter() *EdgeLimiter {
	return &EdgeLimiter{
		limiter: rate.NewLimiter(rate.Limit(rateLimitRequests), rateLimitBurst),
	}
}

func (l *EdgeLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.limiter.Allow() {
				return sendError(c, http.StatusTooManyRequests, "Too many requests")
			}

			if atomic.AddInt32(&l.activeRequests, 1) > maxConcurrentRequests {
				atomic.AddInt32(&l.activeRequests, -1)
				return sendError(c, http.StatusServiceUnavailable, "Server overloaded")
			}
			defer atomic.AddInt32(&l.activeRequests, -1)

			return next(c)
		}
	}
}

// AuthMiddleware resolves the bearer token to a user and stores it on the
// request context.
type AuthMiddleware struct {
	jwtService *infrastructure.JWTService
	userRepo   repositories.UserRepository
}

func NewAuthMiddleware(jwtService *infrastructure.JWTService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, userRepo: userRepo}
}

func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return sendError(c, http.StatusUnauthorized, "Missing bearer token")
			}

			userIDStr, err := m.jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return sendError(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				return sendError(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			user, err := m.userRepo.FindById(userID)
			if err != nil {
				return sendError(c, http.StatusInternalServerError, err.Error())
			}
			if user == nil {
				return sendError(c, http.StatusUnauthorized, "Unknown user")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *entities.User {
	user, _ := c.Get(currentUserKey).(*entities.User)
	return user
}
