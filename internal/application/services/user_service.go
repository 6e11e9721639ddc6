package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"codeforge/internal/application/command"
	"codeforge/internal/application/interfaces"
	"codeforge/internal/application/mapper"
	"codeforge/internal/application/query"
	"codeforge/internal/domain/entities"
	"codeforge/internal/domain/repositories"
	"codeforge/internal/infrastructure"
)

const defaultAvatar = "https://images.pexels.com/photos/5475812/pexels-photo-5475812.jpeg"

type UserService struct {
	userRepo        repositories.UserRepository
	idempotencyRepo repositories.IdempotencyRepository
	redisService    *infrastructure.RedisService
	jwtService      *infrastructure.JWTService
	emailService    *infrastructure.EmailService
	rateLimiter     *infrastructure.RateLimiter
}

func NewUserService(
	userRepo repositories.UserRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	redisService *infrastructure.RedisService,
	jwtService *infrastructure.JWTService,
	emailService *infrastructure.EmailService,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.UserService {
	return &UserService{
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		redisService:    redisService,
		jwtService:      jwtService,
		emailService:    emailService,
		rateLimiter:     rateLimiter,
	}
}

func (s *UserService) Register(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	ctx := context.Background()

	// Check idempotency key
	if registerCommand.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, registerCommand.IdempotencyKey)
		if err != nil {
			return nil, err
		}

		if existingRecord != nil {
			// Return cached response
			var result command.RegisterUserCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: username taken", ErrAlreadyExists)
	}

	existingUser, err = s.userRepo.FindByEmail(registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: email taken", ErrAlreadyExists)
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Email, registerCommand.Password)
	newUser.Avatar = defaultAvatar
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(createdUser)
	if err != nil {
		return nil, err
	}

	result := command.RegisterUserCommandResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapper.NewUserResultFromEntity(createdUser),
	}

	// Store response in idempotency record
	if registerCommand.IdempotencyKey != "" {
		requestJSON, _ := json.Marshal(registerCommand)
		idempotencyRecord := entities.NewIdempotencyRecord(registerCommand.IdempotencyKey, string(requestJSON))
		responseJSON, _ := json.Marshal(result)
		idempotencyRecord.SetResponse(string(responseJSON), 200)
		if _, err := s.idempotencyRepo.Create(ctx, idempotencyRecord); err != nil {
			log.Printf("Failed to store idempotency record: %v", err)
		}
	}

	return &result, nil
}

func (s *UserService) Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapper.NewUserResultFromEntity(user),
	}, nil
}

// issueToken signs a JWT, caches it in Redis and appends it to the user row
// asynchronously.
func (s *UserService) issueToken(user *entities.User) (string, error) {
	token, err := s.jwtService.GenerateToken(user.Id.String())
	if err != nil {
		return "", err
	}

	go func() {
		// Store in Redis for quick validation
		if redisErr := s.redisService.SetToken(context.Background(), token, user.Id.String(), time.Hour*24); redisErr != nil {
			log.Printf("Failed to store token in Redis: %v", redisErr)
		}

		// Update user's tokens in the database asynchronously
		if dbErr := s.userRepo.UpdateTokens(context.Background(), user.Id, token); dbErr != nil {
			log.Printf("Failed to update tokens in database: %v", dbErr)
		}
	}()

	return token, nil
}

func (s *UserService) SendVerification(sendCommand *command.SendVerificationCommand) (*command.SendVerificationCommandResult, error) {
	ctx := context.Background()

	// Check idempotency key
	if sendCommand.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, sendCommand.IdempotencyKey)
		if err != nil {
			return nil, err
		}

		if existingRecord != nil {
			var result command.SendVerificationCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	user, err := s.userRepo.FindByEmail(sendCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no account for email", ErrNotFound)
	}
	if user.IsVerified {
		return &command.SendVerificationCommandResult{Message: "Account already verified"}, nil
	}

	// Apply rate limiting for code generation
	if !s.rateLimiter.Allow(sendCommand.Email) {
		return nil, ErrRateLimited
	}

	// Reuse a cached unexpired code rather than minting a new one
	codeKey := "verify:" + sendCommand.Email
	code, err := s.redisService.GetCode(ctx, codeKey)
	if err != nil {
		if err.Error() == "redis: nil" {
			code = ""
		} else {
			return nil, fmt.Errorf("redis error: %w", err)
		}
	}

	if code == "" {
		code = s.emailService.GenerateCode(ctx)
		if err := s.redisService.SetCode(ctx, codeKey, code, s.emailService.CodeExpiry); err != nil {
			return nil, fmt.Errorf("failed to cache verification code: %w", err)
		}
	}

	if err := s.emailService.SendVerificationCode(ctx, sendCommand.Email, code); err != nil {
		// Clean up the cached code if we couldn't send it
		s.redisService.DeleteKey(ctx, codeKey)
		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	result := command.SendVerificationCommandResult{Message: "Verification code sent successfully"}

	if sendCommand.IdempotencyKey != "" {
		requestJSON, _ := json.Marshal(sendCommand)
		idempotencyRecord := entities.NewIdempotencyRecord(sendCommand.IdempotencyKey, string(requestJSON))
		responseJSON, _ := json.Marshal(result)
		idempotencyRecord.SetResponse(string(responseJSON), 200)
		if _, err := s.idempotencyRepo.Create(ctx, idempotencyRecord); err != nil {
			log.Printf("Failed to store idempotency record: %v", err)
		}
	}

	return &result, nil
}

func (s *UserService) VerifyEmail(verifyCommand *command.VerifyEmailCommand) (*command.VerifyEmailCommandResult, error) {
	ctx := context.Background()

	// Apply rate limiting for verification attempts
	if !s.rateLimiter.Allow("verify:" + verifyCommand.Email) {
		return nil, ErrRateLimited
	}

	codeKey := "verify:" + verifyCommand.Email
	cachedCode, err := s.redisService.GetCode(ctx, codeKey)
	if err != nil {
		if err.Error() == "redis: nil" {
			return nil, fmt.Errorf("%w: verification code expired", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve verification code: %w", err)
	}
	if cachedCode == "" {
		return nil, fmt.Errorf("%w: verification code expired", ErrNotFound)
	}

	isValid, err := s.emailService.VerifyCode(ctx, verifyCommand.Code, cachedCode)
	if err != nil || !isValid {
		return nil, ErrInvalidCredentials
	}

	// Delete the code after successful verification to prevent reuse
	s.redisService.DeleteKey(ctx, codeKey)

	user, err := s.userRepo.FindByEmail(verifyCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no account for email", ErrNotFound)
	}

	user.MarkAsVerified()
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	updatedUser, err := s.userRepo.Update(validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.VerifyEmailCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) UpgradeTier(userID uuid.UUID, upgradeCommand *command.UpgradeTierCommand) (*command.UpgradeTierCommandResult, error) {
	tier, err := entities.ParseTier(upgradeCommand.Tier)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindById(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.SetTier(context.Background(), userID, tier); err != nil {
		return nil, err
	}
	user.Tier = tier

	return &command.UpgradeTierCommandResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) FindUserById(id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
