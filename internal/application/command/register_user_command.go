package command

import "codeforge/internal/application/common"

type RegisterUserCommand struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type RegisterUserCommandResult struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        *common.UserResult `json:"user"`
}
