package command

import "codeforge/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        *common.UserResult `json:"user"`
}
