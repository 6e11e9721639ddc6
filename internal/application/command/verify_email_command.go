package command

import "codeforge/internal/application/common"

type SendVerificationCommand struct {
	Email          string `json:"email"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type SendVerificationCommandResult struct {
	Message string `json:"message"`
}

type VerifyEmailCommand struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type VerifyEmailCommandResult struct {
	Result *common.UserResult `json:"result"`
}
