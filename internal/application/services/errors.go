package services

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTierRequired       = errors.New("subscription tier too low")
	ErrRateLimited        = errors.New("too many requests, please try again later")
)
