package common

import (
	"time"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type UserResult struct {
	Id             uuid.UUID     `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	IsVerified     bool          `json:"is_verified"`
	Tier           entities.Tier `json:"tier"`
	TotalSolved    int           `json:"total_solved"`
	EasySolved     int           `json:"easy_solved"`
	MediumSolved   int           `json:"medium_solved"`
	HardSolved     int           `json:"hard_solved"`
	Ranking        int           `json:"ranking"`
	Streak         int           `json:"streak"`
	AcceptanceRate float64       `json:"acceptance_rate"`
	Avatar         string        `json:"avatar"`
}
