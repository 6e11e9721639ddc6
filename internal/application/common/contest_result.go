package common

import (
	"time"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

type ContestResult struct {
	Id                uuid.UUID              `json:"id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Status            entities.ContestStatus `json:"status"`
	StartTime         time.Time              `json:"start_time"`
	Duration          int                    `json:"duration"`
	ProblemIds        []uuid.UUID            `json:"problems"`
	ParticipantsCount int                    `json:"participants_count"`
	Image             string                 `json:"image"`
}
