package common

import (
	"time"

	"github.com/google/uuid"
)

type DiscussionResult struct {
	Id             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	Tags           []string  `json:"tags"`
	RepliesCount   int       `json:"replies_count"`
	ViewsCount     int       `json:"views_count"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivity   time.Time `json:"last_activity"`
}

type ReplyResult struct {
	Id             uuid.UUID `json:"id"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}
