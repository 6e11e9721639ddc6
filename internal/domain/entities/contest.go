package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ContestStatus string

const (
	ContestUpcoming ContestStatus = "upcoming"
	ContestRunning  ContestStatus = "running"
	ContestEnded    ContestStatus = "ended"
)

type Contest struct {
	Id           uuid.UUID
	Title        string
	Description  string
	StartTime    time.Time
	Duration     int // minutes
	ProblemIds   []uuid.UUID
	Participants []uuid.UUID
	Image        string
	CreatedAt    time.Time
}

func NewContest(title, description string, startTime time.Time, duration int) *Contest {
	return &Contest{
		Id:          uuid.New(),
		Title:       title,
		Description: description,
		StartTime:   startTime,
		Duration:    duration,
		CreatedAt:   time.Now(),
	}
}

func (c *Contest) validate() error {
	if c.Title == "" {
		return errors.New("title must not be empty")
	}
	if c.Duration <= 0 {
		return errors.New("duration must be positive minutes")
	}
	return nil
}

func (c *Contest) EndTime() time.Time {
	return c.StartTime.Add(time.Duration(c.Duration) * time.Minute)
}

// StatusAt derives the contest state from the clock. The status is never
// stored, so there is no scheduler to keep it fresh.
func (c *Contest) StatusAt(now time.Time) ContestStatus {
	if now.Before(c.StartTime) {
		return ContestUpcoming
	}
	if now.Before(c.EndTime()) {
		return ContestRunning
	}
	return ContestEnded
}

// Join registers a participant. Joining twice keeps one entry.
func (c *Contest) Join(userId uuid.UUID) bool {
	for _, id := range c.Participants {
		if id == userId {
			return false
		}
	}
	c.Participants = append(c.Participants, userId)
	return true
}

type ValidatedContest struct {
	*Contest
}

func NewValidatedContest(contest *Contest) (*ValidatedContest, error) {
	if err := contest.validate(); err != nil {
		return nil, err
	}
	return &ValidatedContest{Contest: contest}, nil
}

func (vc *ValidatedContest) GetContest() *Contest {
	return vc.Contest
}
