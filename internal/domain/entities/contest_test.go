package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContest_StatusAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	contest := NewContest("Weekly Contest", "desc", start, 90)

	assert.Equal(t, ContestUpcoming, contest.StatusAt(start.Add(-time.Minute)))
	assert.Equal(t, ContestRunning, contest.StatusAt(start))
	assert.Equal(t, ContestRunning, contest.StatusAt(start.Add(89*time.Minute)))
	assert.Equal(t, ContestEnded, contest.StatusAt(start.Add(90*time.Minute)))
}

func TestContest_EndTime(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	contest := NewContest("Weekly Contest", "desc", start, 120)

	assert.Equal(t, start.Add(2*time.Hour), contest.EndTime())
}

func TestContest_JoinIsIdempotent(t *testing.T) {
	contest := NewContest("Weekly Contest", "desc", time.Now(), 90)
	userID := uuid.New()

	assert.True(t, contest.Join(userID))
	assert.False(t, contest.Join(userID))
	assert.Len(t, contest.Participants, 1)

	assert.True(t, contest.Join(uuid.New()))
	assert.Len(t, contest.Participants, 2)
}

func TestNewValidatedContest(t *testing.T) {
	contest := NewContest("Weekly Contest", "desc", time.Now(), 90)
	_, err := NewValidatedContest(contest)
	assert.NoError(t, err)

	contest.Duration = 0
	_, err = NewValidatedContest(contest)
	assert.Error(t, err)

	contest.Duration = 90
	contest.Title = ""
	_, err = NewValidatedContest(contest)
	assert.Error(t, err)
}
