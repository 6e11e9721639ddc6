package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_HashAndCheckPassword(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret123")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser("bob", "bob@example.com", "pw")

	assert.Equal(t, TierFree, user.Tier)
	assert.False(t, user.IsVerified)
	assert.Empty(t, user.Tokens)
	assert.Zero(t, user.TotalSolved)
}

func TestUser_RecordSolve(t *testing.T) {
	user := NewUser("carol", "carol@example.com", "pw")

	user.RecordSolve(DifficultyEasy)
	user.RecordSolve(DifficultyEasy)
	user.RecordSolve(DifficultyMedium)
	user.RecordSolve(DifficultyHard)

	assert.Equal(t, 4, user.TotalSolved)
	assert.Equal(t, 2, user.EasySolved)
	assert.Equal(t, 1, user.MediumSolved)
	assert.Equal(t, 1, user.HardSolved)
}

func TestUser_UpgradeTier(t *testing.T) {
	user := NewUser("dave", "dave@example.com", "pw")

	require.NoError(t, user.UpgradeTier(TierPro))
	assert.Equal(t, TierPro, user.Tier)

	err := user.UpgradeTier(Tier("platinum"))
	assert.ErrorIs(t, err, ErrUnknownTier)
	assert.Equal(t, TierPro, user.Tier)
}

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid", func(u *User) {}, false},
		{"empty username", func(u *User) { u.Username = "" }, true},
		{"empty email", func(u *User) { u.Email = "" }, true},
		{"empty password", func(u *User) { u.Password = "" }, true},
		{"bad tier", func(u *User) { u.Tier = "platinum" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NewUser("eve", "eve@example.com", "pw")
			tt.mutate(user)

			_, err := NewValidatedUser(user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
