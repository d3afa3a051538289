package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner42",
			PlainPassword: "correct-horse-battery",
		})

		assert.NoError(t, err)
		assert.Equal(t, "maze_runner42", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)
		assert.Equal(t, 0, user.SolvedCount)
	})

	t.Run("short username", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "ab",
			PlainPassword: "correct-horse-battery",
		})

		assert.EqualError(t, err, "username too short")
	})

	t.Run("long username", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "a_very_long_username_over_the_cap",
			PlainPassword: "correct-horse-battery",
		})

		assert.EqualError(t, err, "username too long")
	})

	t.Run("invalid username characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze runner",
			PlainPassword: "correct-horse-battery",
		})

		assert.EqualError(t, err, "Invalid username format")
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner42",
			PlainPassword: "password",
		})

		assert.EqualError(t, err, "week password")
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser(UserConfig{
		ID:            uuid.New(),
		Username:      "maze_runner42",
		PlainPassword: "correct-horse-battery",
	})
	assert.NoError(t, err)

	assert.True(t, user.VerifyPassword("correct-horse-battery"))
	assert.False(t, user.VerifyPassword("wrong-horse"))
}

func TestRecordSolve(t *testing.T) {
	user, err := NewUser(UserConfig{
		ID:            uuid.New(),
		Username:      "maze_runner42",
		PlainPassword: "correct-horse-battery",
	})
	assert.NoError(t, err)

	user.RecordSolve()
	user.RecordSolve()

	assert.Equal(t, 2, user.SolvedCount)
}
