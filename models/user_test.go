package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEarTrainingProfile(t *testing.T) {
	now := time.Date(2024, time.May, 16, 9, 0, 0, 0, time.UTC)
	profile := NewEarTrainingProfile(now)

	assert.Zero(t, profile.CurrentStreak.Count)
	assert.Equal(t, now, profile.CurrentStreak.StartDate)
	assert.Equal(t, now.AddDate(0, 0, -1), profile.CurrentStreak.LastLogDate)
	assert.Zero(t, profile.BestStreak.Count)

	assert.Len(t, profile.Goals, len(ExerciseTypes))
	for i, goal := range profile.Goals {
		assert.Equal(t, ExerciseTypes[i], goal.ExerciseType)
		assert.Equal(t, 10, goal.Target)
	}

	assert.Zero(t, profile.Stats.TotalSessions)
	assert.Zero(t, profile.Stats.TotalDuration)
}

func TestExerciseTypeValid(t *testing.T) {
	for _, exerciseType := range ExerciseTypes {
		assert.True(t, exerciseType.Valid())
	}
	assert.False(t, ExerciseType("rhythm-identification").Valid())
	assert.False(t, ExerciseType("").Valid())
}
