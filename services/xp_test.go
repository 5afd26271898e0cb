package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OJ217/music-lab-api/models"
)

func TestCalculateXP(t *testing.T) {
	// High accuracy on the hardest exercise: 10*1.5 + 1
	assert.Equal(t, 16.0, CalculateXP(10, 95, models.ChordIdentification))

	// No correct answers, no bonus
	assert.Equal(t, 0.0, CalculateXP(0, 50, models.IntervalIdentification))

	// Mid accuracy bonus
	assert.Equal(t, 10.5, CalculateXP(10, 85, models.IntervalIdentification))

	// Mode factor with rounding to one decimal: 7*1.25 = 8.75 -> 8.8
	assert.Equal(t, 8.8, CalculateXP(7, 70, models.ModeIdentification))

	// Bonus thresholds are inclusive
	assert.Equal(t, 11.0, CalculateXP(10, 90, models.IntervalIdentification))
	assert.Equal(t, 10.5, CalculateXP(10, 80, models.IntervalIdentification))
	assert.Equal(t, 10.0, CalculateXP(10, 79, models.IntervalIdentification))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 8.8, RoundTo(8.75, 1))
	assert.Equal(t, 8.7, RoundTo(8.74, 1))
	assert.Equal(t, 9.0, RoundTo(8.96, 1))
	assert.Equal(t, 8.75, RoundTo(8.749, 2))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(5, 10))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 0.0, Percentage(3, 0))
}
