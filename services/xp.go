package services

import (
	"math"

	"github.com/OJ217/music-lab-api/models"
)

// RoundTo rounds num to the given number of decimal places.
func RoundTo(num float64, decimalPlaces int) float64 {
	multiplier := math.Pow(10, float64(decimalPlaces))
	return math.Round(num*multiplier) / multiplier
}

// Percentage returns part/total as a percentage rounded to one decimal.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundTo(float64(part)/float64(total)*100, 1)
}

// CalculateXP maps a session result to an XP award: one correct answer earns the
// exercise difficulty factor, with a flat bonus for high accuracy. Inputs are
// pre-validated by the session recorder (correct >= 0, 0 <= score <= 100).
func CalculateXP(correct int, score float64, exerciseType models.ExerciseType) float64 {
	var accuracyBonus float64
	if score >= 90 {
		accuracyBonus = 1
	} else if score >= 80 {
		accuracyBonus = 0.5
	}

	difficultyFactor := 1.0
	switch exerciseType {
	case models.IntervalIdentification:
		difficultyFactor = 1.0
	case models.ChordIdentification:
		difficultyFactor = 1.5
	case models.ModeIdentification:
		difficultyFactor = 1.25
	}

	return RoundTo(float64(correct)*difficultyFactor+accuracyBonus, 1)
}
