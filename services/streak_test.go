package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OJ217/music-lab-api/models"
)

func TestAdvanceStreakContinues(t *testing.T) {
	dayN := date(2024, time.May, 10, 9)
	dayN1 := date(2024, time.May, 11, 20)

	current := models.CurrentStreak{Count: 3, StartDate: date(2024, time.May, 8, 9), LastLogDate: dayN}
	best := models.BestStreak{Count: 10, StartDate: date(2024, time.January, 1, 0), EndDate: date(2024, time.January, 10, 0)}

	updated, updatedBest, bestChanged := advanceStreak(current, best, dayN1)

	assert.Equal(t, 4, updated.Count)
	assert.Equal(t, current.StartDate, updated.StartDate)
	assert.Equal(t, dayN1, updated.LastLogDate)
	assert.False(t, bestChanged)
	assert.Equal(t, best, updatedBest)
}

func TestAdvanceStreakResetsAfterGap(t *testing.T) {
	dayN := date(2024, time.May, 10, 9)
	dayN3 := date(2024, time.May, 13, 9)

	current := models.CurrentStreak{Count: 5, StartDate: date(2024, time.May, 6, 9), LastLogDate: dayN}
	best := models.BestStreak{Count: 5, StartDate: current.StartDate, EndDate: dayN}

	updated, updatedBest, bestChanged := advanceStreak(current, best, dayN3)

	assert.Equal(t, 1, updated.Count)
	assert.Equal(t, dayN3, updated.StartDate)
	assert.Equal(t, dayN3, updated.LastLogDate)
	assert.False(t, bestChanged)
	assert.Equal(t, best, updatedBest)
}

func TestAdvanceStreakUpdatesBestOnTie(t *testing.T) {
	// The best streak follows the current one on >=, so an equalled record
	// carries the latest run's dates.
	now := date(2024, time.May, 11, 10)
	current := models.CurrentStreak{Count: 4, StartDate: date(2024, time.May, 7, 10), LastLogDate: date(2024, time.May, 10, 10)}
	best := models.BestStreak{Count: 5, StartDate: date(2024, time.March, 1, 0), EndDate: date(2024, time.March, 5, 0)}

	updated, updatedBest, bestChanged := advanceStreak(current, best, now)

	assert.Equal(t, 5, updated.Count)
	assert.True(t, bestChanged)
	assert.Equal(t, 5, updatedBest.Count)
	assert.Equal(t, current.StartDate, updatedBest.StartDate)
	assert.Equal(t, now, updatedBest.EndDate)
}

func TestAdvanceStreakFirstLog(t *testing.T) {
	now := date(2024, time.May, 16, 14)
	profile := models.NewEarTrainingProfile(now.AddDate(0, 0, -3))

	updated, updatedBest, bestChanged := advanceStreak(profile.CurrentStreak, profile.BestStreak, now)

	assert.Equal(t, 1, updated.Count)
	assert.Equal(t, now, updated.StartDate)
	assert.True(t, bestChanged)
	assert.Equal(t, 1, updatedBest.Count)
}

func TestStreakLoggedToday(t *testing.T) {
	now := date(2024, time.May, 16, 18)

	tests := []struct {
		name    string
		current models.CurrentStreak
		want    bool
	}{
		{"logged earlier today", models.CurrentStreak{Count: 3, LastLogDate: date(2024, time.May, 16, 9)}, true},
		{"logged yesterday", models.CurrentStreak{Count: 3, LastLogDate: date(2024, time.May, 15, 9)}, false},
		{"zero count on same day", models.CurrentStreak{Count: 0, LastLogDate: date(2024, time.May, 16, 9)}, false},
		{"fresh profile", models.NewEarTrainingProfile(now).CurrentStreak, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streakLoggedToday(tt.current, now))
		})
	}
}

func TestStreakLapsed(t *testing.T) {
	now := date(2024, time.May, 16, 12)

	tests := []struct {
		name    string
		current models.CurrentStreak
		want    bool
	}{
		{"two days stale", models.CurrentStreak{Count: 4, LastLogDate: date(2024, time.May, 14, 9)}, true},
		{"weeks stale", models.CurrentStreak{Count: 4, LastLogDate: date(2024, time.April, 20, 9)}, true},
		{"logged yesterday", models.CurrentStreak{Count: 4, LastLogDate: date(2024, time.May, 15, 9)}, false},
		{"logged today", models.CurrentStreak{Count: 4, LastLogDate: date(2024, time.May, 16, 9)}, false},
		{"already zeroed", models.CurrentStreak{Count: 0, LastLogDate: date(2024, time.May, 1, 9)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streakLapsed(tt.current, now))
		})
	}
}

func TestSameDayResubmissionSkipsStreak(t *testing.T) {
	// A second session on the same day accrues XP and stats but must not
	// advance the streak again.
	now := date(2024, time.May, 16, 10)
	current := models.CurrentStreak{Count: 2, StartDate: date(2024, time.May, 14, 9), LastLogDate: date(2024, time.May, 15, 9)}
	best := models.BestStreak{Count: 6, StartDate: date(2024, time.March, 1, 0), EndDate: date(2024, time.March, 6, 0)}

	assert.False(t, streakLoggedToday(current, now))

	updated, _, _ := advanceStreak(current, best, now)
	assert.Equal(t, 3, updated.Count)
	assert.True(t, streakLoggedToday(updated, date(2024, time.May, 16, 21)))
}

func TestAdvanceStreakDayAfterSignup(t *testing.T) {
	// The default profile parks lastLogDate on yesterday, so a session on the
	// sign-up day itself extends from count 0 to 1 with the sign-up start date.
	signedUp := date(2024, time.May, 16, 9)
	profile := models.NewEarTrainingProfile(signedUp)

	updated, _, _ := advanceStreak(profile.CurrentStreak, profile.BestStreak, date(2024, time.May, 16, 18))

	assert.Equal(t, 1, updated.Count)
	assert.Equal(t, signedUp, updated.StartDate)
}
