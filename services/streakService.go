package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

// Streaks pairs the two streak states returned by the streak endpoints.
type Streaks struct {
	CurrentStreak models.CurrentStreak `json:"currentStreak"`
	BestStreak    models.BestStreak    `json:"bestStreak"`
}

// advanceStreak applies the continuity rule: a log on the day after lastLogDate
// extends the run, anything else starts a new one. The best streak follows the
// current one on >= so an equalled record reflects the latest run's dates.
func advanceStreak(current models.CurrentStreak, best models.BestStreak, now time.Time) (models.CurrentStreak, models.BestStreak, bool) {
	var updated models.CurrentStreak
	if IsYesterday(now, current.LastLogDate) {
		updated = models.CurrentStreak{
			Count:       current.Count + 1,
			StartDate:   current.StartDate,
			LastLogDate: now,
		}
	} else {
		updated = models.CurrentStreak{
			Count:       1,
			StartDate:   now,
			LastLogDate: now,
		}
	}

	if updated.Count >= best.Count {
		return updated, models.BestStreak{
			Count:     updated.Count,
			StartDate: updated.StartDate,
			EndDate:   updated.LastLogDate,
		}, true
	}
	return updated, best, false
}

// streakLoggedToday reports whether the streak was already advanced on the
// reference day. A zeroed count never counts as logged, so the first session
// after a reset still advances the run.
func streakLoggedToday(current models.CurrentStreak, now time.Time) bool {
	return IsSameDay(now, current.LastLogDate) && current.Count != 0
}

// streakLapsed reports whether the run was lost: the last log day sits strictly
// before yesterday and there is a run to lose.
func streakLapsed(current models.CurrentStreak, now time.Time) bool {
	return IsBeforeYesterday(now, current.LastLogDate) && current.Count != 0
}

type StreakService struct {
	users *mongo.Collection
}

func NewStreakService(db *config.Database) *StreakService {
	return &StreakService{users: db.Collection(config.UsersCollection)}
}

// FetchByUserID returns the user's streaks, lazily resetting a lapsed run: when
// the last log day is strictly before yesterday the current streak is lost and
// zeroed before being returned. The best streak is never touched here.
func (s *StreakService) FetchByUserID(ctx context.Context, userID primitive.ObjectID) (*Streaks, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"earTrainingProfile": 1}),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}

	profile := user.EarTrainingProfile
	if streakLapsed(profile.CurrentStreak, time.Now()) {
		reset, err := s.ResetStreak(ctx, userID)
		if err != nil {
			return nil, err
		}
		return reset, nil
	}

	return &Streaks{
		CurrentStreak: profile.CurrentStreak,
		BestStreak:    profile.BestStreak,
	}, nil
}

// LogStreak advances the user's streak for the given day and persists it with a
// single findOneAndUpdate so it composes with the submit transaction context.
func (s *StreakService) LogStreak(ctx context.Context, userID primitive.ObjectID, current models.CurrentStreak, best models.BestStreak, now time.Time) (*Streaks, error) {
	updatedCurrent, updatedBest, bestChanged := advanceStreak(current, best, now)

	set := bson.M{"earTrainingProfile.currentStreak": updatedCurrent}
	if bestChanged {
		set["earTrainingProfile.bestStreak"] = updatedBest
	}

	res := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}

	return &Streaks{CurrentStreak: updatedCurrent, BestStreak: updatedBest}, nil
}

// ResetStreak zeroes the current streak, parking lastLogDate on yesterday so the
// next session starts a fresh one-day run. The best streak is preserved.
func (s *StreakService) ResetStreak(ctx context.Context, userID primitive.ObjectID) (*Streaks, error) {
	now := time.Now()
	resetStreak := models.CurrentStreak{
		Count:       0,
		StartDate:   now,
		LastLogDate: now.AddDate(0, 0, -1),
	}

	var user models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"earTrainingProfile.currentStreak": resetStreak}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}

	return &Streaks{
		CurrentStreak: user.EarTrainingProfile.CurrentStreak,
		BestStreak:    user.EarTrainingProfile.BestStreak,
	}, nil
}
