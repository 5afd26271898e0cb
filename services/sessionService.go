package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

// SubmitOutcome is what a successful session submission returns to the caller:
// the new session id and the XP awarded for it.
type SubmitOutcome struct {
	ID string  `json:"id"`
	XP float64 `json:"xp"`
}

type SessionPage struct {
	Docs []models.PracticeSession `json:"docs"`
	Pagination
}

type SessionService struct {
	db       *config.Database
	users    *mongo.Collection
	sessions *mongo.Collection
	streaks  *StreakService
}

func NewSessionService(db *config.Database, streaks *StreakService) *SessionService {
	return &SessionService{
		db:       db,
		users:    db.Collection(config.UsersCollection),
		sessions: db.Collection(config.PracticeSessionsCollection),
		streaks:  streaks,
	}
}

// validateSubmission checks the cross-field identities the validator tags can't
// express: correct + incorrect must equal questionCount for the overall result
// and for every per-question-type breakdown.
func validateSubmission(payload models.SubmitSessionPayload) *utils.APIError {
	if err := utils.ValidateStruct(payload); err != nil {
		return err
	}

	if payload.Result.Correct+payload.Result.Incorrect != payload.Result.QuestionCount {
		return utils.NewValidationError("Invalid practice session result")
	}

	for i, stat := range payload.Statistics {
		if stat.Correct+stat.Incorrect != stat.QuestionCount {
			return utils.NewValidationError(fmt.Sprintf("Invalid practice session statistics at index %d", i))
		}
	}

	return nil
}

// Submit records a completed practice session: it advances the streak (first
// session of the day only), accrues XP and profile stats, and inserts the
// immutable session record, all inside one Mongo transaction so no partial
// XP/streak/session state survives a failure.
func (s *SessionService) Submit(ctx context.Context, userID primitive.ObjectID, payload models.SubmitSessionPayload) (*SubmitOutcome, error) {
	if err := validateSubmission(payload); err != nil {
		return nil, err
	}

	session, err := s.db.Client().StartSession()
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer session.EndSession(ctx)

	now := time.Now()

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user models.User
		if err := s.users.FindOne(sc, bson.M{"_id": userID}).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, utils.NewNotFoundError("User not found")
			}
			return nil, utils.NewInternalError(err.Error())
		}

		// First session of the day advances the streak; later ones only
		// accrue XP and duration.
		currentStreak := user.EarTrainingProfile.CurrentStreak
		if !streakLoggedToday(currentStreak, now) {
			if _, err := s.streaks.LogStreak(sc, userID, currentStreak, user.EarTrainingProfile.BestStreak, now); err != nil {
				return nil, err
			}
		}

		xp := CalculateXP(payload.Result.Correct, payload.Result.Score, payload.Type)

		update := bson.M{
			"$inc": bson.M{
				"xp":                                      xp,
				"earTrainingProfile.stats.totalSessions": 1,
				"earTrainingProfile.stats.totalDuration": payload.Duration,
			},
			"$set": bson.M{"updatedAt": now},
		}
		res, err := s.users.UpdateOne(sc, bson.M{"_id": userID}, update)
		if err != nil {
			return nil, utils.NewInternalError(err.Error())
		}
		if res.MatchedCount == 0 {
			return nil, utils.NewNotFoundError("User not found")
		}

		doc := models.PracticeSession{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			Type:       payload.Type,
			Duration:   payload.Duration,
			Result:     payload.Result,
			Statistics: payload.Statistics,
			CreatedAt:  now,
		}
		if _, err := s.sessions.InsertOne(sc, doc); err != nil {
			return nil, utils.NewInternalError(err.Error())
		}

		return &SubmitOutcome{ID: doc.ID.Hex(), XP: xp}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*SubmitOutcome), nil
}

// FetchList returns the user's session history, newest first, with the standard
// pagination envelope.
func (s *SessionService) FetchList(ctx context.Context, userID primitive.ObjectID, exerciseType *models.ExerciseType, page, limit int) (*SessionPage, error) {
	filter := bson.M{"userId": userID}
	if exerciseType != nil {
		filter["type"] = *exerciseType
	}

	totalDocs, err := s.sessions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	docs := make([]models.PracticeSession, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	return &SessionPage{Docs: docs, Pagination: newPagination(totalDocs, page, limit)}, nil
}

// FetchByID returns a single session scoped to its owner.
func (s *SessionService) FetchByID(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.PracticeSession, error) {
	var doc models.PracticeSession
	err := s.sessions.FindOne(ctx, bson.M{"_id": sessionID, "userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Practice session not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}
	return &doc, nil
}
