package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

const dateBucketFormat = "2006-01-02"

// ActivityBucket is one calendar day of practice volume (summed question count).
type ActivityBucket struct {
	Date     string `bson:"date" json:"date"`
	Activity int    `bson:"activity" json:"activity"`
}

// ProgressBucket is one calendar day of practice volume plus correct answers.
type ProgressBucket struct {
	Date     string `bson:"date" json:"date"`
	Correct  int    `bson:"correct" json:"correct"`
	Activity int    `bson:"activity" json:"activity"`
}

// TypeBucket is the month-to-date summary for a single exercise type. Score is
// the accuracy percentage, derived when the summary is densified.
type TypeBucket struct {
	Type     models.ExerciseType `bson:"type" json:"type"`
	Correct  int                 `bson:"correct" json:"correct"`
	Activity int                 `bson:"activity" json:"activity"`
	Score    float64             `bson:"-" json:"score"`
}

// seriesLength implements the month-to-date window: one bucket per day of the
// current month, never fewer than seven.
func seriesLength(now time.Time) int {
	if day := now.In(referenceLocation).Day(); day > 7 {
		return day
	}
	return 7
}

// seriesDates returns the bucket keys for a series of n days ending on the
// reference day, most recent first.
func seriesDates(now time.Time, n int) []string {
	day := startOfDay(now)
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = day.AddDate(0, 0, -i).Format(dateBucketFormat)
	}
	return dates
}

// fillActivitySeries densifies raw day buckets into a gapless series of n
// entries ending on the reference day. An empty input stays empty: a user with
// no sessions in range gets no padded series.
func fillActivitySeries(raw []ActivityBucket, now time.Time, n int) []ActivityBucket {
	if len(raw) == 0 || len(raw) >= n {
		return raw
	}

	byDate := make(map[string]int, len(raw))
	for _, bucket := range raw {
		byDate[bucket.Date] = bucket.Activity
	}

	series := make([]ActivityBucket, 0, n)
	for _, date := range seriesDates(now, n) {
		series = append(series, ActivityBucket{Date: date, Activity: byDate[date]})
	}
	return series
}

func fillProgressSeries(raw []ProgressBucket, now time.Time, n int) []ProgressBucket {
	if len(raw) == 0 || len(raw) >= n {
		return raw
	}

	byDate := make(map[string]ProgressBucket, len(raw))
	for _, bucket := range raw {
		byDate[bucket.Date] = bucket
	}

	series := make([]ProgressBucket, 0, n)
	for _, date := range seriesDates(now, n) {
		if bucket, ok := byDate[date]; ok {
			series = append(series, bucket)
		} else {
			series = append(series, ProgressBucket{Date: date})
		}
	}
	return series
}

// fillTypeSummary densifies per-type buckets so every exercise type appears, in
// enum declaration order, with zero values where the user has no sessions, and
// derives each type's accuracy score.
func fillTypeSummary(raw []TypeBucket) []TypeBucket {
	byType := make(map[models.ExerciseType]TypeBucket, len(raw))
	for _, bucket := range raw {
		byType[bucket.Type] = bucket
	}

	summary := make([]TypeBucket, 0, len(models.ExerciseTypes))
	for _, exerciseType := range models.ExerciseTypes {
		bucket, ok := byType[exerciseType]
		if !ok {
			bucket = TypeBucket{Type: exerciseType}
		}
		bucket.Score = Percentage(bucket.Correct, bucket.Activity)
		summary = append(summary, bucket)
	}
	return summary
}

type AnalyticsService struct {
	sessions *mongo.Collection
}

func NewAnalyticsService(db *config.Database) *AnalyticsService {
	return &AnalyticsService{sessions: db.Collection(config.PracticeSessionsCollection)}
}

func dailyMatch(userID primitive.ObjectID, exerciseType *models.ExerciseType, since time.Time) bson.M {
	match := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}
	if exerciseType != nil {
		match["type"] = *exerciseType
	}
	return match
}

var groupByDay = bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}}

// FetchActivity returns the date-bucketed activity series for the month-to-date
// window, optionally filtered by exercise type.
func (s *AnalyticsService) FetchActivity(ctx context.Context, userID primitive.ObjectID, exerciseType *models.ExerciseType) ([]ActivityBucket, error) {
	now := time.Now()
	n := seriesLength(now)
	since := startOfDay(now).AddDate(0, 0, -(n - 1))

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dailyMatch(userID, exerciseType, since)}},
		{{Key: "$group", Value: bson.M{
			"_id":      groupByDay,
			"activity": bson.M{"$sum": "$result.questionCount"},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "date": "$_id", "activity": 1}}},
		{{Key: "$sort", Value: bson.M{"date": -1}}},
	}

	cursor, err := s.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	var raw []ActivityBucket
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return fillActivitySeries(raw, now, n), nil
}

// FetchProgress returns the date-bucketed series with both correct answers and
// activity per day.
func (s *AnalyticsService) FetchProgress(ctx context.Context, userID primitive.ObjectID, exerciseType *models.ExerciseType) ([]ProgressBucket, error) {
	now := time.Now()
	n := seriesLength(now)
	since := startOfDay(now).AddDate(0, 0, -(n - 1))

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dailyMatch(userID, exerciseType, since)}},
		{{Key: "$group", Value: bson.M{
			"_id":      groupByDay,
			"correct":  bson.M{"$sum": "$result.correct"},
			"activity": bson.M{"$sum": "$result.questionCount"},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "date": "$_id", "correct": 1, "activity": 1}}},
		{{Key: "$sort", Value: bson.M{"date": -1}}},
	}

	cursor, err := s.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	var raw []ProgressBucket
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return fillProgressSeries(raw, now, n), nil
}

// FetchExerciseScores returns the month-to-date per-type summary, one entry per
// exercise type in declaration order.
func (s *AnalyticsService) FetchExerciseScores(ctx context.Context, userID primitive.ObjectID) ([]TypeBucket, error) {
	now := time.Now().In(referenceLocation)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, referenceLocation)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId":    userID,
			"createdAt": bson.M{"$gte": startOfMonth},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$type",
			"correct":  bson.M{"$sum": "$result.correct"},
			"activity": bson.M{"$sum": "$result.questionCount"},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "type": "$_id", "correct": 1, "activity": 1}}},
	}

	cursor, err := s.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	var raw []TypeBucket
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return fillTypeSummary(raw), nil
}
