package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExerciseType string

const (
	IntervalIdentification ExerciseType = "interval-identification"
	ChordIdentification    ExerciseType = "chord-identification"
	ModeIdentification     ExerciseType = "mode-identification"
)

// ExerciseTypes lists the enum in declaration order; the per-type analytics
// summary is densified in this order.
var ExerciseTypes = []ExerciseType{
	IntervalIdentification,
	ChordIdentification,
	ModeIdentification,
}

func (t ExerciseType) Valid() bool {
	switch t {
	case IntervalIdentification, ChordIdentification, ModeIdentification:
		return true
	}
	return false
}

// SessionResult is the overall outcome of a practice session.
type SessionResult struct {
	Score         float64 `bson:"score" json:"score" validate:"min=0,max=100"`
	Correct       int     `bson:"correct" json:"correct" validate:"min=0,max=100"`
	Incorrect     int     `bson:"incorrect" json:"incorrect" validate:"min=0,max=100"`
	QuestionCount int     `bson:"questionCount" json:"questionCount" validate:"min=5,max=100"`
}

// QuestionStatistic is a per-question-type breakdown of the session result.
type QuestionStatistic struct {
	Score         float64 `bson:"score" json:"score" validate:"min=0,max=100"`
	Correct       int     `bson:"correct" json:"correct" validate:"min=0,max=100"`
	Incorrect     int     `bson:"incorrect" json:"incorrect" validate:"min=0,max=100"`
	QuestionCount int     `bson:"questionCount" json:"questionCount" validate:"min=1,max=100"`
	QuestionType  string  `bson:"questionType" json:"questionType" validate:"required,min=1,max=50"`
}

// PracticeSession is immutable once inserted and owned exclusively by its user.
type PracticeSession struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID  `bson:"userId" json:"-"`
	Type       ExerciseType        `bson:"type" json:"type"`
	Duration   int                 `bson:"duration" json:"duration"`
	Result     SessionResult       `bson:"result" json:"result"`
	Statistics []QuestionStatistic `bson:"statistics" json:"statistics"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

type SubmitSessionPayload struct {
	Type       ExerciseType        `json:"type" validate:"required,oneof=interval-identification chord-identification mode-identification"`
	Duration   int                 `json:"duration" validate:"required,min=1"`
	Result     SessionResult       `json:"result" validate:"required"`
	Statistics []QuestionStatistic `json:"statistics" validate:"required,min=2,dive"`
}
