package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CurrentStreak tracks the run of consecutive practice days.
type CurrentStreak struct {
	Count       int       `bson:"count" json:"count"`
	StartDate   time.Time `bson:"startDate" json:"startDate"`
	LastLogDate time.Time `bson:"lastLogDate" json:"lastLogDate"`
}

// BestStreak is the longest run ever recorded for the user.
type BestStreak struct {
	Count     int       `bson:"count" json:"count"`
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
}

// DailyGoal is a per-exercise-type question target, unique per type.
type DailyGoal struct {
	ExerciseType ExerciseType `bson:"exerciseType" json:"exerciseType" validate:"required,oneof=interval-identification chord-identification mode-identification"`
	Target       int          `bson:"target" json:"target" validate:"required,min=10,max=100"`
}

type ProfileStats struct {
	TotalSessions int `bson:"totalSessions" json:"totalSessions"`
	TotalDuration int `bson:"totalDuration" json:"totalDuration"`
}

// EarTrainingProfile is embedded in the user document and mutated only by the
// session submit transaction and the lazy streak reset.
type EarTrainingProfile struct {
	CurrentStreak CurrentStreak `bson:"currentStreak" json:"currentStreak"`
	BestStreak    BestStreak    `bson:"bestStreak" json:"bestStreak"`
	Goals         []DailyGoal   `bson:"goals" json:"goals"`
	Stats         ProfileStats  `bson:"stats" json:"stats"`
}

type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email" json:"email"`
	Username           string             `bson:"username" json:"username"`
	Picture            *string            `bson:"picture,omitempty" json:"picture,omitempty"`
	Password           *string            `bson:"password,omitempty" json:"-"`
	XP                 float64            `bson:"xp" json:"xp"`
	EarTrainingProfile EarTrainingProfile `bson:"earTrainingProfile" json:"earTrainingProfile"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewEarTrainingProfile returns the defaults applied at sign-up: a zeroed streak
// whose lastLogDate sits on yesterday so the first session starts a fresh run.
func NewEarTrainingProfile(now time.Time) EarTrainingProfile {
	return EarTrainingProfile{
		CurrentStreak: CurrentStreak{
			Count:       0,
			StartDate:   now,
			LastLogDate: now.AddDate(0, 0, -1),
		},
		BestStreak: BestStreak{
			Count:     0,
			StartDate: now,
			EndDate:   now,
		},
		Goals: []DailyGoal{
			{ExerciseType: IntervalIdentification, Target: 10},
			{ExerciseType: ChordIdentification, Target: 10},
			{ExerciseType: ModeIdentification, Target: 10},
		},
		Stats: ProfileStats{},
	}
}

type SignUpPayload struct {
	Email                string `json:"email" validate:"required,email"`
	Username             string `json:"username" validate:"required,min=4,max=20"`
	Password             string `json:"password" validate:"required,min=8,max=20"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

type SignInPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type GoogleOAuthPayload struct {
	Code string `json:"code" validate:"required,min=1"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refreshToken" validate:"required,min=1"`
}

type UpdateGoalsPayload struct {
	Goals []DailyGoal `json:"goals" validate:"required,min=1,max=3,unique=ExerciseType,dive"`
}

// PublicUser is the user shape returned by auth and profile endpoints.
type PublicUser struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Picture  *string `json:"picture,omitempty"`
	XP       float64 `json:"xp"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		Picture:  u.Picture,
		XP:       u.XP,
	}
}
