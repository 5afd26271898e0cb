package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/helpers"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *config.Database) *UserService {
	return &UserService{users: db.Collection(config.UsersCollection)}
}

// Create registers an email/password user with the default ear training
// profile. Duplicate emails surface as a readable conflict.
func (s *UserService) Create(ctx context.Context, payload models.SignUpPayload) (*models.User, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": payload.Email})
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	if count > 0 {
		return nil, utils.NewConflictError("Duplicate email")
	}

	hashedPassword, err := helpers.HashPassword(payload.Password)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	now := time.Now()
	user := models.User{
		ID:                 primitive.NewObjectID(),
		Email:              payload.Email,
		Username:           payload.Username,
		Password:           &hashedPassword,
		XP:                 0,
		EarTrainingProfile: models.NewEarTrainingProfile(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("Duplicate email")
		}
		return nil, utils.NewInternalError(err.Error())
	}

	return &user, nil
}

// FindOrCreateOAuthUser resolves a Google sign-in: first login creates a
// password-less account, later logins backfill the profile picture if missing.
func (s *UserService) FindOrCreateOAuthUser(ctx context.Context, email, username string, picture *string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		if user.Picture == nil && picture != nil {
			update := bson.M{"$set": bson.M{"picture": picture, "updatedAt": time.Now()}}
			if _, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
				return nil, utils.NewInternalError(err.Error())
			}
			user.Picture = picture
		}
		return &user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewInternalError(err.Error())
	}

	now := time.Now()
	user = models.User{
		ID:                 primitive.NewObjectID(),
		Email:              email,
		Username:           username,
		Picture:            picture,
		XP:                 0,
		EarTrainingProfile: models.NewEarTrainingProfile(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return &user, nil
}

func (s *UserService) FetchByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}
	return &user, nil
}

func (s *UserService) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}
	return &user, nil
}

// UpdateGoals replaces the user's daily goal targets. Uniqueness per exercise
// type and the 10-100 target range are enforced by the payload tags.
func (s *UserService) UpdateGoals(ctx context.Context, userID primitive.ObjectID, goals []models.DailyGoal) error {
	update := bson.M{"$set": bson.M{
		"earTrainingProfile.goals": goals,
		"updatedAt":                time.Now(),
	}}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return utils.NewInternalError(err.Error())
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("User not found")
	}
	return nil
}
