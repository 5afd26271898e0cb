package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

type FeedbackPage struct {
	Docs []models.Feedback `json:"docs"`
	Pagination
}

type FeedbackService struct {
	feedback *mongo.Collection
}

func NewFeedbackService(db *config.Database) *FeedbackService {
	return &FeedbackService{feedback: db.Collection(config.FeedbackCollection)}
}

func (s *FeedbackService) Create(ctx context.Context, payload models.CreateFeedbackPayload) (*models.Feedback, error) {
	doc := models.Feedback{
		ID:         primitive.NewObjectID(),
		Type:       payload.Type,
		Content:    payload.Content,
		Attachment: payload.Attachment,
		CreatedAt:  time.Now(),
	}
	if _, err := s.feedback.InsertOne(ctx, doc); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return &doc, nil
}

func (s *FeedbackService) FetchList(ctx context.Context, feedbackType *models.FeedbackType, page, limit int) (*FeedbackPage, error) {
	filter := bson.M{}
	if feedbackType != nil {
		filter["type"] = *feedbackType
	}

	totalDocs, err := s.feedback.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.feedback.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	docs := make([]models.Feedback, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	return &FeedbackPage{Docs: docs, Pagination: newPagination(totalDocs, page, limit)}, nil
}
