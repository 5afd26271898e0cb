package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackType string

const (
	FeedbackBug            FeedbackType = "bug"
	FeedbackFeatureRequest FeedbackType = "feature_request"
	FeedbackGeneral        FeedbackType = "general"
)

type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       FeedbackType       `bson:"type" json:"type"`
	Content    string             `bson:"content" json:"content"`
	Attachment *string            `bson:"attachment,omitempty" json:"attachment,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateFeedbackPayload struct {
	Type       FeedbackType `json:"type" validate:"required,oneof=bug feature_request general"`
	Content    string       `json:"content" validate:"required,min=20,max=500"`
	Attachment *string      `json:"attachment,omitempty" validate:"omitempty,min=1"`
}
