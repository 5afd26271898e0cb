package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Article struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Content      string             `bson:"content" json:"content"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateArticlePayload struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"required,min=1,max=500"`
	Content      string `json:"content" validate:"required,min=1"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"required,url"`
}

// UpdateArticlePayload carries partial updates; at least one field must be set.
type UpdateArticlePayload struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	Content      *string `json:"content,omitempty" validate:"omitempty,min=1"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
}

func (p *UpdateArticlePayload) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Content == nil && p.ThumbnailURL == nil
}
