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

type ArticleService struct {
	articles *mongo.Collection
}

func NewArticleService(db *config.Database) *ArticleService {
	return &ArticleService{articles: db.Collection(config.ArticlesCollection)}
}

func (s *ArticleService) FetchList(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	defer cursor.Close(ctx)

	docs := make([]models.Article, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return docs, nil
}

func (s *ArticleService) FetchByID(ctx context.Context, articleID primitive.ObjectID) (*models.Article, error) {
	var doc models.Article
	if err := s.articles.FindOne(ctx, bson.M{"_id": articleID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Article not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}
	return &doc, nil
}

func (s *ArticleService) Create(ctx context.Context, authorID primitive.ObjectID, payload models.CreateArticlePayload) (*models.Article, error) {
	now := time.Now()
	doc := models.Article{
		ID:           primitive.NewObjectID(),
		Title:        payload.Title,
		Description:  payload.Description,
		Content:      payload.Content,
		ThumbnailURL: payload.ThumbnailURL,
		Author:       authorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.articles.InsertOne(ctx, doc); err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return &doc, nil
}

// Update applies a partial update scoped to the article's author.
func (s *ArticleService) Update(ctx context.Context, authorID, articleID primitive.ObjectID, payload models.UpdateArticlePayload) (*models.Article, error) {
	set := bson.M{"updatedAt": time.Now()}
	if payload.Title != nil {
		set["title"] = *payload.Title
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if payload.Content != nil {
		set["content"] = *payload.Content
	}
	if payload.ThumbnailURL != nil {
		set["thumbnailUrl"] = *payload.ThumbnailURL
	}

	var doc models.Article
	err := s.articles.FindOneAndUpdate(ctx,
		bson.M{"_id": articleID, "author": authorID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Article not found")
		}
		return nil, utils.NewInternalError(err.Error())
	}
	return &doc, nil
}

func (s *ArticleService) Delete(ctx context.Context, authorID, articleID primitive.ObjectID) error {
	res, err := s.articles.DeleteOne(ctx, bson.M{"_id": articleID, "author": authorID})
	if err != nil {
		return utils.NewInternalError(err.Error())
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("Article not found")
	}
	return nil
}
