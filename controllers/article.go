package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

func GetArticles(articles *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		docs, err := articles.FetchList(ctx)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"docs": docs})
	}
}

func GetArticle(articles *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		articleID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		doc, err := articles.FetchByID(ctx, articleID)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, doc)
	}
}

func CreateArticle(articles *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		var payload models.CreateArticlePayload
		if err := c.BindJSON(&payload); err != nil {
			utils.BadRequest(c, "Cannot parse JSON")
			return
		}
		if err := utils.ValidateStruct(payload); err != nil {
			utils.Error(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		doc, err := articles.Create(ctx, userID, payload)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Created(c, doc)
	}
}

func UpdateArticle(articles *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		articleID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var payload models.UpdateArticlePayload
		if err := c.BindJSON(&payload); err != nil {
			utils.BadRequest(c, "Cannot parse JSON")
			return
		}
		if payload.Empty() {
			utils.BadRequest(c, "At least one field must be provided")
			return
		}
		if err := utils.ValidateStruct(payload); err != nil {
			utils.Error(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		doc, err := articles.Update(ctx, userID, articleID, payload)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, doc)
	}
}

func DeleteArticle(articles *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		articleID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := articles.Delete(ctx, userID, articleID); err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"deleted": true})
	}
}
