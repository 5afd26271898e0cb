package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

func CreateFeedback(feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.CreateFeedbackPayload
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

		doc, err := feedback.Create(ctx, payload)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Created(c, doc)
	}
}

func GetFeedbackList(feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedbackType *models.FeedbackType
		if raw := c.Query("type"); raw != "" {
			t := models.FeedbackType(raw)
			switch t {
			case models.FeedbackBug, models.FeedbackFeatureRequest, models.FeedbackGeneral:
				feedbackType = &t
			default:
				utils.BadRequest(c, "Invalid feedback type")
				return
			}
		}

		page, limit := paginationQuery(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := feedback.FetchList(ctx, feedbackType, page, limit)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, result)
	}
}
