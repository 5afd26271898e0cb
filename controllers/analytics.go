package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

func GetActivity(analytics *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		exerciseType, ok := exerciseTypeQuery(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		series, err := analytics.FetchActivity(ctx, userID, exerciseType)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, series)
	}
}

func GetProgress(analytics *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		exerciseType, ok := exerciseTypeQuery(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		series, err := analytics.FetchProgress(ctx, userID, exerciseType)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, series)
	}
}

func GetExerciseScores(analytics *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		summary, err := analytics.FetchExerciseScores(ctx, userID)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, summary)
	}
}
