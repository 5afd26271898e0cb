package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

func GetMe(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := users.FetchByID(ctx, userID)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"user":               user.Public(),
			"earTrainingProfile": user.EarTrainingProfile,
		})
	}
}

func UpdateGoals(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		var payload models.UpdateGoalsPayload
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

		if err := users.UpdateGoals(ctx, userID, payload.Goals); err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"goals": payload.Goals})
	}
}
