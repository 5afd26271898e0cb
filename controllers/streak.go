package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

// GetStreak returns the user's current and best streaks. A lapsed streak (no
// session since before yesterday) is reset on read before being returned.
func GetStreak(streaks *services.StreakService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := streaks.FetchByUserID(ctx, userID)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, result)
	}
}
