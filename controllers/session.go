package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

// SubmitSession records a completed practice session. Streak, XP, stats and the
// session insert commit or roll back together inside the service transaction.
func SubmitSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		var payload models.SubmitSessionPayload
		if err := c.BindJSON(&payload); err != nil {
			utils.BadRequest(c, "Cannot parse JSON")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		outcome, err := sessions.Submit(ctx, userID, payload)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Created(c, outcome)
	}
}

func GetSessions(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		exerciseType, ok := exerciseTypeQuery(c)
		if !ok {
			return
		}
		page, limit := paginationQuery(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := sessions.FetchList(ctx, userID, exerciseType, page, limit)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, result)
	}
}

func GetSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticatedUserID(c)
		if !ok {
			return
		}

		sessionID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		session, err := sessions.FetchByID(ctx, userID, sessionID)
		if err != nil {
			utils.Error(c, err)
			return
		}

		utils.Success(c, http.StatusOK, session)
	}
}
