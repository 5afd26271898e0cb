package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/OJ217/music-lab-api/helpers"
	"github.com/OJ217/music-lab-api/middleware"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/utils"
)

const requestTimeout = 10 * time.Second

const (
	defaultPageLimit = 10
	minPageLimit     = 5
	maxPageLimit     = 20
)

// authenticatedUserID pulls the verified claims set by the auth middleware and
// resolves them to an ObjectID. Writes the 401 response itself on failure.
func authenticatedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claimsValue, exists := c.Get(middleware.ClaimsKey)
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return primitive.NilObjectID, false
	}

	claims, ok := claimsValue.(*helpers.Claims)
	if !ok {
		utils.Unauthorized(c, "Invalid claims")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.Unauthorized(c, "Invalid user id in token")
		return primitive.NilObjectID, false
	}

	return userID, true
}

// objectIDParam parses the :id route parameter. Writes the 400 response itself
// on failure.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "Invalid id parameter")
		return primitive.NilObjectID, false
	}
	return id, true
}

// paginationQuery parses ?page= and ?limit= with the bounds the history
// endpoints enforce: page >= 1, limit between 5 and 20, default 10.
func paginationQuery(c *gin.Context) (page, limit int) {
	page, limit = 1, defaultPageLimit

	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= minPageLimit && n <= maxPageLimit {
			limit = n
		}
	}
	return page, limit
}

// exerciseTypeQuery parses the optional ?type= filter. A present but unknown
// type writes a 400 and reports failure.
func exerciseTypeQuery(c *gin.Context) (*models.ExerciseType, bool) {
	raw := c.Query("type")
	if raw == "" {
		return nil, true
	}

	exerciseType := models.ExerciseType(raw)
	if !exerciseType.Valid() {
		utils.BadRequest(c, "Invalid exercise type")
		return nil, false
	}
	return &exerciseType, true
}
