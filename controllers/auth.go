package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/helpers"
	"github.com/OJ217/music-lab-api/models"
	"github.com/OJ217/music-lab-api/services"
	"github.com/OJ217/music-lab-api/utils"
)

type authCredentials struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	User         models.PublicUser `json:"user"`
}

func issueCredentials(cfg *config.Config, user *models.User) (*authCredentials, error) {
	accessToken, refreshToken, err := helpers.GenerateTokens(cfg.JWTSecret, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	return &authCredentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

func SignUp(users *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.SignUpPayload
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

		user, err := users.Create(ctx, payload)
		if err != nil {
			utils.Error(c, err)
			return
		}

		credentials, err := issueCredentials(cfg, user)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Created(c, credentials)
	}
}

func SignIn(users *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.SignInPayload
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

		user, err := users.FetchByEmail(ctx, payload.Email)
		if err != nil || user.Password == nil || !helpers.VerifyPassword(*user.Password, payload.Password) {
			utils.Unauthorized(c, "Invalid email or password")
			return
		}

		credentials, err := issueCredentials(cfg, user)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, http.StatusOK, credentials)
	}
}

// GoogleOAuth exchanges the authorization code for a Google access token, reads
// the user's profile, and signs the user in, creating a password-less account
// on first login.
func GoogleOAuth(users *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.GoogleOAuthPayload
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

		oauthConfig := &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		}

		token, err := oauthConfig.Exchange(ctx, payload.Code)
		if err != nil {
			utils.Unauthorized(c, "Invalid authorization code")
			return
		}

		resp, err := oauthConfig.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			utils.Error(c, utils.NewInternalError(err.Error()))
			return
		}
		defer resp.Body.Close()

		var profile struct {
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
			utils.Unauthorized(c, "Could not read Google profile")
			return
		}

		var picture *string
		if profile.Picture != "" {
			picture = &profile.Picture
		}

		user, err := users.FindOrCreateOAuthUser(ctx, profile.Email, profile.Name, picture)
		if err != nil {
			utils.Error(c, err)
			return
		}

		credentials, err := issueCredentials(cfg, user)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, http.StatusOK, credentials)
	}
}

// Refresh exchanges a valid refresh token for a new token pair. The user must
// still exist.
func Refresh(users *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.RefreshPayload
		if err := c.BindJSON(&payload); err != nil {
			utils.BadRequest(c, "Cannot parse JSON")
			return
		}
		if err := utils.ValidateStruct(payload); err != nil {
			utils.Error(c, err)
			return
		}

		claims, err := helpers.ValidateToken(cfg.JWTSecret, payload.RefreshToken)
		if err != nil {
			utils.Unauthorized(c, "Invalid refresh token")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := users.FetchByEmail(ctx, claims.Email)
		if err != nil {
			utils.Unauthorized(c, "User not found")
			return
		}

		credentials, err := issueCredentials(cfg, user)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Success(c, http.StatusOK, credentials)
	}
}
