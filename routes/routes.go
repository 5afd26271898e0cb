package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/config"
	"github.com/OJ217/music-lab-api/controllers"
	"github.com/OJ217/music-lab-api/middleware"
	"github.com/OJ217/music-lab-api/services"
)

func SetupRoutes(router *gin.RouterGroup, cfg *config.Config, db *config.Database) {
	userService := services.NewUserService(db)
	streakService := services.NewStreakService(db)
	sessionService := services.NewSessionService(db, streakService)
	analyticsService := services.NewAnalyticsService(db)
	articleService := services.NewArticleService(db)
	feedbackService := services.NewFeedbackService(db)

	// Public endpoints
	auth := router.Group("/auth")
	{
		auth.POST("/sign-up", controllers.SignUp(userService, cfg))
		auth.POST("/sign-in", controllers.SignIn(userService, cfg))
		auth.POST("/google", controllers.GoogleOAuth(userService, cfg))
		auth.POST("/refresh", controllers.Refresh(userService, cfg))
	}

	router.GET("/articles", controllers.GetArticles(articleService))
	router.GET("/articles/:id", controllers.GetArticle(articleService))

	// Private endpoints
	protected := router.Group("/")
	protected.Use(middleware.Authenticate(cfg.JWTSecret))
	{
		protected.GET("/users/me", controllers.GetMe(userService))
		protected.PATCH("/users/me/goals", controllers.UpdateGoals(userService))

		protected.POST("/articles", controllers.CreateArticle(articleService))
		protected.PATCH("/articles/:id", controllers.UpdateArticle(articleService))
		protected.DELETE("/articles/:id", controllers.DeleteArticle(articleService))

		earTraining := protected.Group("/ear-training")
		{
			earTraining.POST("/sessions", controllers.SubmitSession(sessionService))
			earTraining.GET("/sessions", controllers.GetSessions(sessionService))
			earTraining.GET("/sessions/:id", controllers.GetSession(sessionService))

			earTraining.GET("/streak", controllers.GetStreak(streakService))

			earTraining.GET("/analytics/activity", controllers.GetActivity(analyticsService))
			earTraining.GET("/analytics/progress", controllers.GetProgress(analyticsService))
			earTraining.GET("/analytics/scores", controllers.GetExerciseScores(analyticsService))
		}

		protected.POST("/feedback", controllers.CreateFeedback(feedbackService))
		protected.GET("/feedback", controllers.GetFeedbackList(feedbackService))
	}
}
