package api

import (
	"net/http"

	"alcyxob/training-log/internal/service"
	"alcyxob/training-log/internal/templates"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	tmpls *templates.Provider,
	sessions *service.SessionService,
	historySvc *service.HistoryService,
	classes *service.ClassService,
	schedule *service.ScheduleService,
) {
	authHandler := NewAuthHandler(authService)
	templateHandler := NewTemplateHandler(tmpls)
	sessionHandler := NewSessionHandler(sessions)
	historyHandler := NewHistoryHandler(historySvc)
	classHandler := NewClassHandler(classes)
	scheduleHandler := NewScheduleHandler(schedule)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.List)
			templateGroup.GET("/:id", templateHandler.Get)
		}

		sessionGroup := protected.Group("/sessions/:templateId")
		{
			sessionGroup.POST("", sessionHandler.Start)
			sessionGroup.GET("", sessionHandler.Snapshot)
			sessionGroup.DELETE("", sessionHandler.Abandon)
			sessionGroup.POST("/save", sessionHandler.Save)

			sessionGroup.PATCH("/exercises/:idx/sets/:setIdx", sessionHandler.UpdateSet)
			sessionGroup.POST("/exercises/:idx/sets", sessionHandler.AddSet)
			sessionGroup.DELETE("/exercises/:idx/sets/:setIdx", sessionHandler.RemoveSet)

			sessionGroup.POST("/exercises/:idx/timer/toggle", sessionHandler.ToggleRestTimer)
			sessionGroup.POST("/exercises/:idx/timer/reset", sessionHandler.ResetRestTimer)

			sessionGroup.POST("/expand", sessionHandler.ToggleExpand)
			sessionGroup.POST("/info", sessionHandler.ToggleInfo)

			sessionGroup.PATCH("/cardio", sessionHandler.UpdateCardio)
			sessionGroup.POST("/tabata/toggle", sessionHandler.ToggleTabata)
			sessionGroup.POST("/tabata/reset", sessionHandler.ResetTabata)
			sessionGroup.POST("/tabata/complete", sessionHandler.CompleteTabata)
		}

		historyGroup := protected.Group("/history")
		{
			historyGroup.GET("", historyHandler.List)
			historyGroup.GET("/:id", historyHandler.Get)
			historyGroup.DELETE("/:id", historyHandler.Delete)
			historyGroup.POST("/export", historyHandler.Export)
		}

		protected.GET("/schedule", scheduleHandler.Get)
		protected.PUT("/schedule", scheduleHandler.Put)

		protected.POST("/classes", classHandler.LogClass)
		protected.GET("/classes", classHandler.Classes)
		protected.POST("/journal", classHandler.AddJournalEntry)
		protected.GET("/journal", classHandler.JournalEntries)
	}
}
