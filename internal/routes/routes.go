package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/handlers"
	"github.com/halcyon-app/halcyon-api/internal/middleware"
)

// CORSMiddleware allows the mobile client's dev origin to talk to us.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	// Uploaded files are served outside the /api prefix.
	router.GET("/uploads/:filename", h.ServeUpload)

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Activity Routes ---
		api.GET("/activities", h.ListActivities)
		api.POST("/activities", h.CreateActivity)
		api.GET("/activities/summary", h.GetActivitySummary)
		api.DELETE("/activities/:id", h.DeleteActivity)

		// --- Nutrition Routes ---
		api.GET("/nutrition", h.ListNutritionLogs)
		api.POST("/nutrition", h.CreateNutritionLog)
		api.GET("/nutrition/summary", h.GetNutritionSummary)
		api.DELETE("/nutrition/:id", h.DeleteNutritionLog)

		// --- Workout Routes ---
		api.GET("/workouts", h.ListWorkouts)
		api.POST("/workouts", h.CreateWorkout)
		api.GET("/workouts/:id", h.GetWorkout)
		api.PUT("/workouts/:id", h.UpdateWorkout)
		api.DELETE("/workouts/:id", h.DeleteWorkout)

		// --- Meditation Routes ---
		api.GET("/meditation", h.ListMeditationSessions)
		api.POST("/meditation", h.CreateMeditationSession)
		api.GET("/meditation/stats", h.GetMeditationStats)
		api.DELETE("/meditation/:id", h.DeleteMeditationSession)

		// --- Journal Routes ---
		api.GET("/journal", h.ListJournalEntries)
		api.POST("/journal", h.CreateJournalEntry)
		api.DELETE("/journal/:id", h.DeleteJournalEntry)

		// --- Goal Routes ---
		api.GET("/goals", h.ListGoals)
		api.POST("/goals", h.CreateGoal)
		api.PATCH("/goals/:id/progress", h.UpdateGoalProgress)
		api.DELETE("/goals/:id", h.DeleteGoal)

		// --- Weekly Quote Routes ---
		api.GET("/quotes/current", h.GetCurrentQuote)
		api.POST("/quotes/regenerate", h.RegenerateQuote)

		// --- Theme Routes ---
		api.GET("/themes", h.ListThemes)
		api.GET("/themes/active", h.GetActiveTheme)
		api.POST("/themes", h.CreateTheme)
		api.PATCH("/themes/:id", h.UpdateTheme)
		api.POST("/themes/:id/activate", h.ActivateTheme)

		// --- Visual Routes ---
		api.GET("/visuals/rhythm", h.ListRhythmVisuals)
		api.POST("/visuals/rhythm", h.CreateRhythmVisual)
		api.DELETE("/visuals/rhythm/:id", h.DeleteRhythmVisual)
		api.GET("/visuals/renewal", h.ListRenewalVisuals)
		api.GET("/visuals/renewal/current", h.GetCurrentRenewalVisual)
		api.POST("/visuals/renewal", h.CreateRenewalVisual)
		api.DELETE("/visuals/renewal/:id", h.DeleteRenewalVisual)

		// --- Dashboard ---
		api.GET("/dashboard/today", h.GetDailyOverview)

		// --- Subscription Routes (Login Required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/subscription/status", h.GetSubscriptionStatus)
			auth.POST("/subscription/activate", h.ActivateSubscription)
		}

		// --- Admin Routes ---
		admin := api.Group("/admin")
		{
			admin.GET("/categories", h.ListAdminCategories)
			admin.POST("/categories", h.CreateAdminCategory)
			admin.PATCH("/categories/:id", h.UpdateAdminCategory)
			admin.DELETE("/categories/:id", h.DeleteAdminCategory)

			admin.POST("/content/generate", h.GenerateContent)
			admin.POST("/content/improve", h.ImproveContent)
			admin.POST("/content/features", h.GenerateFeatureList)

			admin.POST("/upload/image", h.UploadImage)
		}
	}

	return router
}
