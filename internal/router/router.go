package router

import (
	"time"

	"github.com/TheTestGit/LinkedInPro/internal/handlers"
	"github.com/TheTestGit/LinkedInPro/internal/middleware"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the Gin router with the dashboard API routes. All
// requests act on behalf of the configured user.
func SetupRouter(store storage.Storage, events *services.EventsService, userID uint) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handlers with services
	dashboardHandler := handlers.NewDashboardHandler(store)
	analyticsHandler := handlers.NewAnalyticsHandler(store)
	campaignHandler := handlers.NewCampaignHandler(store, events)
	taskHandler := handlers.NewTaskHandler(store)
	activityHandler := handlers.NewActivityHandler(store)
	userHandler := handlers.NewUserHandler(store)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Dashboard routes act as the configured user
		acting := api.Group("")
		acting.Use(middleware.CurrentUser(userID))
		{
			acting.GET("/dashboard/stats", dashboardHandler.GetStats)

			analytics := acting.Group("/analytics")
			{
				analytics.GET("/performance", analyticsHandler.GetPerformance)
				analytics.GET("/export", analyticsHandler.ExportAnalytics)
				analytics.POST("", analyticsHandler.UpsertAnalytics)
			}

			campaigns := acting.Group("/campaigns")
			{
				campaigns.GET("", campaignHandler.GetMyCampaigns)
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.GET("/:id", campaignHandler.GetCampaignByID)
				campaigns.PATCH("/:id", campaignHandler.UpdateCampaign)
				campaigns.GET("/:id/tasks", taskHandler.GetByCampaign)
			}

			tasks := acting.Group("/tasks")
			{
				tasks.GET("", taskHandler.GetMyTasks)
				tasks.POST("", taskHandler.CreateTask)
				tasks.PATCH("/:id", taskHandler.UpdateTask)
			}

			acting.GET("/activity", activityHandler.GetRecent)
			acting.GET("/user/profile", userHandler.GetProfile)
		}
	}

	return r
}
