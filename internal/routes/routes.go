package routes

import (
	"github.com/riinujain/taskflow-demo/internal/handlers"
	"github.com/riinujain/taskflow-demo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes assembles the router. The report and scheduler handlers carry
// injected state (summary cache, job registry) so they come in as arguments.
func SetupRoutes(reports *handlers.ReportHandler, jobs *handlers.SchedulerHandler) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204) // This depends on the implementation of the frontend
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TaskFlow API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// User endpoints
		protectedRoutes.GET("/users", handlers.GetAllUsers)
		protectedRoutes.GET("/users/me", handlers.GetMe)

		// Project endpoints
		protectedRoutes.POST("/projects", handlers.CreateProject)
		protectedRoutes.GET("/projects", handlers.GetProjects)
		protectedRoutes.GET("/projects/:id", handlers.GetProjectByID)
		protectedRoutes.PATCH("/projects/:id", handlers.UpdateProject)
		protectedRoutes.DELETE("/projects/:id", handlers.DeleteProject)
		protectedRoutes.GET("/projects/:id/stats", handlers.GetProjectStats)
		protectedRoutes.GET("/projects/:id/tasks", handlers.GetProjectTasks)

		// Task endpoints
		protectedRoutes.GET("/tasks", handlers.GetTasks)
		protectedRoutes.GET("/tasks/:id", handlers.GetTaskByID)
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.PATCH("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/status", handlers.UpdateTaskStatus)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)
		protectedRoutes.GET("/tasks/:id/summary", reports.GetTaskSummary)

		// Comment endpoints
		protectedRoutes.POST("/tasks/:id/comments", handlers.CreateComment)
		protectedRoutes.GET("/tasks/:id/comments", handlers.GetComments)

		// Report endpoints
		protectedRoutes.GET("/reports/daily-summary", reports.GetDailySummary)
		protectedRoutes.GET("/reports/overdue", reports.GetOverdueReport)

		// Analytics endpoints
		protectedRoutes.GET("/analytics/status-distribution", handlers.GetStatusDistribution)
		protectedRoutes.GET("/analytics/priority-distribution", handlers.GetPriorityDistribution)
		protectedRoutes.GET("/analytics/completion-rate", handlers.GetCompletionRate)

		// Scheduler admin endpoints
		protectedRoutes.GET("/jobs", jobs.ListJobs)
		protectedRoutes.GET("/jobs/:name", jobs.GetJob)
		protectedRoutes.POST("/jobs/:name/run", jobs.RunJob)
		protectedRoutes.POST("/jobs/:name/enable", jobs.EnableJob)
		protectedRoutes.POST("/jobs/:name/disable", jobs.DisableJob)

		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
