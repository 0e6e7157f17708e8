package main

import (
	"log"

	"github.com/riinujain/taskflow-demo/internal/config"
	"github.com/riinujain/taskflow-demo/internal/database"
	"github.com/riinujain/taskflow-demo/internal/handlers"
	"github.com/riinujain/taskflow-demo/internal/realtime"
	"github.com/riinujain/taskflow-demo/internal/routes"
	"github.com/riinujain/taskflow-demo/internal/scheduler"
)

func main() {
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DBPath)

	// Background job registry with the default job set
	registry := scheduler.NewRegistry(database.GetDB())
	if err := scheduler.RegisterDefaultJobs(registry, realtime.GetHub()); err != nil {
		log.Fatal("Failed to register default jobs: ", err)
	}
	if cfg.SchedulerEnabled {
		registry.Start(cfg.SchedulerTick)
		defer registry.Stop()
	}

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes(
		handlers.NewReportHandler(cfg.ReportCacheTTL),
		handlers.NewSchedulerHandler(registry),
	)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/projects")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/reports/daily-summary")
	log.Println("  GET    /api/jobs")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
