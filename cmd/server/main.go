package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/config"
	"eventplanner/internal/database"
	"eventplanner/internal/handler"
	"eventplanner/internal/middleware"
	"eventplanner/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}
	log.Println("✅ Database connected and migrated successfully")

	h := handler.New(
		store.New(db),
		store.NewEventGraph(db),
		store.NewAssignmentManager(db),
		store.NewReports(db),
		cfg.JWTSecret,
	)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	h.SetupRoutes(r)

	log.Printf("🚀 Server running on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
