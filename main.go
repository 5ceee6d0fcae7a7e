package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/krycha420/fast-food/config"
	"github.com/krycha420/fast-food/data"
	"github.com/krycha420/fast-food/handlers"
	"github.com/krycha420/fast-food/mockstore"
	"github.com/krycha420/fast-food/routes"
	"github.com/krycha420/fast-food/seeder"
	"github.com/krycha420/fast-food/store"
	"github.com/krycha420/fast-food/web"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Check for mockstore subcommand
	if len(os.Args) > 1 && os.Args[1] == "mockstore" {
		runMockStore()
		return
	}

	client := store.New(cfg.Store.Endpoint, cfg.Store.Project, cfg.Store.APIKey)
	s := seeder.New(client.Databases(), client.Storage(), nil, cfg.Store)

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Fast Food Demo Data Seeder",
			"version": "1.0.0",
		})
	})

	// Admin page with the Seed button
	r.GET("/", func(c *gin.Context) {
		page, err := web.StaticFS.ReadFile("static/index.html")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin page missing"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	// Register all routes
	routes.SetupRoutes(r, handlers.NewAuthHandler(cfg.Admin), handlers.NewSeedHandler(s, data.Demo))

	// Start server
	log.Printf("🚀 Seeder running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// runMockStore starts the local store emulator instead of the seeder,
// so the service can be exercised without a real backend account.
func runMockStore() {
	dbPath := os.Getenv("MOCKSTORE_DB")
	if dbPath == "" {
		dbPath = "mockstore.db"
	}
	port := os.Getenv("MOCKSTORE_PORT")
	if port == "" {
		port = "9090"
	}

	db, err := mockstore.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open mock store database:", err)
	}
	if err := mockstore.New(db).Run(":" + port); err != nil {
		log.Fatal("Failed to start mock store:", err)
	}
}
