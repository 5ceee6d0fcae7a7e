package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krycha420/fast-food/handlers"
	"github.com/krycha420/fast-food/middleware"
)

func SetupRoutes(r *gin.Engine, auth *handlers.AuthHandler, seed *handlers.SeedHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", auth.Login)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired())
	{
		admin.POST("/seed", seed.TriggerSeed)
		admin.GET("/seed/report", seed.LastReport)
	}
}
