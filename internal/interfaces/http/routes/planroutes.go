// Package routes registers the HTTP route groups on the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"tally/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds the dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes registers the exchange plan endpoints.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/api/v1/plans")
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
		plans.PUT("/:id", cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", cfg.PlanHandler.DeletePlan)
	}
}
