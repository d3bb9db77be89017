package routes

import (
	"github.com/gin-gonic/gin"

	"tally/internal/interfaces/http/handlers"
)

// AgreementRouteConfig holds the dependencies for agreement routes.
type AgreementRouteConfig struct {
	AgreementHandler *handlers.AgreementHandler
	ServiceHandler   *handlers.ServiceHandler
}

// SetupAgreementRoutes registers the agreement endpoints, including the
// nested service collection and revision creation.
func SetupAgreementRoutes(engine *gin.Engine, cfg *AgreementRouteConfig) {
	agreements := engine.Group("/api/v1/agreements")
	{
		agreements.POST("", cfg.AgreementHandler.CreateAgreement)
		agreements.GET("", cfg.AgreementHandler.ListAgreements)
		agreements.GET("/:id", cfg.AgreementHandler.GetAgreement)
		agreements.PUT("/:id", cfg.AgreementHandler.UpdateAgreement)
		agreements.DELETE("/:id", cfg.AgreementHandler.DeleteAgreement)
		agreements.POST("/:id/revisions", cfg.AgreementHandler.CreateRevision)
		agreements.POST("/:id/services", cfg.ServiceHandler.CreateService)
		agreements.GET("/:id/services", cfg.ServiceHandler.ListServices)
	}
}
