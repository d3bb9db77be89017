package routes

import (
	"github.com/gin-gonic/gin"

	"tally/internal/interfaces/http/handlers"
)

// ServiceRouteConfig holds the dependencies for service routes.
type ServiceRouteConfig struct {
	ServiceHandler  *handlers.ServiceHandler
	UserListHandler *handlers.UserListHandler
}

// SetupServiceRoutes registers the service endpoints, including system
// allocations and the service roster.
func SetupServiceRoutes(engine *gin.Engine, cfg *ServiceRouteConfig) {
	services := engine.Group("/api/v1/services")
	{
		services.GET("/:id", cfg.ServiceHandler.GetService)
		services.PUT("/:id", cfg.ServiceHandler.UpdateService)
		services.DELETE("/:id", cfg.ServiceHandler.DeleteService)
		services.PUT("/:id/systems/:systemId", cfg.ServiceHandler.SaveServiceSystem)
		services.DELETE("/:id/systems/:systemId", cfg.ServiceHandler.RemoveServiceSystem)
		services.GET("/:id/users", cfg.UserListHandler.GetUserList)
		services.PUT("/:id/users", cfg.UserListHandler.SaveUserList)
		services.DELETE("/:id/users", cfg.UserListHandler.DeleteUserList)
	}
}
