// Package http wires repositories, use cases, handlers and routes into a
// gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	agreementusecases "tally/internal/application/agreement/usecases"
	planusecases "tally/internal/application/plan/usecases"
	serviceusecases "tally/internal/application/service/usecases"
	userlistusecases "tally/internal/application/userlist/usecases"
	"tally/internal/infrastructure/repository"
	"tally/internal/interfaces/http/handlers"
	"tally/internal/interfaces/http/middleware"
	"tally/internal/interfaces/http/routes"
	"tally/internal/shared/db"
	"tally/internal/shared/logger"
)

// Router owns the gin engine and the full dependency graph behind it.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// NewRouter builds the dependency graph bottom-up and registers all routes.
func NewRouter(database *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery(log))

	planRepo := repository.NewPlanRepository(database, log)
	agreementRepo := repository.NewAgreementRepository(database, log)
	serviceRepo := repository.NewServiceRepository(database, log)
	userListRepo := repository.NewUserListRepository(database, log)
	txMgr := db.NewTransactionManager(database)

	planHandler := handlers.NewPlanHandler(
		planusecases.NewCreatePlanUseCase(planRepo, log),
		planusecases.NewUpdatePlanUseCase(planRepo, log),
		planusecases.NewDeletePlanUseCase(planRepo, agreementRepo, log),
		planusecases.NewGetPlanUseCase(planRepo, log),
		planusecases.NewListPlansUseCase(planRepo, log),
		log,
	)

	agreementHandler := handlers.NewAgreementHandler(
		agreementusecases.NewCreateAgreementUseCase(agreementRepo, log),
		agreementusecases.NewUpdateAgreementUseCase(agreementRepo, serviceRepo, log),
		agreementusecases.NewDeleteAgreementUseCase(agreementRepo, serviceRepo, userListRepo, txMgr, log),
		agreementusecases.NewCreateAgreementRevisionUseCase(agreementRepo, serviceRepo, userListRepo, txMgr, log),
		agreementusecases.NewGetAgreementUseCase(agreementRepo, log),
		agreementusecases.NewListAgreementsUseCase(agreementRepo, log),
		log,
	)

	serviceHandler := handlers.NewServiceHandler(
		serviceusecases.NewCreateServiceUseCase(serviceRepo, agreementRepo, log),
		serviceusecases.NewUpdateServiceUseCase(serviceRepo, log),
		serviceusecases.NewDeleteServiceUseCase(serviceRepo, userListRepo, txMgr, log),
		serviceusecases.NewSaveServiceSystemUseCase(serviceRepo, log),
		serviceusecases.NewRemoveServiceSystemUseCase(serviceRepo, log),
		serviceusecases.NewGetServiceUseCase(serviceRepo, log),
		serviceusecases.NewListServicesUseCase(serviceRepo, log),
		log,
	)

	userListHandler := handlers.NewUserListHandler(
		userlistusecases.NewSaveUserListUseCase(serviceRepo, userListRepo, txMgr, log),
		userlistusecases.NewDeleteUserListUseCase(userListRepo, log),
		userlistusecases.NewGetUserListUseCase(userListRepo, log),
		log,
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupPlanRoutes(engine, &routes.PlanRouteConfig{
		PlanHandler: planHandler,
	})
	routes.SetupAgreementRoutes(engine, &routes.AgreementRouteConfig{
		AgreementHandler: agreementHandler,
		ServiceHandler:   serviceHandler,
	})
	routes.SetupServiceRoutes(engine, &routes.ServiceRouteConfig{
		ServiceHandler:  serviceHandler,
		UserListHandler: userListHandler,
	})

	return &Router{engine: engine, logger: log}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
