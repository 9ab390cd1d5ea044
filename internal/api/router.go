package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hublead/marketplace-api/internal/api/handler"
	"github.com/hublead/marketplace-api/internal/api/middleware"
	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/service"
	mongodb "github.com/hublead/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hublead/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	grantCache := redisdb.NewGrantCache(rdb)

	authService := service.NewAuthService(accountRepo, jwtSecret, 24*time.Hour)
	requestService := service.NewRequestService(requestRepo, log)
	disclosureService := service.NewDisclosureService(requestRepo, accountRepo, grantCache, log)
	adminService := service.NewAdminService(requestRepo, accountRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	leadHandler := handler.NewLeadHandler(disclosureService)
	requestHandler := handler.NewRequestHandler(requestService)
	adminHandler := handler.NewAdminHandler(adminService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/requests", leadHandler.List, middleware.RBAC(domain.RoleSupplier))
	v1.POST("/requests/:id/disclose", leadHandler.Disclose, middleware.RBAC(domain.RoleSupplier))

	v1.POST("/requests", requestHandler.Create, middleware.RBAC(domain.RoleBuyer))
	v1.GET("/my/requests", requestHandler.ListMine, middleware.RBAC(domain.RoleBuyer))

	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/requests", adminHandler.ListPending)
	admin.POST("/requests/:id/approve", adminHandler.Approve)
	admin.DELETE("/requests/:id", adminHandler.Delete)
	admin.POST("/accounts/:id/credit", adminHandler.TopUp)
	admin.GET("/stats", adminHandler.Stats)

	return e
}
