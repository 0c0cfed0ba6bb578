package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoply/storefront-api/internal/api/handler"
	"github.com/shoply/storefront-api/internal/core/service"
	mongodb "github.com/shoply/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shoply/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, cacheTTL)

	authz := service.NewAuthorizer(userRepo)
	accountService := service.NewAccountService(userRepo, authz, log)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, authz, catalogCache, log)
	cartService := service.NewCartService(userRepo, productRepo, log)

	accountHandler := handler.NewAccountHandler(accountService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)

	// --- Account routes ---
	e.POST("/register", accountHandler.Register)
	e.POST("/login", accountHandler.Login)
	e.POST("/deactivate", accountHandler.Deactivate)

	// --- Catalog routes ---
	e.GET("/products", catalogHandler.List)
	e.POST("/products", catalogHandler.Create)
	e.PUT("/products/:id", catalogHandler.Update)
	e.DELETE("/products/:id", catalogHandler.Delete)

	e.POST("/categories", categoryHandler.Create)
	e.PUT("/categories/:id", categoryHandler.Update)
	e.DELETE("/categories/:id", categoryHandler.Delete)

	// --- Cart routes ---
	e.POST("/cart", cartHandler.Add)
	e.GET("/cart", cartHandler.View)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
