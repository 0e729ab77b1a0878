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

	_ "github.com/marketline/commerce-system/docs"
	"github.com/marketline/commerce-system/internal/api/handler"
	"github.com/marketline/commerce-system/internal/api/middleware"
	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
	"github.com/marketline/commerce-system/internal/core/service"
	mongodb "github.com/marketline/commerce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/marketline/commerce-system/internal/infrastructure/db/redis"
	"github.com/marketline/commerce-system/internal/infrastructure/http/handlers"
)

// Allowed-role sets per protected operation. Changing who may create
// products, shops or orders means editing this table only. DISTRIBUTOR
// holds no create permissions.
var (
	productRoles = []domain.Role{domain.RoleAdmin}
	shopRoles    = []domain.Role{domain.RoleAdmin, domain.RoleSalesperson}
	orderRoles   = []domain.Role{domain.RoleAdmin, domain.RoleSalesperson}
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec ports.TokenCodec, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	shopRepo := mongodb.NewShopRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	idem := redisdb.NewIdempotencyChecker(rdb)

	authService := service.NewAuthService(userRepo, codec, tokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	shopService := service.NewShopService(shopRepo, log)
	orderService := service.NewOrderService(orderRepo, idem, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	shopHandler := handler.NewShopHandler(shopService)
	orderHandler := handler.NewOrderHandler(orderService)

	gate := middleware.Auth(codec)

	// --- Auth routes (public) ---
	e.POST("/api/auth/signup", authHandler.SignUp)
	e.POST("/api/auth/signin", authHandler.SignIn)

	// --- Protected routes ---
	admin := e.Group("/admin", gate, middleware.RBAC(productRoles...))
	admin.POST("/products", productHandler.Create)

	sales := e.Group("/salesperson", gate)
	sales.POST("/shops", shopHandler.Create, middleware.RBAC(shopRoles...))
	sales.POST("/orders", orderHandler.Create, middleware.RBAC(orderRoles...))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
