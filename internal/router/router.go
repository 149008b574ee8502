package router

import (
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/config"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/handler"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/middleware"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewStoreSettingsRepository(db, service.DefaultSettings)
	priceRepo := repository.NewGoldPriceRepository(db)
	historyRepo := repository.NewGoldPriceHistoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	notaRepo := repository.NewNotaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	settingsSvc := service.NewStoreSettingsService(settingsRepo)
	priceSvc := service.NewGoldPriceService(priceRepo, historyRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	notaSvc := service.NewNotaService(notaRepo, customerRepo, productRepo, priceRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	settingsH := handler.NewStoreSettingsHandler(settingsSvc, rdb)
	pricesH := handler.NewGoldPricesHandler(priceSvc, rdb)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	notaH := handler.NewNotaHandler(notaSvc)
	dlqH := handler.NewDLQHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public — the storefront reads these without a token
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/api/gold-prices", pricesH.List)
	r.GET("/api/gold-prices/history", pricesH.History)
	r.GET("/api/store-settings", settingsH.Get)
	r.GET("/api/store-settings/status", settingsH.Status)
	r.GET("/api/products", productsH.List)
	r.GET("/api/products/:id", productsH.GetByID)

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/check", authH.Check)

		admin := middleware.RequireRole(model.RoleAdmin)

		prices := api.Group("/gold-prices", admin)
		{
			prices.POST("", pricesH.Create)
			prices.PUT("/:id", pricesH.Update)
			prices.DELETE("/:id", pricesH.Delete)
		}

		products := api.Group("/products", admin)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Deactivate)
		}

		api.PUT("/store-settings", admin, settingsH.Update)

		// Customers and nota are back-office surfaces; only the admin role
		// issues invoices, matching the single-counter shop.
		customers := api.Group("/customers", admin)
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.Search)
		}

		nota := api.Group("/nota", admin)
		{
			nota.POST("", notaH.Create)
			nota.GET("", notaH.List)
			nota.GET("/:id", notaH.GetByID)
			nota.GET("/:id/pdf", notaH.DownloadPDF)
		}

		dlq := api.Group("/admin/dlq", admin)
		{
			dlq.GET("", dlqH.Status)
			dlq.POST("/requeue", dlqH.Requeue)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
