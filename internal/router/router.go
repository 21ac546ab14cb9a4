package router

import (
	"time"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/config"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/handler"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/middleware"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txnRepo := repository.NewTransactionRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	categorySvc := service.NewCategoryService(categoryRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	productSvc := service.NewProductService(productRepo, rdb)
	orderSvc := service.NewOrderService(orderRepo, productRepo, txnRepo)
	walletSvc := service.NewWalletService(txnRepo, orderRepo, cfg, dispatcher)
	analyticsSvc := service.NewAnalyticsService(orderRepo, txnRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	walletH := handler.NewWalletHandler(walletSvc, cfg)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	priceH := handler.NewPriceLookupHandler(productSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required, cached in Redis
	r.GET("/v1/price/:product_id", priceH.Get)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleStaff, model.RolePartner)
		staffUp := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)
		adminOnly := middleware.RequireRole(model.RoleAdmin)

		// Orders — staff and admin write, partners read
		v1.POST("/orders", staffUp, ordersH.Create)
		v1.GET("/orders", anyRole, ordersH.List)
		v1.GET("/orders/:id", anyRole, ordersH.Get)
		v1.PATCH("/orders/:id/status", staffUp, ordersH.ChangeStatus)
		v1.PATCH("/orders/:id/supplier-confirmation", staffUp, ordersH.ToggleSupplierConfirmation)

		// Catalog reads for everyone authenticated
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		v1.GET("/categories", anyRole, categoriesH.List)
		v1.GET("/suppliers", anyRole, suppliersH.List)
		v1.GET("/suppliers/:id", anyRole, suppliersH.Get)

		// Catalog writes — admin only
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Deactivate)
			products.PATCH("/:id/reactivate", productsH.Reactivate)
		}
		categories := v1.Group("/categories", adminOnly)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}
		suppliers := v1.Group("/suppliers", adminOnly)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Deactivate)
		}

		// Wallet — reads and withdrawal requests for staff and partners,
		// resolution is the admin approval step
		v1.GET("/wallet", anyRole, walletH.Get)
		v1.GET("/wallet/transactions", anyRole, walletH.History)
		v1.GET("/wallet/statement", anyRole, walletH.Statement)
		v1.POST("/wallet/withdrawals", anyRole, walletH.RequestWithdrawal)
		v1.PATCH("/wallet/withdrawals/:id", adminOnly, walletH.ResolveWithdrawal)

		// Analytics
		v1.GET("/analytics/summary", anyRole, analyticsH.Summary)
		v1.GET("/analytics/finance", anyRole, analyticsH.Finance)

		// User administration
		users := v1.Group("/users", adminOnly)
		{
			users.GET("", usersH.List)
			users.PATCH("/:id", usersH.Update)
			users.PATCH("/:id/approve", usersH.Approve)
			users.PATCH("/:id/block", usersH.Block)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
