package router

import (
	"time"

	"github.com/newstarted0004/surti-khaman/internal/config"
	"github.com/newstarted0004/surti-khaman/internal/handler"
	"github.com/newstarted0004/surti-khaman/internal/infra"
	"github.com/newstarted0004/surti-khaman/internal/middleware"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"
	"github.com/newstarted0004/surti-khaman/internal/service"
	"github.com/newstarted0004/surti-khaman/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the long-lived pieces the router wires together. ReceiptWorker
// is returned so main can hand it to the worker pool.
type Deps struct {
	Engine        *gin.Engine
	ReceiptWorker *worker.ReceiptWorker
	RetryCron     worker.RetryCronConfig
}

// New wires all dependencies and returns the configured engine plus the async
// pieces. Dependency graph: Handler ← Service ← Repository ← DB/Redis.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) Deps {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	pdfGen := infra.NewPDFGenerator(cfg.BusinessName, cfg.PDFStoragePath)

	// ── Repositories ─────────────────────────────────────────────────────────
	customerRepo := repository.NewReferenceRepository[model.Customer, *model.Customer](db)
	productRepo := repository.NewReferenceRepository[model.Product, *model.Product](db)
	shopRepo := repository.NewReferenceRepository[model.Shop, *model.Shop](db)
	itemRepo := repository.NewReferenceRepository[model.Item, *model.Item](db)
	workerRepo := repository.NewReferenceRepository[model.Worker, *model.Worker](db)
	dailySaleRepo := repository.NewDailySaleRepository(db)
	bulkSaleRepo := repository.NewBulkSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	workerLedgerRepo := repository.NewWorkerLedgerRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg, rdb)
	customerSvc := service.NewCustomerService(customerRepo)
	productSvc := service.NewProductService(productRepo)
	shopSvc := service.NewShopService(shopRepo)
	itemSvc := service.NewItemService(itemRepo)
	workerSvc := service.NewWorkerService(workerRepo)
	salesSvc := service.NewSalesService(dailySaleRepo)
	bulkSaleSvc := service.NewBulkSaleService(bulkSaleRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo)
	workerLedgerSvc := service.NewWorkerLedgerService(workerRepo, workerLedgerRepo)
	dashboardSvc := service.NewDashboardService(dailySaleRepo, bulkSaleRepo, purchaseRepo, workerLedgerRepo)
	receiptSvc := service.NewReceiptService(receiptRepo, dailySaleRepo, bulkSaleRepo, purchaseRepo, workerRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	productsH := handler.NewProductsHandler(productSvc)
	shopsH := handler.NewShopsHandler(shopSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	workersH := handler.NewWorkersHandler(workerSvc)
	salesH := handler.NewSalesHandler(salesSvc)
	bulkSalesH := handler.NewBulkSalesHandler(bulkSaleSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	workerLedgerH := handler.NewWorkerLedgerHandler(workerLedgerSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	receiptsH := handler.NewReceiptsHandler(receiptSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (login public, logout needs a live token)
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, authSvc)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", jwtMW, authH.Logout)
	}

	// Protected routes
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard", dashboardH.Summary)

		sales := v1.Group("/sales")
		{
			sales.GET("", salesH.List)
			sales.POST("", salesH.Create)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
		}

		bulk := v1.Group("/bulk-sales")
		{
			bulk.GET("", bulkSalesH.List)
			bulk.POST("", bulkSalesH.Create)
			bulk.PUT("/:id", bulkSalesH.Update)
			bulk.PATCH("/:id/payment", bulkSalesH.RecordPayment)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", purchasesH.List)
			purchases.POST("", purchasesH.Create)
			purchases.PUT("/:id", purchasesH.Update)
			purchases.PATCH("/:id/payment", purchasesH.RecordPayment)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", customersH.List)
			customers.POST("", customersH.Create)
			customers.PUT("/reorder", customersH.Reorder)
			customers.PUT("/:id", customersH.Update)
			customers.PATCH("/:id/position", customersH.Move)
		}

		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.PUT("/reorder", productsH.Reorder)
			products.PUT("/:id", productsH.Update)
			products.PATCH("/:id/position", productsH.Move)
		}

		shops := v1.Group("/shops")
		{
			shops.GET("", shopsH.List)
			shops.POST("", shopsH.Create)
			shops.PUT("/reorder", shopsH.Reorder)
			shops.PUT("/:id", shopsH.Update)
			shops.PATCH("/:id/position", shopsH.Move)
		}

		items := v1.Group("/items")
		{
			items.GET("", itemsH.List)
			items.POST("", itemsH.Create)
			items.PUT("/reorder", itemsH.Reorder)
			items.PUT("/:id", itemsH.Update)
			items.PATCH("/:id/position", itemsH.Move)
		}

		workers := v1.Group("/workers")
		{
			workers.GET("", workersH.List)
			workers.POST("", workersH.Create)
			workers.PUT("/reorder", workersH.Reorder)
			workers.PUT("/:id", workersH.Update)
			workers.PATCH("/:id/position", workersH.Move)

			workers.POST("/:id/attendance/toggle", workerLedgerH.ToggleAttendance)
			workers.GET("/:id/attendance", workerLedgerH.ListAttendance)
			workers.POST("/:id/advances", workerLedgerH.CreateAdvance)
			workers.GET("/:id/advances", workerLedgerH.ListAdvances)
			workers.POST("/:id/payments", workerLedgerH.CreatePayment)
			workers.GET("/:id/payments", workerLedgerH.ListPayments)
			workers.GET("/:id/summary", workerLedgerH.Summary)
		}

		receipts := v1.Group("/receipts")
		{
			receipts.POST("", receiptsH.Create)
			receipts.GET("/:id", receiptsH.Get)
			receipts.GET("/:id/download", receiptsH.Download)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	receiptWorker := worker.NewReceiptWorker(
		receiptRepo, dailySaleRepo, bulkSaleRepo, purchaseRepo,
		workerRepo, workerLedgerRepo, pdfGen, rdb,
	)

	return Deps{
		Engine:        r,
		ReceiptWorker: receiptWorker,
		RetryCron: worker.RetryCronConfig{
			ReceiptRepo: receiptRepo,
			Dispatcher:  dispatcher,
		},
	}
}
