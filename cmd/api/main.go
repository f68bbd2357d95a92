package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/temucosoft/retail-api/internal/application/auth"
	"github.com/temucosoft/retail-api/internal/application/authz"
	"github.com/temucosoft/retail-api/internal/application/orders"
	"github.com/temucosoft/retail-api/internal/application/purchasing"
	"github.com/temucosoft/retail-api/internal/application/reports"
	"github.com/temucosoft/retail-api/internal/application/sales"
	"github.com/temucosoft/retail-api/internal/application/usecase"
	infrapdf "github.com/temucosoft/retail-api/internal/infrastructure/pdf"
	"github.com/temucosoft/retail-api/internal/infrastructure/postgres"
	httpRouter "github.com/temucosoft/retail-api/internal/interfaces/http"
	"github.com/temucosoft/retail-api/pkg/config"
	"github.com/temucosoft/retail-api/pkg/logger"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool. Los que mutan dentro de una transacción de
	// negocio llegan a los usecases vía TxRunner, atados a la tx.
	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authorizer := authz.NewAuthorizer(authz.DefaultPlanCatalog(), subscriptionRepo, branchRepo, userRepo)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, authorizer)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, branchRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, branchRepo, productRepo)
	userUC := usecase.NewUserUseCase(userRepo, authorizer)
	subscriptionUC := usecase.NewSubscriptionUseCase(txRunner, subscriptionRepo, tenantRepo)

	saleUC := sales.NewUseCase(txRunner, productRepo, branchRepo, saleRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, branchRepo, tenantRepo, productRepo, receiptGenerator)
	purchaseUC := purchasing.NewUseCase(txRunner, productRepo, branchRepo, supplierRepo, purchaseRepo)
	cartUC := orders.NewCartUseCase(cartRepo, productRepo)
	orderUC := orders.NewOrderUseCase(txRunner, productRepo, orderRepo, cartRepo)
	reportUC := reports.NewUseCase(reportRepo, branchRepo)

	m := metrics.New(cfg.Metrics.Prefix)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		TenantUC:       tenantUC,
		BranchUC:       branchUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		InventoryUC:    inventoryUC,
		UserUC:         userUC,
		SubscriptionUC: subscriptionUC,
		SaleUC:         saleUC,
		ReceiptUC:      receiptUC,
		PurchaseUC:     purchaseUC,
		CartUC:         cartUC,
		OrderUC:        orderUC,
		ReportUC:       reportUC,
		Authorizer:     authorizer,
		Metrics:        m,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
