package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/auth"
	"github.com/temucosoft/retail-api/internal/application/authz"
	"github.com/temucosoft/retail-api/internal/application/orders"
	"github.com/temucosoft/retail-api/internal/application/purchasing"
	"github.com/temucosoft/retail-api/internal/application/reports"
	"github.com/temucosoft/retail-api/internal/application/sales"
	"github.com/temucosoft/retail-api/internal/application/usecase"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	TenantUC       *usecase.TenantUseCase
	BranchUC       *usecase.BranchUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	InventoryUC    *usecase.InventoryUseCase
	UserUC         *usecase.UserUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	SaleUC         *sales.UseCase
	ReceiptUC      *sales.ReceiptUseCase
	PurchaseUC     *purchasing.UseCase
	CartUC         *orders.CartUseCase
	OrderUC        *orders.OrderUseCase
	ReportUC       *reports.UseCase
	Authorizer     *authz.Authorizer
	Metrics        *metrics.Metrics
	JWTSecret      string
}

// Router registra las rutas de la API con sus guardas de rol y de plan.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenants (solo super_admin)
	tenants := protected.Group("/tenants", RequireRole(entity.RoleSuperAdmin))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.Get)
	tenants.Put("/:id", tenantHandler.Update)

	// Branches (lectura vendedor+; escritura admin_cliente+, con límite de plan)
	branches := protected.Group("/branches", RequireRole(entity.RoleVendedor))
	branchHandler := NewBranchHandler(deps.BranchUC, deps.Metrics)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.Get)
	branches.Post("/", RequireRole(entity.RoleAdminCliente), branchHandler.Create)
	branches.Put("/:id", RequireRole(entity.RoleAdminCliente), branchHandler.Update)
	branches.Delete("/:id", RequireRole(entity.RoleAdminCliente), branchHandler.Delete)

	// Suppliers (gerente+)
	suppliers := protected.Group("/suppliers", RequireRole(entity.RoleGerente))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products (lectura vendedor+; escritura gerente+)
	products := protected.Group("/products", RequireRole(entity.RoleVendedor))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/", RequireRole(entity.RoleGerente), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleGerente), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleGerente), productHandler.Delete)

	// Inventory (lectura vendedor+; escritura gerente+)
	inventory := protected.Group("/inventory", RequireRole(entity.RoleVendedor))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.ListByBranch)
	inventory.Get("/:id", inventoryHandler.Get)
	inventory.Post("/", RequireRole(entity.RoleGerente), inventoryHandler.Create)
	inventory.Put("/:id", RequireRole(entity.RoleGerente), inventoryHandler.Update)
	inventory.Delete("/:id", RequireRole(entity.RoleGerente), inventoryHandler.Delete)

	// Sales (vendedor+)
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleVendedor))
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC, deps.Metrics)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.Get)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Purchases (gerente+)
	purchases := protected.Group("/purchases", RequireRole(entity.RoleGerente))
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.Metrics)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.Get)

	// Cart + checkout (cualquier usuario autenticado)
	orderHandler := NewOrderHandler(deps.CartUC, deps.OrderUC, deps.Metrics)
	cart := protected.Group("/cart")
	cart.Get("/", orderHandler.GetCart)
	cart.Delete("/", orderHandler.ClearCart)
	cart.Post("/items", orderHandler.AddCartItem)
	cart.Delete("/items/:product_id", orderHandler.RemoveCartItem)
	cart.Post("/checkout", orderHandler.Checkout)

	// Orders (autenticado; cambio de estado gerente+)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.CreateOrder)
	ordersGroup.Get("/", orderHandler.ListOrders)
	ordersGroup.Get("/:id", orderHandler.GetOrder)
	ordersGroup.Patch("/:id/status", RequireRole(entity.RoleGerente), orderHandler.UpdateStatus)

	// Users (admin_cliente+, con límite de plan)
	users := protected.Group("/users", RequireRole(entity.RoleAdminCliente))
	userHandler := NewUserHandler(deps.UserUC, deps.Metrics)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Delete("/:id", userHandler.Delete)

	// Subscriptions (alta solo super_admin; consulta admin_cliente+)
	subscriptions := protected.Group("/subscriptions", RequireRole(entity.RoleAdminCliente))
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subscriptions.Post("/", RequireRole(entity.RoleSuperAdmin), subscriptionHandler.Create)
	subscriptions.Get("/", subscriptionHandler.List)
	subscriptions.Get("/active", subscriptionHandler.GetActive)

	// Reports (gerente+ y plan con reportes)
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleGerente), RequireReports(deps.Authorizer))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)

	// Integration (solo plan premium)
	integration := protected.Group("/integration", RequireAPIAccess(deps.Authorizer))
	integrationHandler := NewIntegrationHandler(deps.ProductUC, deps.ReportUC)
	integration.Get("/products", integrationHandler.ExportProducts)
	integration.Get("/stock", integrationHandler.ExportStock)
}
