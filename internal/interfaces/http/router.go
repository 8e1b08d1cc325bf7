package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/auth"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
	"github.com/hspsystem/gestor-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	CalendarUC  *usecase.CalendarUseCase
	PromotionUC *usecase.PromotionUseCase
	GoalUC      *usecase.GoalUseCase
	UserUC      *usecase.UserUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	AIUC        *usecase.AIUseCase
	CompanyUC   *usecase.CompanyUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido lleva, además del
// Bearer Token, la vista que el rol debe tener según la tabla de permisos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	customers := protected.Group("/customers", RequireView(permission.ViewCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers", RequireView(permission.ViewSuppliers))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Catálogo
	products := protected.Group("/products", RequireView(permission.ViewProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventario
	invGroup := protected.Group("/inventory", RequireView(permission.ViewInventory))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/entries", inventoryHandler.ListEntries)
	invGroup.Post("/entries", inventoryHandler.ReceiveStock)

	// Pedidos: la creación exige la vista NEW_ORDER; el resto, OPEN_ORDERS.
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", RequireView(permission.ViewNewOrder), orderHandler.Create)
	ordersGroup.Get("/", RequireView(permission.ViewOpenOrders), orderHandler.List)
	ordersGroup.Get("/:id", RequireView(permission.ViewOpenOrders), orderHandler.GetByID)
	ordersGroup.Put("/:id", RequireView(permission.ViewOpenOrders), orderHandler.Update)
	ordersGroup.Patch("/:id/status", RequireView(permission.ViewOpenOrders), orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/cancel", RequireView(permission.ViewOpenOrders), orderHandler.Cancel)
	ordersGroup.Get("/:id/receipt", RequireView(permission.ViewOpenOrders), orderHandler.Receipt)

	// Cuentas por cobrar (pedidos realizados)
	protected.Get("/payments", RequireView(permission.ViewPayments), func(c *fiber.Ctx) error {
		out, err := deps.OrderUC.Receivables()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	})

	// Agenda
	events := protected.Group("/events", RequireView(permission.ViewAgenda))
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	events.Get("/", calendarHandler.List)
	events.Post("/", calendarHandler.Create)
	events.Put("/:id", calendarHandler.Update)
	events.Delete("/:id", calendarHandler.Delete)

	// Promociones: forman parte de la gestión del catálogo
	promotions := protected.Group("/promotions", RequireView(permission.ViewProducts))
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	promotions.Get("/", promotionHandler.List)
	promotions.Post("/", promotionHandler.Create)
	promotions.Put("/:id", promotionHandler.Update)
	promotions.Delete("/:id", promotionHandler.Delete)

	// Metas de venta
	goals := protected.Group("/goals", RequireView(permission.ViewGoals))
	goalHandler := NewGoalHandler(deps.GoalUC)
	goals.Get("/", goalHandler.List)
	goals.Put("/", goalHandler.Save)
	goals.Get("/trend", goalHandler.Trend)
	goals.Get("/:month/progress", goalHandler.Progress)

	// Usuarios (solo ADMIN tiene la vista USERS)
	users := protected.Group("/users", RequireView(permission.ViewUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard y reportes
	reportHandler := NewReportHandler(deps.AnalyticsUC, deps.AIUC)
	protected.Get("/reports/summary", RequireView(permission.ViewDashboard), reportHandler.Summary)
	reports := protected.Group("/reports", RequireView(permission.ViewReports))
	reports.Get("/monthly-revenue", reportHandler.MonthlyRevenue)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/stock", reportHandler.StockSnapshot)
	reports.Post("/ai", reportHandler.AIReport)

	// Consulta de CNPJ (la usan los formularios de clientes y proveedores)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company/:cnpj", companyHandler.Lookup)
}
