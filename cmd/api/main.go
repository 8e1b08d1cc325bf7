package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/hspsystem/gestor-api/docs"
	"github.com/hspsystem/gestor-api/internal/application/auth"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	infraai "github.com/hspsystem/gestor-api/internal/infrastructure/ai"
	"github.com/hspsystem/gestor-api/internal/infrastructure/brasilapi"
	infrapdf "github.com/hspsystem/gestor-api/internal/infrastructure/pdf"
	"github.com/hspsystem/gestor-api/internal/infrastructure/storage"
	httpRouter "github.com/hspsystem/gestor-api/internal/interfaces/http"
	"github.com/hspsystem/gestor-api/pkg/config"
	"github.com/hspsystem/gestor-api/pkg/logger"
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
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	seed := storage.SeedAdmin{
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
	}

	var repo repository.StateRepository
	switch cfg.Store.Backend {
	case "postgres":
		store, pool, err := storage.NewPostgres(context.Background(), cfg.Store.DatabaseURL, seed)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo = store
	default:
		store, err := storage.NewFile(cfg.Store.Dir, seed)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento de archivos")
		}
		repo = store
	}

	authUC := auth.NewUseCase(repo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log.WithComponent("auth"))

	customerUC := usecase.NewCustomerUseCase(repo, log.WithComponent("clientes"))
	supplierUC := usecase.NewSupplierUseCase(repo, log.WithComponent("proveedores"))
	productUC := usecase.NewProductUseCase(repo, log.WithComponent("catalogo"))
	inventoryUC := usecase.NewInventoryUseCase(repo, log.WithComponent("inventario"))
	calendarUC := usecase.NewCalendarUseCase(repo, log.WithComponent("agenda"))
	promotionUC := usecase.NewPromotionUseCase(repo, log.WithComponent("promociones"))
	goalUC := usecase.NewGoalUseCase(repo, log.WithComponent("metas"))
	userUC := usecase.NewUserUseCase(repo, log.WithComponent("usuarios"))
	analyticsUC := usecase.NewAnalyticsUseCase(repo, log.WithComponent("reportes"))

	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.Name)
	orderUC := usecase.NewOrderUseCase(repo, receiptGen, log.WithComponent("pedidos"))

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(repo, geminiSvc, log.WithComponent("ia"))

	registryClient := brasilapi.NewClient(cfg.Registry.BaseURL)
	companyUC := usecase.NewCompanyUseCase(registryClient, log.WithComponent("empresas"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // firmas e imágenes en base64
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		CalendarUC:  calendarUC,
		PromotionUC: promotionUC,
		GoalUC:      goalUC,
		UserUC:      userUC,
		AnalyticsUC: analyticsUC,
		AIUC:        aiUC,
		CompanyUC:   companyUC,
		JWTSecret:   cfg.JWT.Secret,
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
