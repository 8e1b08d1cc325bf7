package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/application/auth"
	"github.com/hspsystem/gestor-api/internal/application/ports"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/infrastructure/storage"
	apphttp "github.com/hspsystem/gestor-api/internal/interfaces/http"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

type stubLLM struct{}

func (stubLLM) GenerateReport(context.Context, string) (string, error) { return "ok", nil }

type stubRegistry struct{}

func (stubRegistry) Lookup(context.Context, string) (*ports.CompanyRecord, error) {
	return &ports.CompanyRecord{}, nil
}

type stubReceipts struct{}

func (stubReceipts) OrderReceipt(entity.Order) ([]byte, error) { return []byte("%PDF"), nil }

// buildRouterApp monta la aplicación completa sobre el almacén en memoria,
// con el cableado real de rutas y permisos.
func buildRouterApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := storage.NewMemory(storage.SeedAdmin{})
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewUseCase(repo, auth.TokenConfig{
			Secret: testJWTSecret, Issuer: testIssuer, ExpMinutes: testExpMin,
		}, log),
		CustomerUC:  usecase.NewCustomerUseCase(repo, log),
		SupplierUC:  usecase.NewSupplierUseCase(repo, log),
		ProductUC:   usecase.NewProductUseCase(repo, log),
		InventoryUC: usecase.NewInventoryUseCase(repo, log),
		OrderUC:     usecase.NewOrderUseCase(repo, stubReceipts{}, log),
		CalendarUC:  usecase.NewCalendarUseCase(repo, log),
		PromotionUC: usecase.NewPromotionUseCase(repo, log),
		GoalUC:      usecase.NewGoalUseCase(repo, log),
		UserUC:      usecase.NewUserUseCase(repo, log),
		AnalyticsUC: usecase.NewAnalyticsUseCase(repo, log),
		AIUC:        usecase.NewAIUseCase(repo, stubLLM{}, log),
		CompanyUC:   usecase.NewCompanyUseCase(stubRegistry{}, log),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func getAs(t *testing.T, app *fiber.App, role, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestRouter_PromocionesRequierenVistaDeCatalogo(t *testing.T) {
	app := buildRouterApp(t)

	resp := getAs(t, app, entity.RoleSeller, "/api/promotions/")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"SELLER no gestiona promociones")

	resp = getAs(t, app, entity.RoleStockManager, "/api/promotions/")
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"STOCK_MANAGER administra el catálogo y sus promociones")

	resp = getAs(t, app, entity.RoleAdmin, "/api/promotions/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_GruposProtegidosExigenVista(t *testing.T) {
	app := buildRouterApp(t)

	// Cada colección protegida rechaza a un rol sin la vista correspondiente.
	cases := []struct {
		role string
		path string
	}{
		{entity.RoleSeller, "/api/inventory/entries"},
		{entity.RoleSeller, "/api/products/"},
		{entity.RoleStockManager, "/api/customers/"},
		{entity.RoleStockManager, "/api/goals/"},
		{entity.RoleStockManager, "/api/users/"},
	}
	for _, tc := range cases {
		resp := getAs(t, app, tc.role, tc.path)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"%s no debe acceder a %s", tc.role, tc.path)
	}
}

func TestRouter_SinTokenDevuelve401(t *testing.T) {
	app := buildRouterApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/promotions/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
