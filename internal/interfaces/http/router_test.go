package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/temucosoft/retail-api/internal/interfaces/http"
)

// buildRouterApp monta el router completo con las guardas reales. Los usecases
// quedan en nil: estos tests solo verifican que los middlewares cortan antes
// de llegar a cualquier handler.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})
	return app
}

// Toda entrada al motor de transacciones exige un principal autenticado:
// el pedido directo no es la excepción.
func TestRouter_PedidoDirectoSinTokenRetorna401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"items":[{"product_id":"p1","quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un pedido directo sin token no debe alcanzar el motor de stock")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRouter_CheckoutSinTokenRetorna401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_VentaSinTokenRetorna401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/sales", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
