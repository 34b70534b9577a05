package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/farmatech/api/internal/interfaces/http"
	pkgjwt "github.com/farmatech/api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testFarmaciaID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "farmatech-test"
	testAccessMin  = 60
	testRefreshHrs = 24
)

// buildTestApp constrói uma aplicação Fiber mínima com o AuthMiddleware e um
// handler que espelha o local extraído do token.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

func testPair(t *testing.T) *pkgjwt.Pair {
	t.Helper()
	pair, err := pkgjwt.GeneratePair(testJWTSecret, testUserID, testFarmaciaID, testIssuer, testAccessMin, testRefreshHrs)
	require.NoError(t, err, "deve ser possível gerar o par de tokens")
	return pair
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token de acesso válido: claims extraídos para os locals.
func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+testPair(t).Access)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

// Refresh token não dá acesso a rotas protegidas.
func TestAuthMiddleware_RefreshTokenRejeitado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+testPair(t).Refresh)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"refresh token não deve passar pelo middleware de acesso")
}

// Sem header Authorization: HTTP 401.
func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header malformado (sem o prefixo Bearer): HTTP 401.
func TestAuthMiddleware_HeaderMalformado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token inválido: HTTP 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
