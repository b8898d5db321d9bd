package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/auth"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/memory"
	apphttp "github.com/agrotrack/agrotrack-api/internal/interfaces/http"
	pkgjwt "github.com/agrotrack/agrotrack-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "agrotrack-test"
)

// buildMiddlewareApp construye una app Fiber mínima con AuthMiddleware y un
// handler que devuelve el id del usuario autenticado.
func buildMiddlewareApp(authUC *auth.AuthUseCase) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(authUC),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func doProtectedRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newMiddlewareFixture(t *testing.T) (*fiber.App, string) {
	t.Helper()
	authUC := auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: 30,
		Issuer:  testIssuer,
	})
	reg := registerUser(t, authUC, "produtor@fazenda.com")
	return buildMiddlewareApp(authUC), reg.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido → 200 con el user_id del dueño del token.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app, token := newMiddlewareFixture(t)

	resp := doProtectedRequest(t, app, "Bearer "+token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app, _ := newMiddlewareFixture(t)

	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sin esquema Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app, token := newMiddlewareFixture(t)

	resp := doProtectedRequest(t, app, token) // sin "Bearer "
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token firmado con otro secret → 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaAjena(t *testing.T) {
	app, _ := newMiddlewareFixture(t)

	foreign, err := pkgjwt.Generate("otro-secret", "cualquier-id", testIssuer, 30)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+foreign)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token vencido → 401 TOKEN_EXPIRED, distinguible de firma inválida.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app, _ := newMiddlewareFixture(t)

	expired, err := pkgjwt.Generate(testJWTSecret, "cualquier-id", testIssuer, -1)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+expired)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_EXPIRED")
}

// Token bien firmado pero cuyo usuario ya no existe → 401 USER_NOT_FOUND.
func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app, _ := newMiddlewareFixture(t)

	ghost, err := pkgjwt.Generate(testJWTSecret, "usuario-fantasma", testIssuer, 30)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+ghost)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}
