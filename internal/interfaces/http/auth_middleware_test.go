package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/amartindev/TenjoConecta/internal/interfaces/http"
	pkgjwt "github.com/amartindev/TenjoConecta/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testAdminEmail = "admin@tenjoconecta.com"
	testIssuer     = "tenjoconecta-test"
	testExpMin     = 60
)

// buildTestApp construye una app Fiber mínima con una ruta protegida por
// AdminMiddleware y un handler dummy que devuelve 200 si el middleware pasa.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AdminMiddleware(testJWTSecret, testAdminEmail),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"email": apphttp.GetAdminEmail(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el email dado.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token del admin configurado → HTTP 200 y email en locals.
func TestAdminMiddleware_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, testAdminEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testAdminEmail, body["email"],
		"el email de la sesión queda disponible en locals")
}

// Caso 2: token válido pero de otro email → HTTP 403 FORBIDDEN.
// Solo existe un administrador; ningún otro token da acceso.
func TestAdminMiddleware_OtroEmailBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "intruso@example.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAdminMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: token malformado → HTTP 401 INVALID_TOKEN.
func TestAdminMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: header sin el esquema Bearer → HTTP 401.
func TestAdminMiddleware_EsquemaIncorrecto(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token firmado con otro secret → HTTP 401.
func TestAdminMiddleware_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testAdminEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: token expirado → HTTP 401.
func TestAdminMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminEmail, testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El email del admin se compara sin distinguir mayúsculas.
func TestAdminMiddleware_EmailCaseInsensitive(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "Admin@TenjoConecta.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
