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

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	apphttp "github.com/jhoicas/startnet-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/startnet-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "startnet-test"
	testExpMin    = 60
)

// buildTestApp ruta protegida con AuthMiddleware + RequireAccountType y un handler que devuelve los locals.
func buildTestApp(allowed ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAccountType(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"userId":      apphttp.GetUserID(c),
				"accountType": apphttp.GetAccountType(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, accountType string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, accountType, testIssuer, expMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	status, body := doProtected(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	e := decodeError(t, body)
	assert.Equal(t, apphttp.CodeMissingToken, e.Code)
	assert.Equal(t, "Authorization header missing or invalid format", e.Message)
	assert.False(t, e.IsExpired)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	for _, h := range []string{"Token abc", "Bearer", "Bearer   "} {
		status, body := doProtected(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, status, h)
		assert.Equal(t, apphttp.CodeMissingToken, decodeError(t, body).Code, h)
	}
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	status, body := doProtected(t, app, "Bearer no.es.jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, apphttp.CodeInvalidToken, decodeError(t, body).Code)

	otro, err := pkgjwt.Generate("otro-secreto", testUserID, entity.AccountEntrepreneur, testIssuer, testExpMin)
	require.NoError(t, err)
	status, body = doProtected(t, app, "Bearer "+otro)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, apphttp.CodeInvalidToken, decodeError(t, body).Code)
}

func TestAuthMiddleware_TokenVencido(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	status, body := doProtected(t, app, bearer(t, entity.AccountEntrepreneur, -5))
	assert.Equal(t, http.StatusUnauthorized, status)
	e := decodeError(t, body)
	assert.Equal(t, apphttp.CodeTokenExpired, e.Code)
	assert.True(t, e.IsExpired)
	assert.Equal(t, "Token has expired. Please sign in again.", e.Message)
}

func TestAuthMiddleware_TipoDeCuentaPermitido(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur, entity.AccountInvestor)

	status, body := doProtected(t, app, bearer(t, entity.AccountInvestor, testExpMin))
	require.Equal(t, http.StatusOK, status, string(body))

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["userId"])
	assert.Equal(t, entity.AccountInvestor, out["accountType"])
}

func TestRequireAccountType_Prohibido(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	status, body := doProtected(t, app, bearer(t, entity.AccountInvestor, testExpMin))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, apphttp.CodeForbidden, decodeError(t, body).Code)
}

func TestAuthMiddleware_SchemeSinDistinguirMayusculas(t *testing.T) {
	app := buildTestApp(entity.AccountEntrepreneur)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.AccountEntrepreneur, testIssuer, testExpMin)
	require.NoError(t, err)
	status, _ := doProtected(t, app, "bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
}
