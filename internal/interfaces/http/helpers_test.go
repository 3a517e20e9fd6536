package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/greenroad/licorera-api/internal/application/analytics"
	"github.com/greenroad/licorera-api/internal/application/auth"
	"github.com/greenroad/licorera-api/internal/application/catalog"
	"github.com/greenroad/licorera-api/internal/application/image"
	"github.com/greenroad/licorera-api/internal/application/usecase"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/infrastructure/memory"
	apphttp "github.com/greenroad/licorera-api/internal/interfaces/http"
	pkgjwt "github.com/greenroad/licorera-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test compartidos por los tests de handlers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "admin"
	testPassword  = "greenroad123"
	testIssuer    = "licorera-api-test"
	testExpMin    = 60
)

// testEnv aplicación completa con inventario sembrado y store de sesiones
// accesible para manipularlo desde los tests.
type testEnv struct {
	app   *fiber.App
	store *memory.SessionStore
	repo  *memory.ProductRepository
}

// newTestEnv arma la aplicación con todas las rutas reales.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := memory.NewProductRepository()
	require.NoError(t, memory.SeedProducts(repo))
	store := memory.NewSessionStore()

	authUC, err := auth.NewAuthUseCase(store, auth.Config{
		AdminUsername: testUsername,
		AdminPassword: testPassword,
		SessionTTL:    time.Hour,
		JWT: auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		},
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		BodyLimit: 8 * 1024 * 1024, // debe superar el límite de imagen (5 MiB)
	})
	app.Use(recover.New())

	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:    catalog.NewCatalogUseCase(repo),
		ProductUC:    usecase.NewProductUseCase(repo),
		DashboardUC:  analytics.NewDashboardUseCase(repo),
		ImageUC:      image.NewImageUseCase(5 * 1024 * 1024),
		AuthUC:       authUC,
		SessionStore: store,
		JWTSecret:    testJWTSecret,
	})

	return &testEnv{app: app, store: store, repo: repo}
}

// tokenForRole crea una sesión directamente en el store y genera su JWT.
// Permite probar roles arbitrarios sin pasar por el login.
func (e *testEnv) tokenForRole(t *testing.T, role string) string {
	t.Helper()
	sess := &entity.Session{
		ID:        uuid.New().String(),
		Username:  testUsername,
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, e.store.Create(sess))
	tok, err := pkgjwt.Generate(testJWTSecret, sess.ID, sess.Username, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// login pasa por el endpoint real y devuelve el header Authorization.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	resp := e.doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login con la credencial demo debe funcionar")

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return "Bearer " + body.Token
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func (e *testEnv) doJSON(t *testing.T, method, path string, payload interface{}, authHeader string) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el cuerpo de la respuesta en out.
func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
