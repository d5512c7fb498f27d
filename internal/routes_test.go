package internal

import (
	"context"
	"folio/internal/admin"
	"folio/internal/catalog"
	"folio/internal/controllers"
	"folio/internal/jobs"
	"folio/internal/services"
	"folio/internal/structures"
	"folio/internal/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testApp struct {
	app     *App
	router  []structures.Route
	content services.ContentServiceInterface
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	conf := &structures.Config{
		AppName: "folio",
		Auth:    structures.AuthConfig{OwnerEmail: "owner@example.com", PasswordHash: string(hash)},
	}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))

	cat, err := catalog.New()
	require.NoError(t, err)
	content := services.NewContentService(client, cat, logger, metrics)
	content.Fetch(context.Background())
	theme := services.NewThemeService(client, testutil.NewMemoryPreferences(), logger)
	theme.Initialize(context.Background())
	fm := jobs.NewFileManager(&testutil.MockCompressor{}, client, logger)

	authController := controllers.NewAuthController(logger, services.NewAuthService(conf, logger))
	router := InitRoutes(
		controllers.NewContentController(logger, content, testutil.NewMockCache()),
		controllers.NewThemeController(logger, theme),
		controllers.NewContactController(logger, services.NewContactService(conf, client, content, logger)),
		authController,
		controllers.NewAdminController(logger, admin.NewService(client, content, logger), content,
			catalog.NewSeeder(client, cat, logger), fm),
	)

	app := NewApp(controllers.NewHealthController(content, client), jobs.NewScheduler(conf, logger, content, fm),
		content, theme, conf, logger, router, metrics)
	return &testApp{app: app, router: router.GetRoutes(), content: content}
}

func (ta *testApp) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ta.app.WebServer.Handler.ServeHTTP(rr, req)
	return rr
}

func (ta *testApp) login(t *testing.T) string {
	t.Helper()
	rr := ta.do(http.MethodPost, "/admin/login", `{"email":"owner@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var session services.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	return session.Token
}

func TestInitRoutes_Patterns(t *testing.T) {
	ta := newTestApp(t)

	patterns := make([]string, len(ta.router))
	for i, r := range ta.router {
		patterns[i] = r.Pattern()
	}

	assert.Contains(t, patterns, "GET /api/content")
	assert.Contains(t, patterns, "GET /api/theme")
	assert.Contains(t, patterns, "POST /api/contact")
	assert.Contains(t, patterns, "POST /admin/login")
	assert.Contains(t, patterns, "DELETE /admin/collections/{name}/{id}")
	assert.Contains(t, patterns, "GET /admin/collections/{name}/new")
	assert.Contains(t, patterns, "GET /admin/export")
	assert.Len(t, patterns, 28)
}

func TestApp_PublicRoutes(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"content":"ready"`)

	rr = ta.do(http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["personalInfo"].(map[string]any)["name"])

	rr = ta.do(http.MethodGet, "/api/theme", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApp_MethodEnforcement(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(http.MethodPost, "/api/content", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = ta.do(http.MethodGet, "/api/contact", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = ta.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestApp_AdminRequiresSession(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(http.MethodGet, "/admin/collections", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"login":"/admin/login"`)

	token := ta.login(t)
	rr = ta.do(http.MethodGet, "/admin/collections", "", token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ta.do(http.MethodGet, "/admin/me", "", token)
	assert.Contains(t, rr.Body.String(), "owner@example.com")
}

func TestApp_AdminEditIsServedPublicly(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	rr := ta.do(http.MethodPost, "/admin/collections/projects", `{"title":"Fresh Project","tags":["go"]}`, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ta.do(http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fresh Project")
}
