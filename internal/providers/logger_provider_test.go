package providers

import (
	"bytes"
	"folio/internal/structures"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Mutating(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypePost, GetLogTypeByRequestType("DELETE"))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("HEAD"))
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "admin", TypeAdmin.String())
	assert.Equal(t, "store", TypeStore.String())
	assert.Equal(t, "unknown", TypeEnum(99).String())
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypeAdmin, "admin message")
	logger.Close()

	for _, name := range []string{"app.log", "get.log", "post.log", "admin.log", "store.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	app, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "test message")

	get, err := os.ReadFile(filepath.Join(dir, "get.log"))
	require.NoError(t, err)
	assert.False(t, bytes.Contains(get, []byte("get message")), "debug is below the configured level")

	admin, err := os.ReadFile(filepath.Join(dir, "admin.log"))
	require.NoError(t, err)
	assert.Contains(t, string(admin), `"type":"admin"`)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "loud", Mode: 0644, Dir: t.TempDir()},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

type recordingLogger struct {
	types []TypeEnum
}

func (m *recordingLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *recordingLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *recordingLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *recordingLogger) Infof(t TypeEnum, _ string, _ ...interface{})  { m.types = append(m.types, t) }
func (m *recordingLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *recordingLogger) Close()                                        {}

func TestLoggingMiddleware_RoutesAdminTraffic(t *testing.T) {
	logger := &recordingLogger{}
	mw := LoggingMiddleware(logger, dummyHandler())

	mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/content", nil))
	mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/seed", nil))

	assert.Equal(t, []TypeEnum{TypeGet, TypePost, TypeAdmin}, logger.types)
}
