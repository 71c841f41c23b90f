package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ponto_backend/internal/config"
	"ponto_backend/internal/schedule"
	"ponto_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	require.NoError(t, storage.SeedAdmin(db))

	cfg := &config.Config{
		Location: time.UTC,
		Schedule: []schedule.Entry{
			{Event: schedule.EventEntry, At: schedule.TimeOfDay{Hour: 8}},
			{Event: schedule.EventExit, At: schedule.TimeOfDay{Hour: 18}},
		},
		ToleranceMinutes: 10,
	}
	return NewRouter(db, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, nationalID, code string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"national_id": nationalID,
		"code":        code,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAndClockFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	// Admin creates an employee, the employee logs in with their code.
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/employees", token, gin.H{
		"code": "F001", "name": "Alice", "company_name": "Acme",
		"tax_id": "12.345", "national_id": "111", "site": "Branch 02",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	empToken := login(t, r, "111", "F001")

	w = doJSON(t, r, http.MethodPost, "/api/v1/punches", empToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Entry")

	w = doJSON(t, r, http.MethodPost, "/api/v1/punches", empToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exit")

	w = doJSON(t, r, http.MethodPost, "/api/v1/punches", empToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "warning")
}

func TestLogoutRevokesToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/v1/admin/employees", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The revoked token no longer passes the auth middleware.
	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/employees", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logging out twice with the same token is rejected the same way.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A fresh login issues a new jti and works again.
	token = login(t, r, "admin", "admin123")
	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/employees", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCode(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"national_id": "admin",
		"code":        "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/employees", token, gin.H{
		"code": "F001", "name": "Alice", "company_name": "Acme", "national_id": "111",
	})
	require.Equal(t, http.StatusOK, w.Code)

	empToken := login(t, r, "111", "F001")

	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/employees", empToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestImportEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/employees/import", token, gin.H{
		"rows": []gin.H{
			{"source_file": "branch 03.xls", "company_name": "Acme", "code": "F1", "name": "A", "national_id": "n1"},
			{"source_file": "branch 03.xls", "company_name": "Acme", "code": "F2", "name": "B", "national_id": "n1"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Added   int `json:"added"`
		Ignored int `json:"ignored"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Added)
	assert.Equal(t, 1, resp.Ignored)
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/v1/admin/reports/export?company=Acme&from=2025-03-01&to=2025-03-31", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/reports/export?company=Acme&from=bad&to=2025-03-31", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
