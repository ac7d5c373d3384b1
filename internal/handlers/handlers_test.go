package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack_backend/internal/auth"
	"jobtrack_backend/internal/handlers"
	"jobtrack_backend/internal/middleware"
	"jobtrack_backend/internal/repositories/repotest"
	"jobtrack_backend/internal/routes"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	base := handlers.NewBaseHandler(validator.New())

	authService := services.NewAuthService(repotest.NewInMemoryUserRepository(), tokens)
	jobService := services.NewJobService(repotest.NewInMemoryJobRepository())

	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(base, authService),
		JobHandler:  handlers.NewJobHandler(base, jobService),
	}

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, router *gin.Engine, name, email, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginCreateStatsFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	// Register returns 201 with the display name and a usable token.
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "pw1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Ana", user["name"])
	token := body["token"].(string)
	require.NotEmpty(t, token)

	// Login with a wrong password is rejected without detail.
	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Credentials")

	// Creating a record fills the unset fields with defaults.
	w = doJSON(t, router, http.MethodPost, "/job", token, gin.H{
		"company":     "Acme",
		"position":    "Engineer",
		"jobLocation": "Remote",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	job := decodeBody(t, w)
	assert.Equal(t, "pending", job["status"])
	assert.Equal(t, "full-time", job["jobType"])
	assert.Equal(t, "Remote", job["jobLocation"])

	// The aggregate reflects exactly that one pending record.
	w = doJSON(t, router, http.MethodGet, "/job/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)
	defaults := stats["defaultStats"].(map[string]interface{})
	assert.Equal(t, float64(1), defaults["pending"])
	assert.Equal(t, float64(0), defaults["interview"])
	assert.Equal(t, float64(0), defaults["declined"])
	assert.Equal(t, float64(0), defaults["offer"])

	monthly := stats["monthlyApplications"].([]interface{})
	require.Len(t, monthly, 1)
	bucket := monthly[0].(map[string]interface{})
	assert.Equal(t, float64(1), bucket["count"])
	assert.Equal(t, time.Now().Format("Jan 2006"), bucket["date"])
}

func TestJobRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/job"},
		{http.MethodPost, "/job"},
		{http.MethodGet, "/job/stats"},
		{http.MethodGet, "/job/some-id"},
		{http.MethodPatch, "/job/some-id"},
		{http.MethodDelete, "/job/some-id"},
	} {
		w := doJSON(t, router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestJobRoutes_CrossUserAccessIsNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	anaToken := registerUser(t, router, "Ana", "ana@x.com", "pw1234")
	bobToken := registerUser(t, router, "Bob", "bob@x.com", "pw1234")

	w := doJSON(t, router, http.MethodPost, "/job", anaToken, gin.H{
		"company":  "Acme",
		"position": "Engineer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	jobID := decodeBody(t, w)["id"].(string)

	// Bob cannot read, modify or delete Ana's record; it simply does
	// not exist from his side.
	w = doJSON(t, router, http.MethodGet, "/job/"+jobID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/job/"+jobID, bobToken, gin.H{"company": "Evil Corp"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/job/"+jobID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/job", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Ana still sees it untouched.
	w = doJSON(t, router, http.MethodGet, "/job/"+jobID, anaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decodeBody(t, w)["company"])
}

func TestCreateJob_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	token := registerUser(t, router, "Ana", "ana@x.com", "pw1234")

	w := doJSON(t, router, http.MethodPost, "/job", token, gin.H{
		"company":  "Acme",
		"position": "Engineer",
		"status":   "ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	registerUser(t, router, "Ana", "dup@x.com", "pw1234")

	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Impostor",
		"email":    "dup@x.com",
		"password": "pw1234",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateAndDeleteJob(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	token := registerUser(t, router, "Ana", "ana@x.com", "pw1234")

	w := doJSON(t, router, http.MethodPost, "/job", token, gin.H{
		"company":  "Acme",
		"position": "Engineer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	jobID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/job/"+jobID, token, gin.H{"status": "offer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "offer", decodeBody(t, w)["status"])

	w = doJSON(t, router, http.MethodDelete, "/job/"+jobID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Job deleted successfully")

	w = doJSON(t, router, http.MethodDelete, "/job/"+jobID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAndUpdateUserProfile(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	token := registerUser(t, router, "Ana", "ana@x.com", "pw1234")

	w := doJSON(t, router, http.MethodGet, "/auth/getUser", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Ana", profile["name"])
	assert.Equal(t, "ana@x.com", profile["email"])

	w = doJSON(t, router, http.MethodPatch, "/auth/updateUser", token, gin.H{
		"name":  "Ana Maria",
		"email": "ana.maria@x.com",
		"customFields": []gin.H{
			{"label": "github", "value": "anamaria"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	updated := body["user"].(map[string]interface{})
	assert.Equal(t, "Ana Maria", updated["name"])
	assert.NotEmpty(t, body["token"])
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
