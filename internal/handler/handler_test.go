// internal/handler/handler_test.go
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/enttest"
	"github.com/gurkanbulca/taskboard/internal/middleware"
	"github.com/gurkanbulca/taskboard/internal/repository"
	"github.com/gurkanbulca/taskboard/internal/service"
	"github.com/gurkanbulca/taskboard/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *ent.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	db, err := sqlx.Open("sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens := auth.NewTokenManager("test-session-secret", time.Hour)
	passwords := auth.NewPasswordManager()
	statsRepo := repository.NewStatsRepository(db)

	services := Services{
		Auth:          service.NewAuthService(client, passwords, tokens),
		Tasks:         service.NewTaskService(client, repository.NewTaskRepository(client)),
		Comments:      service.NewCommentService(client),
		TimeEntries:   service.NewTimeEntryService(client),
		Projects:      service.NewProjectService(client, statsRepo),
		Users:         service.NewUserService(client, passwords),
		Notifications: service.NewNotificationService(client),
	}

	h := New(zerolog.Nop(), tokens, services, statsRepo, false)

	router := gin.New()
	h.RegisterRoutes(router)
	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email string) *http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	return sessionCookie(t, w)
}

func TestAuthFlow(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Register
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "张三",
		"email":    "zhangsan@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret123")

	// Duplicate email comes back as a field error
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "李四",
		"email":    "zhangsan@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fieldErrors")

	// Wrong password
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "zhangsan@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Login sets the session cookie
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "zhangsan@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)

	// Me with the cookie
	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "zhangsan@example.com")
	assert.NotContains(t, w.Body.String(), "passwordHash")

	// Me without the cookie
	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "未登录")
}

func TestTaskRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	owner := registerAndLogin(t, router, "owner", "owner@example.com")
	stranger := registerAndLogin(t, router, "stranger", "stranger@example.com")

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/tasks", gin.H{
		"title":    "写周报",
		"priority": "HIGH",
	}, owner)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "TODO", created.Status)

	// Status patch
	w = doJSON(t, router, http.MethodPatch, "/api/tasks/"+created.ID+"/status", gin.H{
		"status": "DONE",
	}, owner)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"DONE"`)

	// Illegal status value is rejected before the service runs
	w = doJSON(t, router, http.MethodPatch, "/api/tasks/"+created.ID+"/status", gin.H{
		"status": "ARCHIVED",
	}, owner)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Another user cannot see the task
	w = doJSON(t, router, http.MethodGet, "/api/tasks/"+created.ID, nil, stranger)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Malformed id
	w = doJSON(t, router, http.MethodGet, "/api/tasks/not-a-uuid", nil, owner)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Delete
	w = doJSON(t, router, http.MethodDelete, "/api/tasks/"+created.ID, nil, owner)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "任务删除成功")
}

func TestTaskListFilters(t *testing.T) {
	router, _ := setupTestRouter(t)

	owner := registerAndLogin(t, router, "owner", "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/projects", gin.H{"name": "迭代一"}, owner)
	require.Equal(t, http.StatusCreated, w.Code)

	var project struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = doJSON(t, router, http.MethodPost, "/api/tasks", gin.H{
		"title":     "项目内到期",
		"projectId": project.ID,
		"dueDate":   "2026-01-15T00:00:00Z",
	}, owner)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/tasks", gin.H{
		"title":   "远期任务",
		"dueDate": "2027-06-01T00:00:00Z",
	}, owner)
	require.Equal(t, http.StatusCreated, w.Code)

	var tasks []struct {
		Title string `json:"title"`
	}

	w = doJSON(t, router, http.MethodGet, "/api/tasks?projectId="+project.ID, nil, owner)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "项目内到期", tasks[0].Title)

	w = doJSON(t, router, http.MethodGet, "/api/tasks?dueBefore=2026-12-31", nil, owner)
	require.Equal(t, http.StatusOK, w.Code)
	tasks = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "项目内到期", tasks[0].Title)

	w = doJSON(t, router, http.MethodGet, "/api/tasks?projectId=not-a-uuid", nil, owner)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/tasks?dueBefore=soon", nil, owner)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "connected", body.Database)
}
