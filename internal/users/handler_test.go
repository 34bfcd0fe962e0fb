package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/users"
	"github.com/planora/backend/pkg/response"
)

func newRouter() (*gin.Engine, *fixture) {
	gin.SetMode(gin.TestMode)
	f := newFixture()
	r := gin.New()
	users.NewHandler(f.svc).Register(r)
	return r, f
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Body {
	t.Helper()
	var b response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestHandlerCreate(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	b := decode(t, w)
	assert.True(t, b.Success)
	data := b.Data.(map[string]any)
	assert.Equal(t, "alice", data["name"])
	assert.EqualValues(t, 1, data["id"])
}

func TestHandlerCreateBlankName(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name cannot be empty", decode(t, w).Error)
}

func TestHandlerCreateDuplicate(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Name already exists", decode(t, w).Error)
}

func TestHandlerGetByID(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/general-users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/general-users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "General user not found", decode(t, w).Error)

	w = doJSON(t, r, http.MethodGet, "/general-users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerUpdate(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/general-users/1", gin.H{"name": "alicia"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "alicia", data["name"])
}

func TestHandlerDelete(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/general-users/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodDelete, "/general-users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerList(t *testing.T) {
	r, _ := newRouter()

	w := doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/general-users", gin.H{"name": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/general-users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w).Data.([]any)
	assert.Len(t, list, 2)
}
