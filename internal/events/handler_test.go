package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/events"
	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/pkg/response"
)

func newRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture()
	r := gin.New()
	events.NewHandler(f.svc).Register(r)
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
	r, f := newRouter(t)
	m := f.manager(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": m.ID,
		"name":             "Gala",
		"location":         "Hall",
		"date":             "2030-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "Gala", data["name"])
	assert.Equal(t, "2030-01-01", data["date"])
	assert.EqualValues(t, m.ID, data["event_manager_id"])
}

func TestHandlerCreateUnknownManager(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": 42,
		"name":             "Gala",
		"location":         "Hall",
		"date":             "2030-01-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event manager not found", decode(t, w).Error)
}

func TestHandlerCreateBadDate(t *testing.T) {
	r, f := newRouter(t)
	m := f.manager(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": m.ID,
		"name":             "Gala",
		"location":         "Hall",
		"date":             "01/01/2030",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCreateMissingDate(t *testing.T) {
	r, f := newRouter(t)
	m := f.manager(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": m.ID,
		"name":             "Gala",
		"location":         "Hall",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date must be instantiated", decode(t, w).Error)
}

func TestHandlerUpdatePastDate(t *testing.T) {
	r, f := newRouter(t)
	m := f.manager(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": m.ID,
		"name":             "Gala",
		"location":         "Hall",
		"date":             "2030-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/planned-events/1", gin.H{
		"name":     "Gala",
		"location": "Hall",
		"date":     "2000-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date cannot be in the past", decode(t, w).Error)

	// The stored record is untouched.
	got, err := f.svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2030, time.January, 1), got.Date)
}

func TestHandlerDelete(t *testing.T) {
	r, f := newRouter(t)
	m := f.manager(t)

	w := doJSON(t, r, http.MethodPost, "/planned-events", gin.H{
		"event_manager_id": m.ID,
		"name":             "Gala",
		"location":         "Hall",
		"date":             "2030-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/planned-events/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/planned-events/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Planned event not found", decode(t, w).Error)
}
