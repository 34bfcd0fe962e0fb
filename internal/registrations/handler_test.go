package registrations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/registrations"
	"github.com/planora/backend/pkg/response"
)

func testCtx() context.Context { return context.Background() }

func newRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture()
	r := gin.New()
	// No queue wired: confirmation jobs are optional.
	registrations.NewHandler(f.svc, nil, nil).Register(r)
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

	u, err := f.users.Insert(testCtx(), models.GeneralUser{Name: "alice"})
	require.NoError(t, err)
	e := f.event(t, 1)

	w := doJSON(t, r, http.MethodPost, "/registrations", gin.H{
		"planned_event_id": e.ID,
		"participant_id":   u.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w).Data.(map[string]any)
	assert.EqualValues(t, e.ID, data["planned_event_id"])
	assert.EqualValues(t, u.ID, data["participant_id"])
}

func TestHandlerCreateUnknownEvent(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/registrations", gin.H{
		"planned_event_id": 42,
		"participant_id":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Planned event not found", decode(t, w).Error)
}

func TestHandlerCreateManagerParticipant(t *testing.T) {
	r, f := newRouter(t)

	m, err := f.managers.Insert(testCtx(), models.EventManager{Name: "M"})
	require.NoError(t, err)
	e := f.event(t, m.ID)

	w := doJSON(t, r, http.MethodPost, "/registrations", gin.H{
		"planned_event_id": e.ID,
		"participant_id":   m.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandlerDelete(t *testing.T) {
	r, f := newRouter(t)

	u, err := f.users.Insert(testCtx(), models.GeneralUser{Name: "alice"})
	require.NoError(t, err)
	e := f.event(t, 1)

	w := doJSON(t, r, http.MethodPost, "/registrations", gin.H{
		"planned_event_id": e.ID,
		"participant_id":   u.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/registrations/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/registrations/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Registration not found", decode(t, w).Error)
}

func TestHandlerList(t *testing.T) {
	r, f := newRouter(t)

	u, err := f.users.Insert(testCtx(), models.GeneralUser{Name: "alice"})
	require.NoError(t, err)
	e := f.event(t, 1)

	w := doJSON(t, r, http.MethodPost, "/registrations", gin.H{
		"planned_event_id": e.ID,
		"participant_id":   u.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/registrations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w).Data.([]any), 1)
}
