package events

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/pkg/response"
)

// CreateRequest is the body for POST /planned-events.
type CreateRequest struct {
	EventManagerID int    `json:"event_manager_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Date           string `json:"date"` // YYYY-MM-DD
}

// UpdateRequest is the body for PUT /planned-events/:id. The manager
// reference is not part of the update contract.
type UpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// Handler handles planned event HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a planned event handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the planned event routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/planned-events")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// parseDate maps an optional YYYY-MM-DD string to a Date. An empty string
// yields the zero Date so the service reports the missing-date error.
func parseDate(s string) (models.Date, bool) {
	if s == "" {
		return models.Date{}, true
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

// Create handles POST /planned-events.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}
	e, err := h.svc.Create(c.Request.Context(), req.EventManagerID, req.Name, req.Description, req.Location, date)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.Created(c, e)
}

// GetByID handles GET /planned-events/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid planned event id")
		return
	}
	e, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, e)
}

// List handles GET /planned-events.
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, list)
}

// Update handles PUT /planned-events/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid planned event id")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Description, req.Location, date)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, e)
}

// Delete handles DELETE /planned-events/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid planned event id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.NoContent(c)
}
