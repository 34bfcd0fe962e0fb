package managers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/pkg/response"
)

// NameRequest is the body for POST and PUT on /event-managers.
type NameRequest struct {
	Name string `json:"name"`
}

// Handler handles event manager HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates an event manager handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the event manager routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/event-managers")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /event-managers.
func (h *Handler) Create(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	m, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.Created(c, m)
}

// GetByID handles GET /event-managers/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event manager id")
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, m)
}

// List handles GET /event-managers.
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, list)
}

// Update handles PUT /event-managers/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event manager id")
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, m)
}

// Delete handles DELETE /event-managers/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event manager id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.NoContent(c)
}
