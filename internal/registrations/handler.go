package registrations

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/pkg/queue"
	"github.com/planora/backend/pkg/response"
)

// CreateRequest is the body for POST /registrations.
type CreateRequest struct {
	PlannedEventID int `json:"planned_event_id"`
	ParticipantID  int `json:"participant_id"`
}

// Handler handles registration HTTP endpoints. A nil queue disables
// confirmation jobs; creation itself is unaffected.
type Handler struct {
	svc    *Service
	jobs   *queue.Queue
	logger *zap.Logger
}

// NewHandler creates a registration handler.
func NewHandler(svc *Service, jobs *queue.Queue, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, jobs: jobs, logger: logger}
}

// Register mounts the registration routes on r. Registrations are
// immutable, so there is no update route.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/registrations")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /registrations.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	r, err := h.svc.Create(c.Request.Context(), req.PlannedEventID, req.ParticipantID)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	if h.jobs != nil {
		payload := queue.ConfirmationPayload{
			RegistrationID: r.ID,
			PlannedEventID: r.PlannedEventID,
			ParticipantID:  r.ParticipantID,
		}
		if err := h.jobs.EnqueueConfirmation(c.Request.Context(), payload); err != nil {
			h.logger.Warn("enqueue confirmation", zap.Int("registration_id", r.ID), zap.Error(err))
		}
	}
	response.Created(c, r)
}

// GetByID handles GET /registrations/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid registration id")
		return
	}
	r, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, r)
}

// List handles GET /registrations.
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.OK(c, list)
}

// Delete handles DELETE /registrations/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid registration id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, apperr.HTTPStatus(err), err.Error())
		return
	}
	response.NoContent(c)
}
