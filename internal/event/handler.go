package event

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// callerFromContext builds the explicit caller identity for the service layer.
func callerFromContext(c *gin.Context) (Caller, bool) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		return Caller{}, false
	}
	return Caller{UserID: accessContext.UserID, IP: middleware.GetIPFromContext(c)}, true
}

func parseEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, gamer.ErrGamerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param game query int false "only events for this game"
// @Success 200 {array} View
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	var gameID *uint
	if raw := c.Query("game"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
			return
		}
		v := uint(id)
		gameID = &v
	}

	events, err := h.Service.ListEvents(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToViews(events))
}

// GetEventByID godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "event id"
// @Success 200 {object} View
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id} [get]
func (h *Handler) GetEventByID(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	e, err := h.Service.GetEventByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToView(*e))
}

// CreateEvent godoc
// @Summary Create an event organized by the caller
// @Tags Events
// @Accept json
// @Produce json
// @Param body body EventRequest true "event"
// @Success 201 {object} View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ToView(*e))
}

// UpdateEvent godoc
// @Summary Replace an event's details
// @Tags Events
// @Accept json
// @Param id path int true "event id"
// @Param body body EventRequest true "event"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := h.Service.UpdateEvent(c.Request.Context(), caller, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Param id path int true "event id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Signup godoc
// @Summary Sign the caller up for an event
// @Tags Events
// @Produce json
// @Param id path int true "event id"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id}/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	msg, err := h.Service.Signup(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Leave godoc
// @Summary Remove the caller from an event
// @Tags Events
// @Param id path int true "event id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id}/leave [delete]
func (h *Handler) Leave(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	// 204 carries no body; the confirmation is kept in the audit log
	if _, err := h.Service.Leave(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAttendees godoc
// @Summary List the gamers attending an event
// @Tags Events
// @Produce json
// @Param id path int true "event id"
// @Success 200 {array} gamer.View
// @Failure 404 {object} map[string]string
// @Router /api/v1/events/{id}/attendees [get]
func (h *Handler) ListAttendees(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	gamers, err := h.Service.ListAttendees(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gamer.View, 0, len(gamers))
	for _, g := range gamers {
		out = append(out, gamer.ToView(g))
	}
	c.JSON(http.StatusOK, out)
}
