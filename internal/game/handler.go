package game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
	"github.com/levelup/levelup-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrGameNotFound), errors.Is(err, gametype.ErrGameTypeNotFound), errors.Is(err, gamer.ErrGamerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ===========================
// 🎯 Create Game - POST /games
func (h *Handler) Create(c *gin.Context) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	g, err := h.Service.Create(c.Request.Context(), accessContext.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ToResponse(*g))
}

// ===========================
// 🔍 Get Game - GET /games/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	g, err := h.Service.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToResponse(*g))
}

// ===========================
// 📄 List Games - GET /games?type=
func (h *Handler) List(c *gin.Context) {
	var typeID *uint
	if raw := c.Query("type"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game type ID"})
			return
		}
		v := uint(id)
		typeID = &v
	}

	games, err := h.Service.List(c.Request.Context(), typeID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]Response, 0, len(games))
	for _, g := range games {
		out = append(out, ToResponse(g))
	}
	c.JSON(http.StatusOK, out)
}
