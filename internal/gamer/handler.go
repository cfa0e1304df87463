package gamer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Me godoc
// @Summary Current gamer profile
// @Tags Gamers
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/gamers/me [get]
func (h *Handler) Me(c *gin.Context) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		return
	}

	g, err := h.Service.Resolve(c.Request.Context(), accessContext.UserID)
	if err != nil {
		if errors.Is(err, ErrGamerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gamer"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:       g.ID,
		UserID:   g.UserID,
		FullName: g.FullName(),
		Email:    g.User.Email,
		Bio:      g.Bio,
	})
}
