package gametype

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(r *Repository) *Handler {
	return &Handler{Repo: r}
}

// List godoc
// @Summary List game types
// @Tags GameTypes
// @Produce json
// @Success 200 {array} GameType
// @Router /api/v1/gametypes [get]
func (h *Handler) List(c *gin.Context) {
	types, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list game types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

// Get godoc
// @Summary Get a game type
// @Tags GameTypes
// @Produce json
// @Param id path int true "game type id"
// @Success 200 {object} GameType
// @Failure 404 {object} map[string]string
// @Router /api/v1/gametypes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game type ID"})
		return
	}

	gt, err := h.Repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrGameTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game type"})
		return
	}
	c.JSON(http.StatusOK, gt)
}
