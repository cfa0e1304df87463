package reports

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/internal/event"
)

// EventSource supplies the events and attendee counts for the export.
type EventSource interface {
	ListEvents(ctx context.Context, gameID *uint) ([]event.Event, error)
	AttendeeCounts(ctx context.Context, eventIDs []uint) (map[uint]int64, error)
}

type Handler struct {
	Events   EventSource
	Exporter ReportExporter
}

func NewHandler(events EventSource, exporter ReportExporter) *Handler {
	return &Handler{Events: events, Exporter: exporter}
}

// BuildEventRows joins events with their attendee counts.
func BuildEventRows(ctx context.Context, src EventSource, gameID *uint) ([]EventReportRow, error) {
	events, err := src.ListEvents(ctx, gameID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := src.AttendeeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]EventReportRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, EventReportRow{
			ID:          e.ID,
			Date:        e.Date,
			Time:        e.Time,
			Description: e.Description,
			GameTitle:   e.Game.Title,
			Organizer:   e.Organizer.FullName(),
			Attendees:   counts[e.ID],
		})
	}
	return rows, nil
}

// GetEventsReport godoc
// @Summary Download the events report
// @Tags Reports
// @Produce octet-stream
// @Param format query string false "csv, excel or pdf (default csv)"
// @Param game query int false "only events for this game"
// @Success 200 {file} file
// @Router /api/v1/reports/events [get]
func (h *Handler) GetEventsReport(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, excel or pdf"})
		return
	}

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

	rows, err := BuildEventRows(c.Request.Context(), h.Events, gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	data, fname, mime, err := h.Exporter.ExportEvents(format, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, data)
}
