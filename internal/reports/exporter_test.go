package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/internal/auth"
	"github.com/levelup/levelup-backend/internal/event"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var sampleRows = []EventReportRow{
	{ID: 1, Date: "2024-01-01", Time: "18:00:00", Description: "Catan night", GameTitle: "Catan", Organizer: "Ada", Attendees: 3},
	{ID: 2, Date: "2024-02-14", Time: "19:30:00", Description: "Azul, casual", GameTitle: "Azul", Organizer: "Grace", Attendees: 0},
}

func fixedExporter() *reportExporter {
	return &reportExporter{now: func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }}
}

func TestExportEventsCSV(t *testing.T) {
	data, name, mime, err := fixedExporter().ExportEvents(FormatCSV, sampleRows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if name != "events_report_20240301_120000.csv" || mime != "text/csv" {
		t.Fatalf("unexpected name/mime %q %q", name, mime)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(eventHeaders, ",") {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[2][3] != "Azul, casual" || records[1][6] != "3" {
		t.Fatalf("unexpected rows %v", records[1:])
	}
}

func TestExportEventsExcel(t *testing.T) {
	data, name, _, err := fixedExporter().ExportEvents(FormatExcel, sampleRows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected name %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Events")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "ID" || rows[1][4] != "Catan" {
		t.Fatalf("unexpected sheet contents %v", rows)
	}
}

func TestExportEventsPDF(t *testing.T) {
	data, _, mime, err := fixedExporter().ExportEvents(FormatPDF, sampleRows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if mime != "application/pdf" || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a pdf: mime=%q", mime)
	}
}

func TestExportEventsUnsupportedFormat(t *testing.T) {
	if _, _, _, err := fixedExporter().ExportEvents("docx", sampleRows); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

type stubSource struct {
	events  []event.Event
	counts  map[uint]int64
	err     error
	gotGame *uint
}

func (s *stubSource) ListEvents(_ context.Context, gameID *uint) ([]event.Event, error) {
	s.gotGame = gameID
	return s.events, s.err
}

func (s *stubSource) AttendeeCounts(_ context.Context, _ []uint) (map[uint]int64, error) {
	return s.counts, nil
}

func newStubSource() *stubSource {
	return &stubSource{
		events: []event.Event{{
			ID: 7, Description: "Catan night", Date: "2024-01-01", Time: "18:00:00",
			Game:      game.Game{ID: 1, Title: "Catan"},
			Organizer: gamer.Gamer{ID: 3, User: auth.User{FullName: "Ada"}},
		}},
		counts: map[uint]int64{7: 2},
	}
}

func TestBuildEventRows(t *testing.T) {
	rows, err := BuildEventRows(context.Background(), newStubSource(), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := EventReportRow{ID: 7, Date: "2024-01-01", Time: "18:00:00", Description: "Catan night", GameTitle: "Catan", Organizer: "Ada", Attendees: 2}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func serveReport(h *Handler, query string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/reports/events", h.GetEventsReport)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/events"+query, nil))
	return w
}

func TestGetEventsReportDownload(t *testing.T) {
	src := newStubSource()
	w := serveReport(NewHandler(src, NewReportExporter()), "?format=csv&game=1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment; filename=events_report_") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	if src.gotGame == nil || *src.gotGame != 1 {
		t.Fatalf("game filter not forwarded: %v", src.gotGame)
	}
	if !strings.Contains(w.Body.String(), "Catan night") {
		t.Fatalf("body missing event: %s", w.Body.String())
	}
}

func TestGetEventsReportBadInput(t *testing.T) {
	h := NewHandler(newStubSource(), NewReportExporter())
	for _, q := range []string{"?format=docx", "?game=abc", "?game=0"} {
		if w := serveReport(h, q); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestGetEventsReportSourceError(t *testing.T) {
	src := newStubSource()
	src.err = errors.New("db down")
	if w := serveReport(NewHandler(src, NewReportExporter()), ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
