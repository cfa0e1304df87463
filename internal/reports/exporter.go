package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders report rows in a downloadable format.
// Export returns the file bytes, file name and MIME type.
type ReportExporter interface {
	ExportEvents(format string, rows []EventReportRow) ([]byte, string, string, error)
}

type reportExporter struct {
	now func() time.Time
}

func NewReportExporter() ReportExporter {
	return &reportExporter{now: time.Now}
}

var eventHeaders = []string{"ID", "Date", "Time", "Description", "Game", "Organizer", "Attendees"}

func eventRecord(r EventReportRow) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Date,
		r.Time,
		r.Description,
		r.GameTitle,
		r.Organizer,
		strconv.FormatInt(r.Attendees, 10),
	}
}

func (e *reportExporter) ExportEvents(format string, rows []EventReportRow) ([]byte, string, string, error) {
	base := fmt.Sprintf("events_report_%s", e.now().Format("20060102_150405"))

	switch format {
	case FormatCSV:
		data, err := e.exportEventsCSV(rows)
		return data, base + ".csv", "text/csv", err
	case FormatExcel:
		data, err := e.exportEventsExcel(rows)
		return data, base + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case FormatPDF:
		data, err := e.exportEventsPDF(rows)
		return data, base + ".pdf", "application/pdf", err
	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *reportExporter) exportEventsCSV(rows []EventReportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(eventHeaders); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(eventRecord(r)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsExcel(rows []EventReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Events"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for i, h := range eventHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Time)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Description)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.GameTitle)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Organizer)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Attendees)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsPDF(rows []EventReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Events Report")
	pdf.Ln(10)

	widths := []float64{15, 25, 20, 90, 50, 45, 25}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range eventHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		for i, v := range eventRecord(r) {
			align := "L"
			if i == 0 || i == 6 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, truncate(v, widths[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate keeps cell text roughly inside a column of the given width in mm.
func truncate(s string, width float64) string {
	limit := int(width / 2)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "~"
}
