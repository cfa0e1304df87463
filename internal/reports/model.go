package reports

const (
	ReportTypeEvents = "events"

	// Report format constants
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// EventReportRow is one line of the events export.
type EventReportRow struct {
	ID          uint
	Date        string
	Time        string
	Description string
	GameTitle   string
	Organizer   string
	Attendees   int64
}
