package entities

import "time"

// ReportType names a report the assembler knows how to build.
type ReportType string

const (
	ReportTeamPerformance       ReportType = "team-performance"
	ReportTaskSummary           ReportType = "task-summary"
	ReportIndividualPerformance ReportType = "individual-performance"
	ReportProjectStatus         ReportType = "project-status"
)

// ReportFormat names a document renderer.
type ReportFormat string

const (
	FormatPDF   ReportFormat = "pdf"
	FormatExcel ReportFormat = "excel"
)

// AllMembers selects every member for individual reports.
const AllMembers = "all"

// DateRange is an inclusive, optionally open-ended date interval.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ReportRequest describes a report to assemble and render.
type ReportRequest struct {
	Type     ReportType
	Format   ReportFormat
	Range    DateRange
	MemberID string
}

// Document is a rendered report ready for download.
type Document struct {
	Body        []byte
	Filename    string
	ContentType string
}
