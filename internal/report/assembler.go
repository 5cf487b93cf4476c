// Package report shapes report payloads from tasks and members and renders
// them into downloadable documents.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamboard/internal/analytics"
	"teamboard/internal/entities"
	"teamboard/internal/filter"
)

// Dataset is the snapshot a report is assembled from.
type Dataset struct {
	Tasks   []entities.Task
	Members []entities.TeamMember
	Now     time.Time
}

// TaskRow is one line of the task summary report.
type TaskRow struct {
	ID       int64
	Title    string
	Status   entities.TaskStatus
	Priority entities.Priority
	Assignee string
	Project  string
}

// Payload is the typed content of a report. Only the section matching Type is set.
type Payload struct {
	Type        entities.ReportType
	GeneratedAt time.Time
	Range       entities.DateRange
	Performance []entities.MemberPerformance
	Tasks       []TaskRow
	Projects    []entities.ProjectProgress
}

// Assembler selects and shapes report data. It never mutates its input.
type Assembler struct{}

// NewAssembler returns a report assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the payload for req from ds.
func (a *Assembler) Assemble(req entities.ReportRequest, ds Dataset) (Payload, error) {
	p := Payload{Type: req.Type, GeneratedAt: ds.Now, Range: req.Range}
	tasks := filter.Tasks(ds.Tasks, entities.TaskFilter{DueFrom: req.Range.From, DueTo: req.Range.To}, ds.Now)

	switch req.Type {
	case entities.ReportTeamPerformance:
		p.Performance = analytics.TeamPerformance(tasks, ds.Members)
	case entities.ReportIndividualPerformance:
		rows, err := selectMember(analytics.TeamPerformance(tasks, ds.Members), req.MemberID)
		if err != nil {
			return Payload{}, err
		}
		p.Performance = rows
	case entities.ReportTaskSummary:
		p.Tasks = make([]TaskRow, 0, len(tasks))
		for _, t := range tasks {
			p.Tasks = append(p.Tasks, TaskRow{
				ID:       t.ID,
				Title:    t.Title,
				Status:   t.Status,
				Priority: t.Priority,
				Assignee: t.AssigneeName,
				Project:  t.Project,
			})
		}
	case entities.ReportProjectStatus:
		p.Projects = analytics.Projects(tasks, ds.Now)
	default:
		return Payload{}, fmt.Errorf("%w: %q", entities.ErrUnsupportedReport, req.Type)
	}
	return p, nil
}

func selectMember(rows []entities.MemberPerformance, selector string) ([]entities.MemberPerformance, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == entities.AllMembers {
		return rows, nil
	}
	id, err := strconv.ParseInt(selector, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: member id %q", entities.ErrInvalidArgument, selector)
	}
	for _, r := range rows {
		if r.MemberID == id {
			return []entities.MemberPerformance{r}, nil
		}
	}
	return nil, entities.ErrMemberNotFound
}

// Table is the flat, renderer-neutral view of a payload.
type Table struct {
	Heading string
	Columns []string
	Rows    [][]any
}

// Title is the human label of the report type, e.g. "TEAM PERFORMANCE".
func (p Payload) Title() string {
	return strings.ToUpper(strings.ReplaceAll(string(p.Type), "-", " "))
}

// Table flattens the payload section into rows.
func (p Payload) Table() Table {
	switch p.Type {
	case entities.ReportTeamPerformance, entities.ReportIndividualPerformance:
		heading := "Team Performance Overview"
		if p.Type == entities.ReportIndividualPerformance {
			heading = "Individual Performance"
		}
		t := Table{
			Heading: heading,
			Columns: []string{"Name", "Role", "Tasks Completed", "Tasks In Progress", "Efficiency %"},
		}
		for _, r := range p.Performance {
			t.Rows = append(t.Rows, []any{r.Name, string(r.Role), r.TasksCompleted, r.TasksInProgress, r.Efficiency})
		}
		return t
	case entities.ReportTaskSummary:
		t := Table{
			Heading: "Task Summary",
			Columns: []string{"Title", "Status", "Priority", "Assignee", "Project"},
		}
		for _, r := range p.Tasks {
			t.Rows = append(t.Rows, []any{r.Title, string(r.Status), string(r.Priority), r.Assignee, r.Project})
		}
		return t
	case entities.ReportProjectStatus:
		t := Table{
			Heading: "Project Status Overview",
			Columns: []string{"Project Name", "Progress %", "Tasks Completed", "Total Tasks"},
		}
		for _, r := range p.Projects {
			t.Rows = append(t.Rows, []any{r.Name, r.Progress, r.CompletedTasks, r.TotalTasks})
		}
		return t
	}
	return Table{}
}

// RangeLabel renders the date range for document headers, or "" when open on both ends.
func (p Payload) RangeLabel() string {
	from, to := "...", "..."
	if p.Range.From != nil {
		from = p.Range.From.Format(entities.DateLayout)
	}
	if p.Range.To != nil {
		to = p.Range.To.Format(entities.DateLayout)
	}
	if p.Range.From == nil && p.Range.To == nil {
		return ""
	}
	return from + " - " + to
}
