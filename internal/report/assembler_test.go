package report

import (
	"testing"
	"time"

	"teamboard/internal/entities"

	"github.com/stretchr/testify/require"
)

func dataset() Dataset {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return Dataset{
		Now: day(20),
		Members: []entities.TeamMember{
			{ID: 1, Name: "Admin User", Role: entities.RoleAdmin},
			{ID: 3, Name: "Team Member", Role: entities.RoleMember},
			{ID: 4, Name: "John Doe", Role: entities.RoleMember},
		},
		Tasks: []entities.Task{
			{ID: 1, Title: "UI", Status: entities.TaskInProgress, Priority: entities.PriorityHigh, AssigneeID: 3, AssigneeName: "Team Member", Project: "Web", DueDate: day(15)},
			{ID: 2, Title: "Login", Status: entities.TaskTodo, Priority: entities.PriorityUrgent, AssigneeID: 4, AssigneeName: "John Doe", Project: "Bugs", DueDate: day(10)},
			{ID: 4, Title: "CI", Status: entities.TaskCompleted, Priority: entities.PriorityHigh, AssigneeID: 3, AssigneeName: "Team Member", Project: "Web", DueDate: day(8)},
		},
	}
}

func TestAssembleTeamPerformance(t *testing.T) {
	p, err := NewAssembler().Assemble(entities.ReportRequest{Type: entities.ReportTeamPerformance}, dataset())
	require.NoError(t, err)
	require.Len(t, p.Performance, 3)
	require.Equal(t, 1, p.Performance[1].TasksCompleted)
	require.Equal(t, 1, p.Performance[1].TasksInProgress)
	require.Equal(t, 50, p.Performance[1].Efficiency)
	require.Nil(t, p.Tasks)
}

func TestAssembleIndividualPerformance(t *testing.T) {
	a := NewAssembler()

	p, err := a.Assemble(entities.ReportRequest{Type: entities.ReportIndividualPerformance, MemberID: "4"}, dataset())
	require.NoError(t, err)
	require.Len(t, p.Performance, 1)
	require.Equal(t, "John Doe", p.Performance[0].Name)

	p, err = a.Assemble(entities.ReportRequest{Type: entities.ReportIndividualPerformance, MemberID: "all"}, dataset())
	require.NoError(t, err)
	require.Len(t, p.Performance, 3)

	_, err = a.Assemble(entities.ReportRequest{Type: entities.ReportIndividualPerformance, MemberID: "99"}, dataset())
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	_, err = a.Assemble(entities.ReportRequest{Type: entities.ReportIndividualPerformance, MemberID: "x"}, dataset())
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestAssembleTaskSummaryWithinRange(t *testing.T) {
	from := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	ds := dataset()

	p, err := NewAssembler().Assemble(entities.ReportRequest{
		Type:  entities.ReportTaskSummary,
		Range: entities.DateRange{From: &from, To: &to},
	}, ds)
	require.NoError(t, err)
	require.Len(t, p.Tasks, 2)
	require.Equal(t, "UI", p.Tasks[0].Title)
	require.Equal(t, "Login", p.Tasks[1].Title)
	require.Len(t, ds.Tasks, 3)
	require.Equal(t, "2024-01-09 - 2024-01-15", p.RangeLabel())
}

func TestAssembleProjectStatus(t *testing.T) {
	p, err := NewAssembler().Assemble(entities.ReportRequest{Type: entities.ReportProjectStatus}, dataset())
	require.NoError(t, err)
	require.Len(t, p.Projects, 2)
	require.Equal(t, "Web", p.Projects[0].Name)
	require.Equal(t, 50, p.Projects[0].Progress)

	table := p.Table()
	require.Equal(t, "Project Status Overview", table.Heading)
	require.Equal(t, []any{"Web", 50, 1, 2}, table.Rows[0])
}

func TestAssembleUnsupportedType(t *testing.T) {
	_, err := NewAssembler().Assemble(entities.ReportRequest{Type: "burndown"}, dataset())
	require.ErrorIs(t, err, entities.ErrUnsupportedReport)
}

func TestPayloadTitle(t *testing.T) {
	require.Equal(t, "INDIVIDUAL PERFORMANCE", Payload{Type: entities.ReportIndividualPerformance}.Title())
	require.Empty(t, Payload{}.RangeLabel())
}
