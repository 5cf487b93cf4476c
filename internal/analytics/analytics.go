// Package analytics derives dashboard figures from tasks and members.
package analytics

import (
	"math"
	"time"

	"teamboard/internal/entities"
)

var statusLabels = map[entities.TaskStatus]string{
	entities.TaskTodo:       "To Do",
	entities.TaskInProgress: "In Progress",
	entities.TaskReview:     "Review",
	entities.TaskCompleted:  "Completed",
}

var priorityLabels = map[entities.Priority]string{
	entities.PriorityLow:    "Low",
	entities.PriorityMedium: "Medium",
	entities.PriorityHigh:   "High",
	entities.PriorityUrgent: "Urgent",
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// Overview computes the headline counters at now.
func Overview(tasks []entities.Task, members []entities.TeamMember, now time.Time) entities.Overview {
	var res entities.Overview
	var spent time.Duration

	res.TotalTasks = len(tasks)
	for _, t := range tasks {
		switch {
		case t.Status == entities.TaskCompleted:
			res.CompletedTasks++
			spent += t.UpdatedAt.Sub(t.CreatedAt)
		case t.Overdue(now):
			res.OverdueTasks++
		}
	}
	for _, m := range members {
		if m.Status == entities.MemberActive {
			res.ActiveMembers++
		}
	}
	res.CompletionRate = percent(res.CompletedTasks, res.TotalTasks)
	if res.CompletedTasks > 0 {
		days := spent.Hours() / 24 / float64(res.CompletedTasks)
		res.AvgCompletionDays = math.Round(days*10) / 10
	}
	return res
}

// Breakdown counts tasks per status and per priority in board order.
func Breakdown(tasks []entities.Task) entities.TaskBreakdown {
	byStatus := make(map[entities.TaskStatus]int, len(entities.TaskStatuses))
	byPriority := make(map[entities.Priority]int, len(entities.Priorities))
	for _, t := range tasks {
		byStatus[t.Status]++
		byPriority[t.Priority]++
	}

	res := entities.TaskBreakdown{
		StatusDistribution:   make([]entities.Bucket, 0, len(entities.TaskStatuses)),
		PriorityDistribution: make([]entities.Bucket, 0, len(entities.Priorities)),
	}
	for _, s := range entities.TaskStatuses {
		res.StatusDistribution = append(res.StatusDistribution, entities.Bucket{Name: statusLabels[s], Value: byStatus[s]})
	}
	for _, p := range entities.Priorities {
		res.PriorityDistribution = append(res.PriorityDistribution, entities.Bucket{Name: priorityLabels[p], Value: byPriority[p]})
	}
	return res
}

// TeamPerformance returns one row per member, in roster order.
// Efficiency is the share of assigned tasks already completed.
func TeamPerformance(tasks []entities.Task, members []entities.TeamMember) []entities.MemberPerformance {
	type tally struct{ total, completed, inProgress int }
	byAssignee := make(map[int64]*tally)
	for _, t := range tasks {
		c, ok := byAssignee[t.AssigneeID]
		if !ok {
			c = &tally{}
			byAssignee[t.AssigneeID] = c
		}
		c.total++
		switch t.Status {
		case entities.TaskCompleted:
			c.completed++
		case entities.TaskInProgress:
			c.inProgress++
		}
	}

	res := make([]entities.MemberPerformance, 0, len(members))
	for _, m := range members {
		row := entities.MemberPerformance{
			MemberID:   m.ID,
			Name:       m.Name,
			Role:       m.Role,
			Department: m.Department,
		}
		if c, ok := byAssignee[m.ID]; ok {
			row.TasksTotal = c.total
			row.TasksCompleted = c.completed
			row.TasksInProgress = c.inProgress
			row.Efficiency = percent(c.completed, c.total)
		}
		res = append(res, row)
	}
	return res
}

// Projects groups tasks by project label in order of first appearance.
// Tasks without a project are skipped.
func Projects(tasks []entities.Task, now time.Time) []entities.ProjectProgress {
	index := make(map[string]int)
	assignees := make(map[string]map[int64]struct{})
	res := make([]entities.ProjectProgress, 0)

	for _, t := range tasks {
		if t.Project == "" {
			continue
		}
		i, ok := index[t.Project]
		if !ok {
			i = len(res)
			index[t.Project] = i
			assignees[t.Project] = make(map[int64]struct{})
			res = append(res, entities.ProjectProgress{Name: t.Project, Status: entities.ProjectOnTrack})
		}
		p := &res[i]
		p.TotalTasks++
		if t.Status == entities.TaskCompleted {
			p.CompletedTasks++
		}
		if t.Overdue(now) {
			p.Status = entities.ProjectDelayed
		}
		if !t.DueDate.IsZero() && (p.DueDate == nil || t.DueDate.After(*p.DueDate)) {
			due := t.DueDate
			p.DueDate = &due
		}
		assignees[t.Project][t.AssigneeID] = struct{}{}
	}

	for i := range res {
		res[i].Progress = percent(res[i].CompletedTasks, res[i].TotalTasks)
		res[i].TeamMembers = len(assignees[res[i].Name])
	}
	return res
}
