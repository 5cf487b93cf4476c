package memory

import (
	"time"

	"teamboard/internal/entities"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func stamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the demo roster and board.
func Seed() Dataset {
	return Dataset{
		Members: []entities.TeamMember{
			{ID: 1, Name: "Admin User", Email: "admin@company.com", Role: entities.RoleAdmin, Department: "Management", Phone: "+1 (555) 123-4567", JoinDate: date(2023, 1, 15), Status: entities.MemberActive},
			{ID: 2, Name: "Manager User", Email: "manager@company.com", Role: entities.RoleManager, Department: "Development", Phone: "+1 (555) 234-5678", JoinDate: date(2023, 2, 20), Status: entities.MemberActive},
			{ID: 3, Name: "Team Member", Email: "member@company.com", Role: entities.RoleMember, Department: "Development", Phone: "+1 (555) 345-6789", JoinDate: date(2023, 3, 10), Status: entities.MemberActive},
			{ID: 4, Name: "John Doe", Email: "john.doe@company.com", Role: entities.RoleMember, Department: "Design", Phone: "+1 (555) 456-7890", JoinDate: date(2023, 4, 5), Status: entities.MemberActive},
			{ID: 5, Name: "Sarah Smith", Email: "sarah.smith@company.com", Role: entities.RoleMember, Department: "Marketing", Phone: "+1 (555) 567-8901", JoinDate: date(2023, 5, 12), Status: entities.MemberActive},
		},
		Tasks: []entities.Task{
			{
				ID: 1, Title: "Update user interface",
				Description: "Redesign the main dashboard to improve user experience",
				Status:      entities.TaskInProgress, Priority: entities.PriorityHigh,
				AssigneeID: 3, AssigneeName: "Team Member", CreatorID: 2, CreatorName: "Manager User",
				DueDate: date(2024, 1, 15), CreatedAt: stamp("2024-01-01T10:00:00Z"), UpdatedAt: stamp("2024-01-05T14:30:00Z"),
				Project: "Website Redesign", Tags: []string{"frontend", "ui", "design"},
			},
			{
				ID: 2, Title: "Fix login bug",
				Description: "Users are unable to login with special characters in password",
				Status:      entities.TaskTodo, Priority: entities.PriorityUrgent,
				AssigneeID: 4, AssigneeName: "John Doe", CreatorID: 1, CreatorName: "Admin User",
				DueDate: date(2024, 1, 10), CreatedAt: stamp("2024-01-02T09:15:00Z"), UpdatedAt: stamp("2024-01-02T09:15:00Z"),
				Project: "Bug Fixes", Tags: []string{"backend", "authentication", "bug"},
			},
			{
				ID: 3, Title: "Weekly performance report",
				Description: "Compile and analyze team performance metrics for the week",
				Status:      entities.TaskReview, Priority: entities.PriorityMedium,
				AssigneeID: 5, AssigneeName: "Sarah Smith", CreatorID: 2, CreatorName: "Manager User",
				DueDate: date(2024, 1, 12), CreatedAt: stamp("2024-01-03T11:00:00Z"), UpdatedAt: stamp("2024-01-08T16:45:00Z"),
				Project: "Analytics", Tags: []string{"reporting", "analytics"},
			},
			{
				ID: 4, Title: "Setup CI/CD pipeline",
				Description: "Configure automated testing and deployment pipeline",
				Status:      entities.TaskCompleted, Priority: entities.PriorityHigh,
				AssigneeID: 3, AssigneeName: "Team Member", CreatorID: 1, CreatorName: "Admin User",
				DueDate: date(2024, 1, 8), CreatedAt: stamp("2023-12-28T14:20:00Z"), UpdatedAt: stamp("2024-01-07T10:30:00Z"),
				Project: "DevOps", Tags: []string{"devops", "automation", "testing"},
			},
		},
	}
}
