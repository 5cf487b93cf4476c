// Package access centralises every permission decision for tasks and members.
package access

import (
	"fmt"

	"teamboard/internal/entities"
)

// atLeast reports whether the actor ranks at or above required.
// Unknown roles are denied.
func atLeast(actor entities.User, required entities.Role) bool {
	ok, err := actor.Role.MeetsOrExceeds(required)
	return err == nil && ok
}

func isStaff(actor entities.User) bool {
	return atLeast(actor, entities.RoleManager)
}

func isAdmin(actor entities.User) bool {
	return atLeast(actor, entities.RoleAdmin)
}

func ownsTask(actor entities.User, task entities.Task) bool {
	return actor.ID == task.CreatorID || actor.ID == task.AssigneeID
}

// CanViewTask: staff see everything, members only tasks they created or are assigned to.
func CanViewTask(actor entities.User, task entities.Task) bool {
	if isStaff(actor) {
		return true
	}
	return actor.Role.Valid() && ownsTask(actor, task)
}

// VisibleTasks returns the tasks the actor may see, preserving order.
func VisibleTasks(actor entities.User, tasks []entities.Task) []entities.Task {
	if isStaff(actor) {
		return tasks
	}
	res := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if CanViewTask(actor, t) {
			res = append(res, t)
		}
	}
	return res
}

// CanEditTask allows staff, the creator and the assignee.
func CanEditTask(actor entities.User, task entities.Task) bool {
	if isStaff(actor) {
		return true
	}
	return actor.Role.Valid() && ownsTask(actor, task)
}

// CanDeleteTask allows staff and the creator. Being the assignee is not enough.
func CanDeleteTask(actor entities.User, task entities.Task) bool {
	if isStaff(actor) {
		return true
	}
	return actor.Role.Valid() && actor.ID == task.CreatorID
}

// CanEditMember allows admins, and managers editing plain members.
func CanEditMember(actor entities.User, target entities.TeamMember) bool {
	if isAdmin(actor) {
		return true
	}
	return actor.Role == entities.RoleManager && target.Role == entities.RoleMember
}

// CanDeleteMember allows admins to delete anyone but another admin.
func CanDeleteMember(actor entities.User, target entities.TeamMember) bool {
	return isAdmin(actor) && target.Role != entities.RoleAdmin
}

// CanAssignRole guards role elevation: only admins hand out the admin role.
func CanAssignRole(actor entities.User, role entities.Role) bool {
	if role == entities.RoleAdmin {
		return isAdmin(actor)
	}
	return true
}

// CanCreateMember requires staff, and an admin when the new member is an admin.
func CanCreateMember(actor entities.User, role entities.Role) bool {
	return isStaff(actor) && CanAssignRole(actor, role)
}

// CanSearchMembers limits member listings and search hits to staff.
func CanSearchMembers(actor entities.User) bool {
	return isStaff(actor)
}

// CanViewAnalytics limits analytics and reports to staff.
func CanViewAnalytics(actor entities.User) bool {
	return isStaff(actor)
}

// Deny builds a forbidden error with a caller-facing reason.
func Deny(reason string) error {
	return fmt.Errorf("%w: %s", entities.ErrForbidden, reason)
}
