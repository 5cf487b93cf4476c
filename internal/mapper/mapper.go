// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"teamboard/internal/entities"
	"teamboard/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// FromDTOUser maps a session identity. Role is taken as given; unknown roles
// are denied by the access policy.
func FromDTOUser(u dto.User) entities.User {
	return entities.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: entities.Role(strings.ToLower(u.Role))}
}

// ToDTOTask maps entities.Task to transport model.
func ToDTOTask(t entities.Task) dto.Task {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.Task{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		AssigneeID:    t.AssigneeID,
		AssigneeName:  t.AssigneeName,
		CreatedBy:     t.CreatorID,
		CreatedByName: t.CreatorName,
		DueDate:       formatDate(t.DueDate),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		Project:       t.Project,
		Tags:          tags,
	}
}

// ToDTOTasks maps a slice of tasks.
func ToDTOTasks(list []entities.Task) []dto.Task {
	res := make([]dto.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTask(t))
	}
	return res
}

// FromCreateTask builds task creation input.
func FromCreateTask(src dto.CreateTaskRequest) (entities.NewTask, error) {
	in := entities.NewTask{
		Title:       src.Title,
		Description: src.Description,
		Status:      entities.TaskStatus(src.Status),
		Priority:    entities.Priority(src.Priority),
		AssigneeID:  src.AssigneeID,
		Project:     src.Project,
		Tags:        src.Tags,
	}
	if strings.TrimSpace(src.DueDate) != "" {
		due, err := entities.ParseDate(src.DueDate)
		if err != nil {
			return entities.NewTask{}, err
		}
		in.DueDate = due
	}
	return in, nil
}

// FromUpdateTask builds a partial task update.
func FromUpdateTask(src dto.UpdateTaskRequest) (entities.TaskUpdate, error) {
	upd := entities.TaskUpdate{
		Title:       src.Title,
		Description: src.Description,
		AssigneeID:  src.AssigneeID,
		Project:     src.Project,
		Tags:        src.Tags,
	}
	if src.Status != nil {
		s := entities.TaskStatus(*src.Status)
		upd.Status = &s
	}
	if src.Priority != nil {
		p := entities.Priority(*src.Priority)
		upd.Priority = &p
	}
	if src.DueDate != nil {
		due, err := entities.ParseDate(*src.DueDate)
		if err != nil {
			return entities.TaskUpdate{}, err
		}
		upd.DueDate = &due
	}
	return upd, nil
}

// ToDTOMember maps entities.TeamMember to transport model.
func ToDTOMember(m entities.TeamMember) dto.Member {
	return dto.Member{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Role:       string(m.Role),
		Department: m.Department,
		Phone:      m.Phone,
		JoinDate:   formatDate(m.JoinDate),
		Status:     string(m.Status),
	}
}

// ToDTOMembers maps a slice of members.
func ToDTOMembers(list []entities.TeamMember) []dto.Member {
	res := make([]dto.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOMember(m))
	}
	return res
}

// FromCreateMember builds member creation input.
func FromCreateMember(src dto.CreateMemberRequest) entities.NewMember {
	return entities.NewMember{
		Name:       src.Name,
		Email:      src.Email,
		Role:       entities.Role(strings.ToLower(strings.TrimSpace(src.Role))),
		Department: src.Department,
		Phone:      src.Phone,
	}
}

// FromUpdateMember builds a partial member update.
func FromUpdateMember(src dto.UpdateMemberRequest) entities.MemberUpdate {
	upd := entities.MemberUpdate{
		Name:       src.Name,
		Email:      src.Email,
		Department: src.Department,
		Phone:      src.Phone,
	}
	if src.Role != nil {
		r := entities.Role(strings.ToLower(strings.TrimSpace(*src.Role)))
		upd.Role = &r
	}
	if src.Status != nil {
		s := entities.MemberStatus(*src.Status)
		upd.Status = &s
	}
	return upd
}

// ToDTOSearchResults maps search hits.
func ToDTOSearchResults(list []entities.SearchResult) []dto.SearchResult {
	res := make([]dto.SearchResult, 0, len(list))
	for _, r := range list {
		res = append(res, dto.SearchResult(r))
	}
	return res
}

// FromReportRequest builds a report request.
func FromReportRequest(src dto.ReportRequest) (entities.ReportRequest, error) {
	req := entities.ReportRequest{
		Type:     entities.ReportType(src.Type),
		Format:   entities.ReportFormat(strings.ToLower(src.Format)),
		MemberID: string(src.MemberID),
	}
	if src.DateRange == nil {
		return req, nil
	}
	var err error
	if req.Range.From, err = optionalDate(src.DateRange.From); err != nil {
		return entities.ReportRequest{}, fmt.Errorf("dateRange.from: %w", err)
	}
	if req.Range.To, err = optionalDate(src.DateRange.To); err != nil {
		return entities.ReportRequest{}, fmt.Errorf("dateRange.to: %w", err)
	}
	return req, nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := entities.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}
