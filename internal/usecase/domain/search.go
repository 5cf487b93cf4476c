package domain

import (
	"context"
	"fmt"
	"strings"

	"teamboard/internal/access"
	"teamboard/internal/analytics"
	"teamboard/internal/entities"
	"teamboard/internal/filter"
)

const searchLimit = 10

// Search looks q up in visible tasks, in the roster (staff only) and in
// project labels. At most searchLimit hits are returned.
func (u *Usecase) Search(ctx context.Context, actor entities.User, q string) ([]entities.SearchResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []entities.SearchResult{}, nil
	}

	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	visible := access.VisibleTasks(actor, tasks)

	res := make([]entities.SearchResult, 0, searchLimit)
	for _, t := range filter.Tasks(visible, entities.TaskFilter{Search: q}, u.now()) {
		res = append(res, entities.SearchResult{
			ID:          fmt.Sprintf("task-%d", t.ID),
			Type:        "task",
			Title:       t.Title,
			Subtitle:    "Assigned to " + t.AssigneeName,
			Description: t.Description,
			Metadata:    t.Project,
		})
	}

	if access.CanSearchMembers(actor) {
		members, err := u.repo.ListMembers(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range filter.Members(members, entities.MemberFilter{Search: q}) {
			res = append(res, entities.SearchResult{
				ID:          fmt.Sprintf("member-%d", m.ID),
				Type:        "member",
				Title:       m.Name,
				Subtitle:    m.Email,
				Description: m.Department,
			})
		}
	}

	needle := strings.ToLower(q)
	for i, p := range analytics.Projects(visible, u.now()) {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		res = append(res, entities.SearchResult{
			ID:       fmt.Sprintf("project-%d", i+1),
			Type:     "project",
			Title:    p.Name,
			Subtitle: fmt.Sprintf("%d tasks, %d%% complete", p.TotalTasks, p.Progress),
			Metadata: string(p.Status),
		})
	}

	if len(res) > searchLimit {
		res = res[:searchLimit]
	}
	return res, nil
}
