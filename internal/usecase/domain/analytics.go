package domain

import (
	"context"

	"teamboard/internal/access"
	"teamboard/internal/analytics"
	"teamboard/internal/entities"
)

func (u *Usecase) analyticsData(ctx context.Context, actor entities.User) ([]entities.Task, []entities.TeamMember, error) {
	if err := authenticate(actor); err != nil {
		return nil, nil, err
	}
	if !access.CanViewAnalytics(actor) {
		u.log.Warnw("analytics denied", "actor_id", actor.ID, "role", actor.Role)
		return nil, nil, access.Deny("analytics are available to admins and managers")
	}
	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, nil, err
	}
	members, err := u.repo.ListMembers(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tasks, members, nil
}

// Overview returns headline figures for tasks created within window.
func (u *Usecase) Overview(ctx context.Context, actor entities.User, window string) (entities.Overview, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, members, err := u.analyticsData(ctx, actor)
	if err != nil {
		return entities.Overview{}, err
	}
	d, err := analytics.ParseWindow(window)
	if err != nil {
		return entities.Overview{}, err
	}
	now := u.now()
	return analytics.Overview(analytics.CreatedWithin(tasks, d, now), members, now), nil
}

// TaskAnalytics returns status and priority distributions.
func (u *Usecase) TaskAnalytics(ctx context.Context, actor entities.User, window string) (entities.TaskBreakdown, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, _, err := u.analyticsData(ctx, actor)
	if err != nil {
		return entities.TaskBreakdown{}, err
	}
	d, err := analytics.ParseWindow(window)
	if err != nil {
		return entities.TaskBreakdown{}, err
	}
	return analytics.Breakdown(analytics.CreatedWithin(tasks, d, u.now())), nil
}

// TeamPerformance returns per-member task figures.
func (u *Usecase) TeamPerformance(ctx context.Context, actor entities.User) ([]entities.MemberPerformance, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, members, err := u.analyticsData(ctx, actor)
	if err != nil {
		return nil, err
	}
	return analytics.TeamPerformance(tasks, members), nil
}

// ProjectProgress returns per-project completion.
func (u *Usecase) ProjectProgress(ctx context.Context, actor entities.User) ([]entities.ProjectProgress, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, _, err := u.analyticsData(ctx, actor)
	if err != nil {
		return nil, err
	}
	return analytics.Projects(tasks, u.now()), nil
}
