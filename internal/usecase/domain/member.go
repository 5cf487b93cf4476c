package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamboard/internal/access"
	"teamboard/internal/entities"
	"teamboard/internal/filter"
)

// ListMembers returns the roster narrowed by f. Members below manager
// receive an empty roster.
func (u *Usecase) ListMembers(ctx context.Context, actor entities.User, f entities.MemberFilter) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	if !access.CanSearchMembers(actor) {
		u.log.Debugw("member listing withheld", "actor_id", actor.ID, "role", actor.Role)
		return []entities.TeamMember{}, nil
	}
	members, err := u.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Members(members, f), nil
}

// CreateMember adds a member to the roster.
func (u *Usecase) CreateMember(ctx context.Context, actor entities.User, in entities.NewMember) (member *entities.TeamMember, err error) {
	defer func() { u.record("member.create", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	if !access.CanCreateMember(actor, in.Role) {
		u.log.Warnw("member create denied", "actor_id", actor.ID, "role", actor.Role, "target_role", in.Role)
		if in.Role == entities.RoleAdmin {
			return nil, access.Deny("only admins can create admin users")
		}
		return nil, access.Deny("only admins and managers can create members")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)
	in.Phone = strings.TrimSpace(in.Phone)
	switch {
	case in.Name == "":
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	case in.Email == "":
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	case !in.Role.Valid():
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownRole, in.Role)
	}
	if err := u.ensureEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}

	res, err := u.repo.CreateMember(ctx, entities.TeamMember{
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		Department: in.Department,
		Phone:      in.Phone,
		JoinDate:   u.today(),
		Status:     entities.MemberActive,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("member create", "member_id", res.ID, "actor_id", actor.ID, "role", res.Role)
	return res, nil
}

// UpdateMember merges upd into the member.
func (u *Usecase) UpdateMember(ctx context.Context, actor entities.User, id int64, upd entities.MemberUpdate) (member *entities.TeamMember, err error) {
	defer func() { u.record("member.update", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	current, err := u.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanEditMember(actor, *current) {
		u.log.Warnw("member update denied", "member_id", id, "actor_id", actor.ID, "role", actor.Role)
		return nil, access.Deny("insufficient permissions to edit member")
	}
	if upd.Role != nil && !access.CanAssignRole(actor, *upd.Role) {
		u.log.Warnw("role elevation denied", "member_id", id, "actor_id", actor.ID, "target_role", *upd.Role)
		return nil, access.Deny("only admins can assign admin role")
	}

	next := *current
	if upd.Name != nil {
		if next.Name = strings.TrimSpace(*upd.Name); next.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", entities.ErrInvalidArgument)
		}
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return nil, fmt.Errorf("%w: %q", entities.ErrUnknownRole, *upd.Role)
		}
		next.Role = *upd.Role
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
		}
		next.Status = *upd.Status
	}
	if upd.Department != nil {
		next.Department = strings.TrimSpace(*upd.Department)
	}
	if upd.Phone != nil {
		next.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Email != nil {
		if next.Email = strings.TrimSpace(*upd.Email); next.Email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", entities.ErrInvalidArgument)
		}
		if err := u.ensureEmailFree(ctx, next.Email, id); err != nil {
			return nil, err
		}
	}

	res, err := u.repo.UpdateMember(ctx, next)
	if err != nil {
		return nil, err
	}
	u.log.Infow("member update", "member_id", id, "actor_id", actor.ID)
	return res, nil
}

// DeleteMember removes a member. Admin members cannot be deleted.
func (u *Usecase) DeleteMember(ctx context.Context, actor entities.User, id int64) (err error) {
	defer func() { u.record("member.delete", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return err
	}
	current, err := u.repo.GetMember(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteMember(actor, *current) {
		u.log.Warnw("member delete denied", "member_id", id, "actor_id", actor.ID, "role", actor.Role)
		if current.Role == entities.RoleAdmin {
			return access.Deny("cannot delete admin users")
		}
		return access.Deny("only admins can delete members")
	}
	if err := u.repo.DeleteMember(ctx, id); err != nil {
		return err
	}
	u.log.Infow("member delete", "member_id", id, "actor_id", actor.ID)
	return nil
}

// ensureEmailFree fails when another member than self already uses email.
// Matching is exact and case-sensitive.
func (u *Usecase) ensureEmailFree(ctx context.Context, email string, self int64) error {
	other, err := u.repo.FindMemberByEmail(ctx, email)
	switch {
	case errors.Is(err, entities.ErrMemberNotFound):
		return nil
	case err != nil:
		return err
	case other.ID == self:
		return nil
	default:
		return fmt.Errorf("%w: %s", entities.ErrEmailExists, email)
	}
}
