package domain

import (
	"context"
	"fmt"
	"strings"

	"teamboard/internal/entities"
)

// Login derives the session identity from the email address. The password
// is accepted as given.
func (u *Usecase) Login(_ context.Context, email, _ string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.User{}, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	var user entities.User
	switch {
	case strings.Contains(email, "admin"):
		user = entities.User{ID: 1, Name: "Admin User", Role: entities.RoleAdmin}
	case strings.Contains(email, "manager"):
		user = entities.User{ID: 2, Name: "Manager User", Role: entities.RoleManager}
	default:
		user = entities.User{ID: 3, Name: "Team Member", Role: entities.RoleMember}
	}
	user.Email = email

	u.log.Infow("login", "user_id", user.ID, "role", user.Role)
	return user, nil
}
