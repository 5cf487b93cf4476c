package entities

import "errors"

var (
	// ErrUnauthenticated is returned when no identity accompanies a request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals that the identity fails a permission rule.
	ErrForbidden = errors.New("forbidden")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMemberNotFound is returned when a team member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmailExists signals an email already used by another member.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidAssignee signals a task reference to an unknown user.
	ErrInvalidAssignee = errors.New("invalid assignee")
	// ErrUnknownRole signals a role outside admin, manager and member.
	ErrUnknownRole = errors.New("unknown role")
	// ErrUnsupportedReport signals an unknown report type.
	ErrUnsupportedReport = errors.New("unsupported report type")
)

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrMemberNotFound)
}

// IsValidation reports whether err belongs to the validation kind.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrInvalidAssignee) ||
		errors.Is(err, ErrUnknownRole) ||
		errors.Is(err, ErrUnsupportedReport)
}
