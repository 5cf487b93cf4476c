package entities

import "time"

// MemberStatus marks whether a team member is currently active.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// Valid reports whether s is a known member status.
func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInactive
}

// TeamMember is a person on the team roster. Email is unique across members.
type TeamMember struct {
	ID         int64
	Name       string
	Email      string
	Role       Role
	Department string
	Phone      string
	JoinDate   time.Time
	Status     MemberStatus
}

// MemberUpdate carries a partial member update; nil fields are left untouched.
type MemberUpdate struct {
	Name       *string
	Email      *string
	Role       *Role
	Department *string
	Phone      *string
	Status     *MemberStatus
}

// NewMember is the input for member creation. Status defaults to active.
type NewMember struct {
	Name       string
	Email      string
	Role       Role
	Department string
	Phone      string
}
