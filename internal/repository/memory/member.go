package memory

import (
	"context"
	"slices"

	"teamboard/internal/entities"
)

// ListMembers returns the roster in creation order.
func (m *Memory) ListMembers(_ context.Context) ([]entities.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.members), nil
}

// GetMember returns a member by id.
func (m *Memory) GetMember(_ context.Context, id int64) (*entities.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.memberIndex(func(mb entities.TeamMember) bool { return mb.ID == id })
	if i < 0 {
		return nil, entities.ErrMemberNotFound
	}
	mb := m.members[i]
	return &mb, nil
}

// FindMemberByEmail returns the member with exactly this email.
func (m *Memory) FindMemberByEmail(_ context.Context, email string) (*entities.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.memberIndex(func(mb entities.TeamMember) bool { return mb.Email == email })
	if i < 0 {
		return nil, entities.ErrMemberNotFound
	}
	mb := m.members[i]
	return &mb, nil
}

// CreateMember stores a member under the next free id.
func (m *Memory) CreateMember(_ context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member.ID = m.nextMemberID
	m.nextMemberID++
	m.members = append(m.members, member)

	m.log.Infow("member created", "member_id", member.ID, "role", member.Role)
	return &member, nil
}

// UpdateMember replaces the stored member with the same id.
func (m *Memory) UpdateMember(_ context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.memberIndex(func(mb entities.TeamMember) bool { return mb.ID == member.ID })
	if i < 0 {
		return nil, entities.ErrMemberNotFound
	}
	m.members[i] = member

	m.log.Infow("member updated", "member_id", member.ID)
	return &member, nil
}

// DeleteMember removes a member by id. Tasks keep their assignee snapshot.
func (m *Memory) DeleteMember(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.memberIndex(func(mb entities.TeamMember) bool { return mb.ID == id })
	if i < 0 {
		return entities.ErrMemberNotFound
	}
	m.members = slices.Delete(m.members, i, i+1)

	m.log.Infow("member deleted", "member_id", id)
	return nil
}

func (m *Memory) memberIndex(match func(entities.TeamMember) bool) int {
	return slices.IndexFunc(m.members, match)
}
