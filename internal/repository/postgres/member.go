package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"teamboard/internal/entities"
)

const uniqueViolation = "23505"

const (
	listMembersQuery   = "SELECT " + memberColumns + " FROM team_members ORDER BY id"
	getMemberQuery     = "SELECT " + memberColumns + " FROM team_members WHERE id=$1"
	memberByEmailQuery = "SELECT " + memberColumns + " FROM team_members WHERE email=$1"
	insertMemberQuery  = `
INSERT INTO team_members(name, email, role, department, phone, join_date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + memberColumns
	updateMemberQuery = `
UPDATE team_members
SET name=$2, email=$3, role=$4, department=$5, phone=$6, status=$7
WHERE id=$1
RETURNING ` + memberColumns
	deleteMemberQuery = "DELETE FROM team_members WHERE id=$1"
)

// ListMembers returns the roster ordered by id.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.TeamMember, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, listMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// GetMember fetches a member by id.
func (p *Postgres) GetMember(ctx context.Context, id int64) (*entities.TeamMember, error) {
	return p.oneMember(ctx, getMemberQuery, id)
}

// FindMemberByEmail fetches a member by exact email.
func (p *Postgres) FindMemberByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	return p.oneMember(ctx, memberByEmailQuery, email)
}

func (p *Postgres) oneMember(ctx context.Context, query string, arg any) (*entities.TeamMember, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	m, err := scanMember(p.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// CreateMember inserts a member; a duplicate email maps to ErrEmailExists.
func (p *Postgres) CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	m, err := scanMember(p.db.QueryRow(ctx, insertMemberQuery,
		member.Name, member.Email, string(member.Role), member.Department,
		member.Phone, member.JoinDate, string(member.Status)))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to insert member", "error", err, "email", member.Email)
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", m.ID, "role", m.Role)
	return &m, nil
}

// UpdateMember overwrites the mutable columns of a member.
func (p *Postgres) UpdateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	m, err := scanMember(p.db.QueryRow(ctx, updateMemberQuery,
		member.ID, member.Name, member.Email, string(member.Role),
		member.Department, member.Phone, string(member.Status)))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, entities.ErrMemberNotFound
		case isUniqueViolation(err):
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to update member", "error", err, "member_id", member.ID)
		return nil, fmt.Errorf("update member: %w", err)
	}

	p.log.Infow("member updated", "member_id", m.ID)
	return &m, nil
}

// DeleteMember removes a member by id. Tasks keep their assignee snapshot.
func (p *Postgres) DeleteMember(ctx context.Context, id int64) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member deleted", "member_id", id)
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
