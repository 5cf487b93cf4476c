package domain

import (
	"context"
	"testing"
	"time"

	"teamboard/internal/entities"
	"teamboard/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListTasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if fn, ok := args.Get(0).(func(context.Context, entities.Task) *entities.Task); ok {
		return fn(ctx, task), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListMembers(ctx context.Context) ([]entities.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamMember), args.Error(1)
}

func (m *repoMock) GetMember(ctx context.Context, id int64) (*entities.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) FindMemberByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) UpdateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, member)
	if fn, ok := args.Get(0).(func(context.Context, entities.TeamMember) *entities.TeamMember); ok {
		return fn(ctx, member), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) DeleteMember(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var (
	admin   = entities.User{ID: 1, Name: "Admin User", Email: "admin@company.com", Role: entities.RoleAdmin}
	manager = entities.User{ID: 2, Name: "Manager User", Email: "manager@company.com", Role: entities.RoleManager}
	member  = entities.User{ID: 3, Name: "Team Member", Email: "member@company.com", Role: entities.RoleMember}
)

var fixedNow = time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

func newUsecase(repo repository.Repository) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second,
		WithClock(func() time.Time { return fixedNow }))
}

func TestUsecase_UnauthenticatedFirst(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	ctx := context.Background()

	_, err := uc.ListTasks(ctx, entities.User{}, entities.TaskFilter{})
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
	require.ErrorIs(t, uc.DeleteTask(ctx, entities.User{}, 99), entities.ErrUnauthenticated)
	_, err = uc.CreateMember(ctx, entities.User{}, entities.NewMember{})
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
	_, err = uc.Search(ctx, entities.User{}, "ui")
	require.ErrorIs(t, err, entities.ErrUnauthenticated)

	repo.AssertNotCalled(t, "GetTask", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListTasks", mock.Anything)
}

func TestUsecase_DeleteMissingTaskIsNotFoundEvenWithoutAccess(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetTask", mock.Anything, int64(99)).Return(nil, entities.ErrTaskNotFound)

	err := uc.DeleteTask(context.Background(), member, 99)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	require.NotErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything)
}

func TestUsecase_AssigneeCannotDelete(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	task := &entities.Task{ID: 7, AssigneeID: member.ID, CreatorID: manager.ID}
	repo.On("GetTask", mock.Anything, int64(7)).Return(task, nil)

	err := uc.DeleteTask(context.Background(), member, 7)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything)
}

func TestUsecase_UpdateTaskMergesAndRefreshes(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	task := &entities.Task{
		ID: 1, Title: "UI", Status: entities.TaskTodo, Priority: entities.PriorityHigh,
		AssigneeID: member.ID, AssigneeName: "Team Member", CreatorID: manager.ID,
		CreatedAt: created, UpdatedAt: created, Tags: []string{"ui"},
	}
	repo.On("GetTask", mock.Anything, int64(1)).Return(task, nil)
	repo.On("UpdateTask", mock.Anything, mock.Anything).Return(func(_ context.Context, t entities.Task) *entities.Task {
		return &t
	}, nil)

	status := entities.TaskReview
	got, err := uc.UpdateTask(context.Background(), member, 1, entities.TaskUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entities.TaskReview, got.Status)
	require.Equal(t, "UI", got.Title)
	require.Equal(t, []string{"ui"}, got.Tags)
	require.Equal(t, fixedNow, got.UpdatedAt)
	require.Equal(t, created, got.CreatedAt)
}

func TestUsecase_UpdateTaskReassignValidatesAssignee(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	task := &entities.Task{ID: 1, Title: "UI", AssigneeID: member.ID, AssigneeName: "Team Member", CreatorID: manager.ID}
	repo.On("GetTask", mock.Anything, int64(1)).Return(task, nil)
	repo.On("GetMember", mock.Anything, int64(42)).Return(nil, entities.ErrMemberNotFound)
	repo.On("GetMember", mock.Anything, int64(4)).Return(&entities.TeamMember{ID: 4, Name: "John Doe"}, nil)
	repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(t entities.Task) bool {
		return t.AssigneeID == 4 && t.AssigneeName == "John Doe"
	})).Return(&entities.Task{ID: 1, AssigneeID: 4, AssigneeName: "John Doe"}, nil)

	missing := int64(42)
	_, err := uc.UpdateTask(context.Background(), manager, 1, entities.TaskUpdate{AssigneeID: &missing})
	require.ErrorIs(t, err, entities.ErrInvalidAssignee)

	john := int64(4)
	got, err := uc.UpdateTask(context.Background(), manager, 1, entities.TaskUpdate{AssigneeID: &john})
	require.NoError(t, err)
	require.Equal(t, "John Doe", got.AssigneeName)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateTaskForbiddenBeforeValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	other := entities.User{ID: 5, Name: "Sarah Smith", Role: entities.RoleMember}
	repo.On("GetTask", mock.Anything, int64(1)).Return(&entities.Task{ID: 1, AssigneeID: 3, CreatorID: 2}, nil)

	empty := ""
	_, err := uc.UpdateTask(context.Background(), other, 1, entities.TaskUpdate{Title: &empty})
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_CreateTaskRejectsUnknownAssignee(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetMember", mock.Anything, int64(42)).Return(nil, entities.ErrMemberNotFound)

	_, err := uc.CreateTask(context.Background(), manager, entities.NewTask{
		Title:      "Ship it",
		AssigneeID: 42,
		DueDate:    fixedNow,
	})
	require.ErrorIs(t, err, entities.ErrInvalidAssignee)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateTask(context.Background(), manager, entities.NewTask{Title: "  ", AssigneeID: 3, DueDate: fixedNow})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTask(context.Background(), manager, entities.NewTask{Title: "x", AssigneeID: 3, Priority: "critical", DueDate: fixedNow})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTask(context.Background(), manager, entities.NewTask{Title: "x", AssigneeID: 3})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskSnapshotsNames(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetMember", mock.Anything, int64(4)).Return(&entities.TeamMember{ID: 4, Name: "John Doe"}, nil)
	repo.On("GetMember", mock.Anything, manager.ID).Return(&entities.TeamMember{ID: 2, Name: "Manager User"}, nil)
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(t entities.Task) bool {
		return t.AssigneeName == "John Doe" && t.CreatorName == "Manager User" &&
			t.Status == entities.TaskTodo && t.Priority == entities.PriorityMedium &&
			t.CreatedAt.Equal(fixedNow) && len(t.Tags) == 2
	})).Return(&entities.Task{ID: 5}, nil)

	got, err := uc.CreateTask(context.Background(), manager, entities.NewTask{
		Title:      "Write docs",
		AssigneeID: 4,
		DueDate:    fixedNow,
		Tags:       []string{"docs", " docs ", "", "api"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), got.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateMemberDuplicateEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("FindMemberByEmail", mock.Anything, "john.doe@company.com").
		Return(&entities.TeamMember{ID: 4, Email: "john.doe@company.com"}, nil)

	_, err := uc.CreateMember(context.Background(), admin, entities.NewMember{
		Name: "Johnny", Email: "john.doe@company.com", Role: entities.RoleMember,
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)
	repo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
}

func TestUsecase_ManagerCannotCreateAdmin(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateMember(context.Background(), manager, entities.NewMember{
		Email: "admin@company.com", Role: entities.RoleAdmin,
	})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "FindMemberByEmail", mock.Anything, mock.Anything)
}

func TestUsecase_MemberCannotCreateMembers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateMember(context.Background(), member, entities.NewMember{
		Name: "X", Email: "x@company.com", Role: entities.RoleMember,
	})
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_ListMembersWithheldFromMembers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	res, err := uc.ListMembers(context.Background(), member, entities.MemberFilter{Search: "john"})
	require.NoError(t, err)
	require.Empty(t, res)
	repo.AssertNotCalled(t, "ListMembers", mock.Anything)
}

func TestUsecase_CreateMemberDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("FindMemberByEmail", mock.Anything, "eve@company.com").Return(nil, entities.ErrMemberNotFound)
	repo.On("CreateMember", mock.Anything, mock.MatchedBy(func(m entities.TeamMember) bool {
		return m.Status == entities.MemberActive &&
			m.JoinDate.Equal(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)) &&
			m.Name == "Eve"
	})).Return(&entities.TeamMember{ID: 6, Name: "Eve"}, nil)

	got, err := uc.CreateMember(context.Background(), manager, entities.NewMember{
		Name: " Eve ", Email: "eve@company.com", Role: entities.RoleMember,
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), got.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateMemberEmailRules(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	john := &entities.TeamMember{ID: 4, Name: "John Doe", Email: "john.doe@company.com", Role: entities.RoleMember}
	repo.On("GetMember", mock.Anything, int64(4)).Return(john, nil)
	repo.On("FindMemberByEmail", mock.Anything, "john.doe@company.com").Return(john, nil)
	repo.On("FindMemberByEmail", mock.Anything, "sarah.smith@company.com").
		Return(&entities.TeamMember{ID: 5, Email: "sarah.smith@company.com"}, nil)
	repo.On("UpdateMember", mock.Anything, mock.Anything).Return(func(_ context.Context, m entities.TeamMember) *entities.TeamMember {
		return &m
	}, nil)

	own := "john.doe@company.com"
	_, err := uc.UpdateMember(context.Background(), manager, 4, entities.MemberUpdate{Email: &own})
	require.NoError(t, err)

	taken := "sarah.smith@company.com"
	_, err = uc.UpdateMember(context.Background(), manager, 4, entities.MemberUpdate{Email: &taken})
	require.ErrorIs(t, err, entities.ErrEmailExists)
}

func TestUsecase_ManagerCannotPromoteToAdmin(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetMember", mock.Anything, int64(4)).
		Return(&entities.TeamMember{ID: 4, Email: "john.doe@company.com", Role: entities.RoleMember}, nil)

	role := entities.RoleAdmin
	taken := "admin@company.com"
	_, err := uc.UpdateMember(context.Background(), manager, 4, entities.MemberUpdate{Role: &role, Email: &taken})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "FindMemberByEmail", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything)
}

func TestUsecase_ManagerCannotEditManager(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetMember", mock.Anything, int64(2)).Return(&entities.TeamMember{ID: 2, Role: entities.RoleManager}, nil)

	name := "Renamed"
	_, err := uc.UpdateMember(context.Background(), manager, 2, entities.MemberUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_DeleteMemberRules(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	ctx := context.Background()

	repo.On("GetMember", mock.Anything, int64(1)).Return(&entities.TeamMember{ID: 1, Role: entities.RoleAdmin}, nil)
	repo.On("GetMember", mock.Anything, int64(4)).Return(&entities.TeamMember{ID: 4, Role: entities.RoleMember}, nil)
	repo.On("GetMember", mock.Anything, int64(99)).Return(nil, entities.ErrMemberNotFound)
	repo.On("DeleteMember", mock.Anything, int64(4)).Return(nil)

	require.ErrorIs(t, uc.DeleteMember(ctx, admin, 1), entities.ErrForbidden)
	require.ErrorIs(t, uc.DeleteMember(ctx, manager, 4), entities.ErrForbidden)
	require.ErrorIs(t, uc.DeleteMember(ctx, member, 99), entities.ErrMemberNotFound)
	require.NoError(t, uc.DeleteMember(ctx, admin, 4))

	repo.AssertNumberOfCalls(t, "DeleteMember", 1)
}

func TestUsecase_AnalyticsStaffOnly(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.Overview(context.Background(), member, "")
	require.ErrorIs(t, err, entities.ErrForbidden)

	_, err = uc.GenerateReport(context.Background(), member, entities.ReportRequest{
		Type: entities.ReportTaskSummary, Format: entities.FormatPDF,
	})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "ListTasks", mock.Anything)
}

func TestUsecase_LoginHeuristic(t *testing.T) {
	uc := newUsecase(&repoMock{})
	ctx := context.Background()

	u, err := uc.Login(ctx, "admin@company.com", "x")
	require.NoError(t, err)
	require.Equal(t, entities.RoleAdmin, u.Role)
	require.Equal(t, int64(1), u.ID)

	u, err = uc.Login(ctx, "manager@company.com", "")
	require.NoError(t, err)
	require.Equal(t, entities.RoleManager, u.Role)

	u, err = uc.Login(ctx, "someone@company.com", "")
	require.NoError(t, err)
	require.Equal(t, entities.RoleMember, u.Role)
	require.Equal(t, "Team Member", u.Name)
	require.Equal(t, "someone@company.com", u.Email)

	_, err = uc.Login(ctx, " ", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
