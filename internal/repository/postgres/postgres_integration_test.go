package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"teamboard/config"
	"teamboard/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTaskRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	seeded, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 4)
	require.Equal(t, []string{"frontend", "ui", "design"}, seeded[0].Tags)
	require.Equal(t, entities.TaskInProgress, seeded[0].Status)

	now := time.Now().UTC().Truncate(time.Second)
	created, err := repo.CreateTask(ctx, entities.Task{
		Title:        "Write docs",
		Status:       entities.TaskTodo,
		Priority:     entities.PriorityLow,
		AssigneeID:   4,
		AssigneeName: "John Doe",
		CreatorID:    2,
		CreatorName:  "Manager User",
		DueDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    now,
		UpdatedAt:    now,
		Project:      "Docs",
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), created.ID)
	require.Empty(t, created.Tags)

	created.Status = entities.TaskCompleted
	created.Tags = []string{"docs"}
	updated, err := repo.UpdateTask(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, entities.TaskCompleted, updated.Status)
	require.Equal(t, []string{"docs"}, updated.Tags)

	require.NoError(t, repo.DeleteTask(ctx, created.ID))
	_, err = repo.GetTask(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	require.ErrorIs(t, repo.DeleteTask(ctx, created.ID), entities.ErrTaskNotFound)
}

func TestMemberRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	found, err := repo.FindMemberByEmail(ctx, "manager@company.com")
	require.NoError(t, err)
	require.Equal(t, entities.RoleManager, found.Role)

	created, err := repo.CreateMember(ctx, entities.TeamMember{
		Name:     "Eve",
		Email:    "eve@company.com",
		Role:     entities.RoleMember,
		JoinDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:   entities.MemberActive,
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), created.ID)

	_, err = repo.CreateMember(ctx, entities.TeamMember{
		Name:   "Eve again",
		Email:  "eve@company.com",
		Role:   entities.RoleMember,
		Status: entities.MemberActive,
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)

	created.Email = "admin@company.com"
	_, err = repo.UpdateMember(ctx, *created)
	require.ErrorIs(t, err, entities.ErrEmailExists)

	require.NoError(t, repo.DeleteMember(ctx, created.ID))
	_, err = repo.GetMember(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 5)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=teamboard_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		Storage: config.StorageConfig{Backend: config.BackendPostgres},
		HTTP:    config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "teamboard_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
