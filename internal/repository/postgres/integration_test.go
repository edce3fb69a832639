//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dkurganov/microblog/internal/model"
	repo "github.com/dkurganov/microblog/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "microblog_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/microblog_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := model.User{
			Email:        "alice@example.com",
			Username:     "alice01",
			PasswordHash: "encoded-hash",
		}
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, saved.ID)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		byUsername, err := ur.GetByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.Equal(t, saved.ID, byUsername.ID)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		_, err = ur.Create(ctx, u)
		require.ErrorIs(t, err, model.ErrDuplicate)

		_, err = ur.GetByUsername(ctx, "nobody")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		owner, err := ur.Create(ctx, model.User{
			Email:        "owner@example.com",
			Username:     "owner01",
			PasswordHash: "encoded-hash",
		})
		require.NoError(t, err)

		rr := repo.NewRefreshTokenRepository(conn)

		require.NoError(t, rr.Insert(ctx, "token-1", owner.ID))
		// Duplicate insertion is allowed, not deduplicated.
		require.NoError(t, rr.Insert(ctx, "token-1", owner.ID))

		got, err := rr.Find(ctx, "token-1", owner.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, got)

		// Both columns must match exactly.
		_, err = rr.Find(ctx, "token-1", uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = rr.Find(ctx, "token-2", owner.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("post_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		author, err := ur.Create(ctx, model.User{
			Email:        "author@example.com",
			Username:     "author01",
			PasswordHash: "encoded-hash",
		})
		require.NoError(t, err)

		pr := repo.NewPostRepository(conn)

		created, err := pr.Create(ctx, model.Post{
			UserID:   author.ID,
			Username: author.Username,
			Title:    "hello",
			Content:  "world",
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		updated, err := pr.Update(ctx, model.Post{ID: created.ID, Title: "hi", Content: "there"})
		require.NoError(t, err)
		require.Equal(t, "hi", updated.Title)
		require.Equal(t, author.ID, updated.UserID)

		got, err := pr.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "hi", got.Title)

		list, err := pr.List(ctx, 10, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 1)

		ownerID, err := pr.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, author.ID, ownerID)

		_, err = pr.Delete(ctx, created.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
