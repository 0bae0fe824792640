package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/repository/postgresql"
)

func TestUserRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	zofia := createUser(t, repo, "Zofia", user.RoleEmployee)
	anna := createUser(t, repo, "Anna", user.RoleAdmin)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := repo.Create(ctx, user.User{Email: "other@example.com", Name: "Anna", Role: user.RoleEmployee})
		assert.ErrorIs(t, err, user.ErrUserExists)
	})

	t.Run("get by id and name", func(t *testing.T) {
		got, err := repo.GetByID(ctx, zofia.ID)
		require.NoError(t, err)
		assert.Equal(t, "Zofia", got.Name)

		got, err = repo.GetByName(ctx, "Anna")
		require.NoError(t, err)
		assert.Equal(t, anna.ID, got.ID)

		_, err = repo.GetByName(ctx, "Nobody")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Anna", users[0].Name)

		admins, err := repo.ListByRole(ctx, user.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, anna.ID, admins[0].ID)
	})
}
