package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

func TestGetUser_CachesResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.GetUser(ctx, "mgr-2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Patel", user.Name)
	assert.True(t, env.redis.Exists("user:mgr-2"))

	cached, err := env.users.GetUser(ctx, "mgr-2")
	require.NoError(t, err)
	assert.Equal(t, user, cached)
}

func TestGetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, docflow_errors.ErrUserNotFound)

	_, err = env.users.GetUser(context.Background(), "")
	assert.ErrorIs(t, err, docflow_errors.ErrUserNotFound)
}

func TestListUsersAndReviewers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	users, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "James Wilson", users[0].Name)

	reviewers, err := env.users.ListReviewers(ctx)
	require.NoError(t, err)
	require.Len(t, reviewers, 3)
	for _, r := range reviewers {
		assert.NotEqual(t, model.RoleEmployee, r.Role)
	}
}
