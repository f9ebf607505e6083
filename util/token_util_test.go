package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

func TestTokenUtil_IssueAndParse(t *testing.T) {
	tokens, err := NewTokenUtil("test-secret", time.Hour)
	require.NoError(t, err)

	user := model.User{ID: "mgr-1", Name: "James Wilson", Role: model.RoleManager}
	signed, expiresAt, err := tokens.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tokens.Parse("Bearer " + signed)
	require.NoError(t, err)
	assert.Equal(t, "mgr-1", claims.Subject)
	assert.Equal(t, model.RoleManager, claims.Role)
	assert.Equal(t, "James Wilson", claims.Name)
}

func TestTokenUtil_Rejects(t *testing.T) {
	tokens, err := NewTokenUtil("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenUtil("other-secret", time.Hour)
	require.NoError(t, err)

	signed, _, err := other.Issue(model.User{ID: "admin-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)

	_, err = tokens.Parse("")
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)

	_, err = tokens.Parse("not-a-token")
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)
}

func TestTokenUtil_Expired(t *testing.T) {
	tokens, err := NewTokenUtil("test-secret", time.Minute)
	require.NoError(t, err)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, _, err := tokens.Issue(model.User{ID: "emp-1", Role: model.RoleEmployee})
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)
}

func TestNewTokenUtil_Validation(t *testing.T) {
	_, err := NewTokenUtil("", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenUtil("secret", 0)
	assert.Error(t, err)
}
