package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/search"
	"github.com/dev-mohitbeniwal/docflow/workflow"
)

func TestListDepartments_LiveCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tree, err := env.depts.ListDepartments(ctx)
	require.NoError(t, err)

	engineering, ok := search.FindDepartmentByPath(tree, "Engineering")
	require.True(t, ok)
	// doc-2 and doc-6 in Backend, doc-5 in Frontend
	assert.Equal(t, 3, engineering.DocumentCount)

	backend, ok := search.FindDepartmentByPath(tree, "Engineering/Backend")
	require.True(t, ok)
	assert.Equal(t, 2, backend.DocumentCount)

	// doc-7 is deleted
	finance, ok := search.FindDepartmentByPath(tree, "Finance")
	require.True(t, ok)
	assert.Equal(t, 1, finance.DocumentCount)

	_, err = env.docs.DeleteDocument(ctx, "doc-1", managerUser, workflow.Preconfirmed(true))
	require.NoError(t, err)

	tree, err = env.depts.ListDepartments(ctx)
	require.NoError(t, err)
	finance, _ = search.FindDepartmentByPath(tree, "Finance")
	assert.Equal(t, 0, finance.DocumentCount)
}

func TestLookupDepartment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dept, err := env.depts.LookupDepartment(ctx, "Engineering/Frontend")
	require.NoError(t, err)
	assert.Equal(t, "engineering-frontend", dept.ID)
	assert.Equal(t, 1, dept.DocumentCount)

	virtual, err := env.depts.LookupDepartment(ctx, "Operations/IT")
	require.NoError(t, err)
	assert.Equal(t, "operations-it", virtual.ID)
	assert.Equal(t, "IT", virtual.Name)

	_, err = env.depts.LookupDepartment(ctx, " / ")
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)
}

func TestCreateDepartment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// warm the cache so creation has to invalidate it
	_, err := env.depts.ListDepartments(ctx)
	require.NoError(t, err)
	require.True(t, env.redis.Exists("departments:tree"))

	dept, err := env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{
		Name:     "Platform",
		ParentID: "engineering",
	}, managerUser)
	require.NoError(t, err)
	assert.Equal(t, "engineering-platform", dept.ID)
	assert.Equal(t, "Engineering/Platform", dept.Path)
	assert.NotEmpty(t, dept.Color)
	assert.False(t, env.redis.Exists("departments:tree"))

	tree, err := env.depts.ListDepartments(ctx)
	require.NoError(t, err)
	found, ok := search.FindDepartmentByPath(tree, "Engineering/Platform")
	require.True(t, ok)
	assert.Equal(t, "engineering", found.ParentID)

	root, err := env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{Name: "Operations", Color: "#123456"}, adminUser)
	require.NoError(t, err)
	assert.Equal(t, "operations", root.ID)
	assert.Equal(t, "#123456", root.Color)
}

func TestCreateDepartment_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     model.CreateDepartmentRequest
		user    *model.User
		wantErr error
	}{
		{"employee", model.CreateDepartmentRequest{Name: "Ops"}, employeeUser, docflow_errors.ErrPermissionDenied},
		{"no user", model.CreateDepartmentRequest{Name: "Ops"}, nil, docflow_errors.ErrUnauthorized},
		{"blank name", model.CreateDepartmentRequest{Name: "  "}, managerUser, docflow_errors.ErrValidation},
		{"slash in name", model.CreateDepartmentRequest{Name: "A/B"}, managerUser, docflow_errors.ErrValidation},
		{"duplicate", model.CreateDepartmentRequest{Name: "Backend", ParentID: "engineering"}, managerUser, docflow_errors.ErrDepartmentConflict},
		{"unknown parent", model.CreateDepartmentRequest{Name: "Ops", ParentID: "nope"}, managerUser, docflow_errors.ErrDepartmentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.depts.CreateDepartment(ctx, tt.req, tt.user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateDepartment_RejectsCollidingIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	archive, err := env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{Name: "Archive"}, managerUser)
	require.NoError(t, err)
	require.Equal(t, "archive", archive.ID)

	// differs only by case
	_, err = env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{Name: "archive"}, managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrDepartmentConflict)

	// "Archive-X" and "Archive/X" share the id archive-x
	_, err = env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{Name: "Archive-X"}, managerUser)
	require.NoError(t, err)
	_, err = env.depts.CreateDepartment(ctx, model.CreateDepartmentRequest{Name: "X", ParentID: "archive"}, managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrDepartmentConflict)

	tree, err := env.depts.ListDepartments(ctx)
	require.NoError(t, err)
	ids := map[string]int{}
	var walk func([]model.Department)
	walk = func(departments []model.Department) {
		for _, d := range departments {
			ids[d.ID]++
			walk(d.Children)
		}
	}
	walk(tree)
	for id, n := range ids {
		assert.Equal(t, 1, n, "department id %s", id)
	}
}
