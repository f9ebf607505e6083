package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/docflow/model"
)

func departmentsFixture() []model.Department {
	return []model.Department{
		{ID: "finance", Name: "Finance", Color: "#10B981", DocumentCount: 1},
		{
			ID: "engineering", Name: "Engineering", Color: "#3B82F6", Path: "Engineering",
			Children: []model.Department{
				{ID: "eng-frontend", Name: "Frontend", Path: "Engineering/Frontend", ParentID: "engineering"},
			},
		},
		{ID: "legal", Name: "Legal", Path: "Legal", Color: "#EF4444"},
	}
}

func TestFindDepartmentByPath_Recursive(t *testing.T) {
	d, ok := FindDepartmentByPath(departmentsFixture(), "Engineering/Frontend")
	require.True(t, ok)
	assert.Equal(t, "eng-frontend", d.ID)

	d, ok = FindDepartmentByPath(departmentsFixture(), "Finance")
	require.True(t, ok)
	assert.Equal(t, "finance", d.ID)

	_, ok = FindDepartmentByPath(departmentsFixture(), "Engineering/Backend")
	assert.False(t, ok)
}

func TestResolveDepartment_Synthesizes(t *testing.T) {
	d := ResolveDepartment(departmentsFixture(), "Engineering/Backend")
	assert.Equal(t, model.Department{
		ID:    "engineering-backend",
		Name:  "Backend",
		Color: "#6B7280",
		Path:  "Engineering/Backend",
	}, d)

	flat := ResolveDepartment(nil, "Operations")
	assert.Equal(t, "operations", flat.ID)
	assert.Equal(t, "Operations", flat.Name)
	assert.Zero(t, flat.DocumentCount)
}

func TestGroupByDepartment(t *testing.T) {
	filtered := FilterAt(fixture(), model.DefaultQuery(), adminUser, now)
	groups := GroupByDepartment(filtered, departmentsFixture())

	require.Len(t, groups, 4)
	assert.Equal(t, "finance", groups[0].Department.ID)
	assert.Equal(t, "engineering-backend", groups[1].Department.ID)
	assert.Equal(t, []string{"2", "4"}, ids(groups[1].Documents))
	assert.Equal(t, "human resources", groups[2].Department.ID)
	assert.Equal(t, "legal", groups[3].Department.ID)
}

func TestGroupByDepartment_FlattenKeepsMultiset(t *testing.T) {
	q := model.DefaultQuery()
	q.SortBy, q.SortOrder = model.SortByFileType, model.SortAsc
	filtered := FilterAt(fixture(), q, adminUser, now)

	flat := Flatten(GroupByDepartment(filtered, departmentsFixture()))
	assert.ElementsMatch(t, ids(filtered), ids(flat))
	assert.Len(t, flat, len(filtered))
}

func TestGroupByDepartment_Empty(t *testing.T) {
	assert.Empty(t, GroupByDepartment(nil, departmentsFixture()))
}
