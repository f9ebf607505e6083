package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

func TestValidateUpload(t *testing.T) {
	v := NewValidationUtil()
	valid := model.UploadRequest{Title: "Budget", Department: "Finance", Type: "Report", FileType: "pdf"}

	assert.NoError(t, v.ValidateUpload(valid))

	tests := []struct {
		name   string
		mutate func(r *model.UploadRequest)
	}{
		{"missing title", func(r *model.UploadRequest) { r.Title = "" }},
		{"blank title", func(r *model.UploadRequest) { r.Title = "   " }},
		{"missing department", func(r *model.UploadRequest) { r.Department = "" }},
		{"negative size", func(r *model.UploadRequest) { r.Size = -1 }},
		{"empty tag", func(r *model.UploadRequest) { r.Tags = []string{"ok", ""} }},
		{"unknown security level", func(r *model.UploadRequest) { r.SecurityLevel = "Secretish" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.ValidateUpload(req)
			assert.ErrorIs(t, err, docflow_errors.ErrValidation)
		})
	}
}

func TestValidateCreateDepartment(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateCreateDepartment(model.CreateDepartmentRequest{Name: "Platform", Color: "#10B981"}))
	assert.ErrorIs(t, v.ValidateCreateDepartment(model.CreateDepartmentRequest{}), docflow_errors.ErrValidation)
	assert.ErrorIs(t, v.ValidateCreateDepartment(model.CreateDepartmentRequest{Name: "A/B"}), docflow_errors.ErrValidation)
	assert.ErrorIs(t, v.ValidateCreateDepartment(model.CreateDepartmentRequest{Name: "Ops", Color: "blue"}), docflow_errors.ErrValidation)
}

func TestValidateUser(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateUser(model.User{ID: "u", Name: "U", Role: model.RoleEmployee}))
	assert.ErrorIs(t, v.ValidateUser(model.User{ID: "u", Name: "U", Role: "intern"}), docflow_errors.ErrValidation)
}
