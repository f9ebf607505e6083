// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// ValidationUtil runs struct-tag validation and the rules tags cannot express.
// Every failure wraps errors.ErrValidation.
type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *ValidationUtil) ValidateUpload(req model.UploadRequest) error {
	if err := v.structErr(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Title) == "" {
		return docflow_errors.Validation("title cannot be blank")
	}
	if req.SecurityLevel != "" && !req.SecurityLevel.Valid() {
		return docflow_errors.Validation("unknown security level %q", req.SecurityLevel)
	}
	return nil
}

func (v *ValidationUtil) ValidateCreateDepartment(req model.CreateDepartmentRequest) error {
	if err := v.structErr(req); err != nil {
		return err
	}
	if strings.Contains(req.Name, "/") {
		return docflow_errors.Validation("department name cannot contain '/'")
	}
	if strings.TrimSpace(req.Name) == "" {
		return docflow_errors.Validation("department name cannot be blank")
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.ID == "" {
		return docflow_errors.Validation("user ID cannot be empty")
	}
	if user.Name == "" {
		return docflow_errors.Validation("user name cannot be empty")
	}
	if !user.Role.Valid() {
		return docflow_errors.Validation("unknown role %q", user.Role)
	}
	return nil
}

// structErr flattens validator output into one readable message.
func (v *ValidationUtil) structErr(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", docflow_errors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return docflow_errors.Validation("%s", strings.Join(msgs, "; "))
}
