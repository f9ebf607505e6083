package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{docflow_errors.Denied("approve", "1", "document is not assigned to you"), http.StatusForbidden},
		{fmt.Errorf("%w: 9", docflow_errors.ErrDocumentNotFound), http.StatusNotFound},
		{docflow_errors.Validation("title cannot be empty"), http.StatusBadRequest},
		{docflow_errors.ErrNoDocumentsSelected, http.StatusBadRequest},
		{docflow_errors.ErrDocumentConflict, http.StatusConflict},
		{docflow_errors.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestRespondWithError_PermissionReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/documents/1/approve", nil)

	err := &docflow_errors.PermissionError{Action: "approve", DocumentID: "1", Reason: "assigned to another user (mgr-2)", BlockingUserID: "mgr-2"}
	RespondWithServiceError(c, "Failed to approve document", err)

	require.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "assigned to another user (mgr-2)", body["reason"])
	assert.Equal(t, "mgr-2", body["blockingUserId"])
	assert.True(t, c.IsAborted())
}

func TestGetUserFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserFromContext(c)
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)

	c.Set(ContextUserKey, &model.User{ID: "mgr-1"})
	user, err := GetUserFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "mgr-1", user.ID)
}
