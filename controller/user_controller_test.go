// controller/user_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/docflow/controller"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	mock_service "github.com/dev-mohitbeniwal/docflow/test/service_mock"
	"github.com/dev-mohitbeniwal/docflow/util"
)

func TestUserController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := mock_service.NewMockIUserService(ctrl)
	router, api := setupRouter(testManager)
	controller.NewUserController(mockUserService).RegisterRoutes(api)

	t.Run("CurrentUser", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "mgr-1", decode[model.User](t, w).ID)
	})

	t.Run("ListReviewers", func(t *testing.T) {
		mockUserService.EXPECT().
			ListReviewers(gomock.Any()).
			Return([]model.User{{ID: "mgr-1", Role: model.RoleManager}, {ID: "admin-1", Role: model.RoleAdmin}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/reviewers", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]model.User](t, w), 2)
	})

	t.Run("GetUser_NotFound", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "ghost").
			Return(nil, docflow_errors.ErrUserNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, err := util.NewTokenUtil("test-secret", time.Hour)
	require.NoError(t, err)
	mockUserService := mock_service.NewMockIUserService(ctrl)
	router, api := setupRouter(nil)
	controller.NewAuthController(mockUserService, tokens).RegisterRoutes(api)

	t.Run("IssueToken_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "mgr-1").
			Return(testManager, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"userId":"mgr-1"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[struct {
			Token string     `json:"token"`
			User  model.User `json:"user"`
		}](t, w)
		claims, err := tokens.Parse(body.Token)
		require.NoError(t, err)
		assert.Equal(t, "mgr-1", claims.Subject)
		assert.Equal(t, model.RoleManager, claims.Role)
		assert.Equal(t, "James Wilson", body.User.Name)
	})

	t.Run("IssueToken_UnknownUser", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "ghost").
			Return(nil, docflow_errors.ErrUserNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"userId":"ghost"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("IssueToken_MissingUserID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
