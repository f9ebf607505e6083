package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/middleware"
	"github.com/dev-mohitbeniwal/docflow/model"
	mock_service "github.com/dev-mohitbeniwal/docflow/test/service_mock"
	"github.com/dev-mohitbeniwal/docflow/util"
)

func newAuthRouter(t *testing.T, users middleware.UserLookup, roles ...model.Role) (*gin.Engine, *util.TokenUtil) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := util.NewTokenUtil("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.Auth(tokens, users)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, err := util.GetUserFromContext(c)
		require.NoError(t, err)
		c.String(http.StatusOK, user.ID)
	})
	r.GET("/whoami", handlers...)
	return r, tokens
}

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employee := &model.User{ID: "emp-1", Name: "Sarah Chen", Role: model.RoleEmployee}
	users := mock_service.NewMockIUserService(ctrl)
	router, tokens := newAuthRouter(t, users)

	t.Run("ValidToken", func(t *testing.T) {
		users.EXPECT().GetUser(gomock.Any(), "emp-1").Return(employee, nil)
		token, _, err := tokens.Issue(*employee)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "emp-1", w.Body.String())
	})

	t.Run("MissingToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ForgedToken", func(t *testing.T) {
		other, err := util.NewTokenUtil("another-secret", time.Hour)
		require.NoError(t, err)
		token, _, err := other.Issue(*employee)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UserRemoved", func(t *testing.T) {
		users.EXPECT().GetUser(gomock.Any(), "emp-1").Return(nil, docflow_errors.ErrUserNotFound)
		token, _, err := tokens.Issue(*employee)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.User{ID: "admin-1", Name: "Alex Morgan", Role: model.RoleAdmin}
	manager := &model.User{ID: "mgr-1", Name: "James Wilson", Role: model.RoleManager}
	users := mock_service.NewMockIUserService(ctrl)
	router, tokens := newAuthRouter(t, users, model.RoleAdmin)

	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{"admin allowed", admin, http.StatusOK},
		{"manager forbidden", manager, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users.EXPECT().GetUser(gomock.Any(), tt.user.ID).Return(tt.user, nil)
			token, _, err := tokens.Issue(*tt.user)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
