// controller/audit_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/docflow/audit"
	"github.com/dev-mohitbeniwal/docflow/controller"
	test_mock "github.com/dev-mohitbeniwal/docflow/test/mock"
)

func TestAuditController(t *testing.T) {
	auditService := new(test_mock.MockAuditService)
	router, api := setupRouter(testManager)
	controller.NewAuditController(auditService).RegisterRoutes(api)

	t.Run("QueryLogs_Filters", func(t *testing.T) {
		from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		auditService.On("QueryLogs", mock.Anything, mock.MatchedBy(func(q audit.Query) bool {
			return q.From.Equal(from) && q.To.IsZero() && q.ResourceID == "doc-1" && q.UserID == ""
		})).Return([]audit.AuditLog{{ID: "a2"}, {ID: "a1"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit?from=2024-07-01T00:00:00Z&resourceId=doc-1&limit=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		logs := decode[[]audit.AuditLog](t, w)
		assert.Len(t, logs, 1)
		assert.Equal(t, "a2", logs[0].ID)
	})

	t.Run("QueryLogs_BadTimestamp", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit?to=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	auditService.AssertExpectations(t)
}
