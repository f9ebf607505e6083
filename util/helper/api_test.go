package helper_util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/documents?limit=2&offset=1", nil)
	limit, offset, err := GetPaginationParams(c)
	require.NoError(t, err)
	assert.Equal(t, 2, limit)
	assert.Equal(t, 1, offset)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/documents?limit=-1", nil)
	_, _, err = GetPaginationParams(c)
	assert.Error(t, err)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/documents?limit=abc", nil)
	_, _, err = GetPaginationParams(c)
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, Paginate(items, 0, 0))
	assert.Equal(t, []int{2, 3}, Paginate(items, 2, 1))
	assert.Equal(t, []int{5}, Paginate(items, 10, 4))
	assert.Empty(t, Paginate(items, 2, 9))
}
