package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/docflow/db"
	"github.com/dev-mohitbeniwal/docflow/middleware"
)

func newLimitedRouter(cache *db.RedisCache, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(cache, limit, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiter(t *testing.T) {
	s := miniredis.RunT(t)
	cache, err := db.NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: s.Addr()}),
		[]byte("0123456789abcdef0123456789abcdef"), time.Minute)
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	router := newLimitedRouter(cache, 2)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients keep their own window
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_NoCache(t *testing.T) {
	router := newLimitedRouter(nil, 1)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	s := miniredis.RunT(t)
	cache, err := db.NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: s.Addr()}),
		[]byte("0123456789abcdef0123456789abcdef"), time.Minute)
	require.NoError(t, err)
	t.Cleanup(cache.Close)
	s.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	newLimitedRouter(cache, 1).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
