package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/docflow/model"
)

const testKey = "0123456789abcdef0123456789abcdef"

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	cache, err := NewRedisCacheWithClient(client, []byte(testKey), time.Minute)
	require.NoError(t, err)
	t.Cleanup(cache.Close)
	return cache, s
}

func TestNewRedisCacheWithClient_RejectsShortKey(t *testing.T) {
	_, err := NewRedisCacheWithClient(redis.NewClient(&redis.Options{}), []byte("short"), time.Minute)
	assert.Error(t, err)
}

func TestDocumentCacheRoundTrip(t *testing.T) {
	cache, s := setupTestRedis(t)
	ctx := context.Background()

	_, found, err := cache.GetCachedDocuments(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	docs := []model.Document{{ID: "1", Title: "Budget", SecurityLevel: model.SecurityTopSecret}}
	require.NoError(t, cache.CacheDocuments(ctx, docs))
	require.NoError(t, cache.CacheDocument(ctx, docs[0]))

	raw, err := s.Get(documentListKey)
	require.NoError(t, err)
	assert.NotContains(t, raw, "Budget", "entries are stored encrypted")
	assert.Equal(t, time.Minute, s.TTL(documentListKey))

	got, found, err := cache.GetCachedDocuments(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Budget", got[0].Title)

	one, err := cache.GetCachedDocument(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, model.SecurityTopSecret, one.SecurityLevel)

	require.NoError(t, cache.InvalidateDocuments(ctx, "1"))
	assert.False(t, s.Exists(documentListKey))
	assert.False(t, s.Exists(documentKey("1")))
}

func TestCachedEntryExpires(t *testing.T) {
	cache, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.CacheUser(ctx, model.User{ID: "mgr-1", Name: "James"}))
	s.FastForward(2 * time.Minute)

	user, err := cache.GetCachedUser(ctx, "mgr-1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDepartmentTreeCache(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()
	tree := []model.Department{{ID: "eng", Name: "Engineering", Children: []model.Department{{ID: "be", Name: "Backend"}}}}

	require.NoError(t, cache.CacheDepartmentTree(ctx, tree))
	got, found, err := cache.GetCachedDepartmentTree(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Backend", got[0].Children[0].Name)

	require.NoError(t, cache.DeleteCachedDepartmentTree(ctx))
	_, found, err = cache.GetCachedDepartmentTree(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRateLimit(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := cache.RateLimit(ctx, "client-a", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}
	allowed, err := cache.RateLimit(ctx, "client-a", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = cache.RateLimit(ctx, "client-b", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLockResource(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	token, locked, err := cache.LockResource(ctx, "documents", time.Second)
	require.NoError(t, err)
	assert.True(t, locked)
	assert.NotEmpty(t, token)

	_, locked, err = cache.LockResource(ctx, "documents", time.Second)
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, cache.UnlockResource(ctx, "documents", token))
	_, locked, err = cache.LockResource(ctx, "documents", time.Second)
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestUnlockResource_KeepsOtherHoldersLock(t *testing.T) {
	cache, s := setupTestRedis(t)
	ctx := context.Background()

	stale, locked, err := cache.LockResource(ctx, "documents", time.Second)
	require.NoError(t, err)
	require.True(t, locked)

	// the first holder overruns its ttl and a second holder takes over
	s.FastForward(2 * time.Second)
	current, locked, err := cache.LockResource(ctx, "documents", time.Second)
	require.NoError(t, err)
	require.True(t, locked)

	err = cache.UnlockResource(ctx, "documents", stale)
	assert.ErrorIs(t, err, ErrLockNotHeld)
	assert.True(t, s.Exists("lock:documents"))

	got, err := s.Get("lock:documents")
	require.NoError(t, err)
	assert.Equal(t, current, got)

	require.NoError(t, cache.UnlockResource(ctx, "documents", current))
	assert.False(t, s.Exists("lock:documents"))
}

func TestPublishNotification(t *testing.T) {
	cache, s := setupTestRedis(t)
	ctx := context.Background()

	sub := cache.SubscribeNotifications(ctx)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notifications"}, s.PubSubChannels(""))

	require.NoError(t, cache.PublishNotification(ctx, map[string]string{"documentId": "1"}))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"documentId":"1"}`, msg.Payload)
}
