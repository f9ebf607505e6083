// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/docflow/db"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// CacheService fronts the redis cache. A CacheService without a backing
// cache is valid and always misses.
type CacheService struct {
	cache *db.RedisCache
}

func NewCacheService(cache *db.RedisCache) *CacheService {
	return &CacheService{cache: cache}
}

func (c *CacheService) Enabled() bool {
	return c != nil && c.cache != nil
}

func (c *CacheService) GetDocuments(ctx context.Context) ([]model.Document, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}
	return c.cache.GetCachedDocuments(ctx)
}

func (c *CacheService) SetDocuments(ctx context.Context, docs []model.Document) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.CacheDocuments(ctx, docs)
}

func (c *CacheService) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	if !c.Enabled() {
		return nil, nil
	}
	return c.cache.GetCachedDocument(ctx, id)
}

func (c *CacheService) SetDocument(ctx context.Context, doc model.Document) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.CacheDocument(ctx, doc)
}

func (c *CacheService) InvalidateDocuments(ctx context.Context, ids ...string) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.InvalidateDocuments(ctx, ids...)
}

func (c *CacheService) GetDepartmentTree(ctx context.Context) ([]model.Department, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}
	return c.cache.GetCachedDepartmentTree(ctx)
}

func (c *CacheService) SetDepartmentTree(ctx context.Context, departments []model.Department) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.CacheDepartmentTree(ctx, departments)
}

func (c *CacheService) DeleteDepartmentTree(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.DeleteCachedDepartmentTree(ctx)
}

func (c *CacheService) SetUser(ctx context.Context, user model.User) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.CacheUser(ctx, user)
}

func (c *CacheService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if !c.Enabled() {
		return nil, nil
	}
	return c.cache.GetCachedUser(ctx, userID)
}

// Lock takes a cross-instance lock. Without a cache it always succeeds.
func (c *CacheService) Lock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	if !c.Enabled() {
		return "", true, nil
	}
	return c.cache.LockResource(ctx, name, ttl)
}

// Unlock releases a lock taken with Lock, identified by its token.
func (c *CacheService) Unlock(ctx context.Context, name, token string) error {
	if !c.Enabled() {
		return nil
	}
	return c.cache.UnlockResource(ctx, name, token)
}
