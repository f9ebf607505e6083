// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/config"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
)

const (
	documentListKey   = "documents:all"
	departmentTreeKey = "departments:tree"
	notificationsChan = "notifications"
)

// RedisCache stores encrypted JSON snapshots and backs the rate limiter.
type RedisCache struct {
	client        *redis.Client
	encryptionKey []byte
	defaultTTL    time.Duration
}

func InitRedis() (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GetString("redis.addr"),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache, err := NewRedisCacheWithClient(client,
		[]byte(config.GetString("redis.encryptionKey")),
		config.GetDuration("redis.defaultCacheTTL"))
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to Redis")
	return cache, nil
}

func NewRedisCacheWithClient(client *redis.Client, encryptionKey []byte, defaultTTL time.Duration) (*RedisCache, error) {
	if len(encryptionKey) != 32 {
		return nil, fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}
	return &RedisCache{client: client, encryptionKey: encryptionKey, defaultTTL: defaultTTL}, nil
}

func (r *RedisCache) Client() *redis.Client {
	return r.client
}

func (r *RedisCache) Close() {
	if err := r.client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}
}

func (r *RedisCache) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(r.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (r *RedisCache) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(r.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func (r *RedisCache) setEncrypted(ctx context.Context, key string, value interface{}) error {
	plain, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	sealed, err := r.encrypt(plain)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, base64.StdEncoding.EncodeToString(sealed), r.defaultTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}

// getEncrypted reports found=false on a cache miss.
func (r *RedisCache) getEncrypted(ctx context.Context, key string, dst interface{}) (bool, error) {
	encoded, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	plain, err := r.decrypt(sealed)
	if err != nil {
		return false, fmt.Errorf("failed to decrypt %s: %w", key, err)
	}
	if err := json.Unmarshal(plain, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) del(ctx context.Context, keys ...string) error {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete %v from cache: %w", keys, err)
	}
	return nil
}

func documentKey(id string) string {
	return fmt.Sprintf("document:%s", id)
}

func (r *RedisCache) CacheDocuments(ctx context.Context, docs []model.Document) error {
	if err := r.setEncrypted(ctx, documentListKey, docs); err != nil {
		return err
	}
	logger.Debug("Document collection cached successfully", zap.Int("count", len(docs)))
	return nil
}

func (r *RedisCache) GetCachedDocuments(ctx context.Context) ([]model.Document, bool, error) {
	var docs []model.Document
	found, err := r.getEncrypted(ctx, documentListKey, &docs)
	if err != nil || !found {
		return nil, false, err
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, true, nil
}

func (r *RedisCache) CacheDocument(ctx context.Context, doc model.Document) error {
	if err := r.setEncrypted(ctx, documentKey(doc.ID), doc); err != nil {
		return err
	}
	logger.Debug("Document cached successfully", zap.String("docID", doc.ID))
	return nil
}

func (r *RedisCache) GetCachedDocument(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	found, err := r.getEncrypted(ctx, documentKey(id), &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

// InvalidateDocuments drops the collection snapshot and the given entries.
func (r *RedisCache) InvalidateDocuments(ctx context.Context, ids ...string) error {
	keys := []string{documentListKey}
	for _, id := range ids {
		keys = append(keys, documentKey(id))
	}
	if err := r.del(ctx, keys...); err != nil {
		return err
	}
	logger.Debug("Document cache invalidated", zap.Strings("docIDs", ids))
	return nil
}

func (r *RedisCache) CacheDepartmentTree(ctx context.Context, departments []model.Department) error {
	return r.setEncrypted(ctx, departmentTreeKey, departments)
}

func (r *RedisCache) GetCachedDepartmentTree(ctx context.Context) ([]model.Department, bool, error) {
	var depts []model.Department
	found, err := r.getEncrypted(ctx, departmentTreeKey, &depts)
	if err != nil || !found {
		return nil, false, err
	}
	return depts, true, nil
}

func (r *RedisCache) DeleteCachedDepartmentTree(ctx context.Context) error {
	return r.del(ctx, departmentTreeKey)
}

func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (r *RedisCache) CacheUser(ctx context.Context, user model.User) error {
	return r.setEncrypted(ctx, userKey(user.ID), user)
}

func (r *RedisCache) GetCachedUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	found, err := r.getEncrypted(ctx, userKey(userID), &user)
	if err != nil || !found {
		return nil, err
	}
	logger.Debug("User retrieved from cache", zap.String("userID", userID))
	return &user, nil
}

// PublishNotification fans a message out to subscribers of the
// notifications channel.
func (r *RedisCache) PublishNotification(ctx context.Context, payload interface{}) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := r.client.Publish(ctx, notificationsChan, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// SubscribeNotifications returns a subscription to the notifications channel.
func (r *RedisCache) SubscribeNotifications(ctx context.Context) *redis.PubSub {
	return r.client.Subscribe(ctx, notificationsChan)
}

// RateLimit records one hit for key in a sliding window and reports whether
// the caller is still within limit.
func (r *RedisCache) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := r.client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// ErrLockNotHeld is returned by UnlockResource when the lock expired or
// belongs to another holder.
var ErrLockNotHeld = errors.New("lock not held")

// unlockScript deletes the lock only while it still carries the caller's token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func lockKey(resourceName string) string {
	return fmt.Sprintf("lock:%s", resourceName)
}

// LockResource tries to take the lock once. The returned token must be
// passed to UnlockResource.
func (r *RedisCache) LockResource(ctx context.Context, resourceName string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	locked, err := r.client.SetNX(ctx, lockKey(resourceName), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	if !locked {
		return "", false, nil
	}
	return token, true, nil
}

func (r *RedisCache) UnlockResource(ctx context.Context, resourceName, token string) error {
	released, err := unlockScript.Run(ctx, r.client, []string{lockKey(resourceName)}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if released == 0 {
		return fmt.Errorf("%w: %s", ErrLockNotHeld, resourceName)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
