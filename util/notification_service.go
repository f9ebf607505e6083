// util/notification_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/db"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// Notification is the payload fanned out over redis pub/sub.
type Notification struct {
	DocumentID string    `json:"documentId,omitempty"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sentAt"`
}

// NotificationService tells users about workflow outcomes. Messages are
// always logged and, when redis is configured, published to subscribers.
type NotificationService struct {
	cache *db.RedisCache
}

func NewNotificationService(cache *db.RedisCache) *NotificationService {
	return &NotificationService{cache: cache}
}

func (n *NotificationService) Notify(ctx context.Context, documentID, message string) error {
	logger.Info("NOTIFICATION",
		zap.String("docID", documentID),
		zap.String("message", message))

	if n == nil || n.cache == nil {
		return nil
	}
	return n.cache.PublishNotification(ctx, Notification{
		DocumentID: documentID,
		Message:    message,
		SentAt:     time.Now().UTC(),
	})
}

func (n *NotificationService) NotifyDepartmentChange(ctx context.Context, changeType string, dept model.Department) error {
	logger.Info("NOTIFICATION: Department "+changeType,
		zap.String("deptID", dept.ID),
		zap.String("deptName", dept.Name))

	if n == nil || n.cache == nil {
		return nil
	}
	return n.cache.PublishNotification(ctx, Notification{
		Message: "Department " + dept.Name + " " + changeType,
		SentAt:  time.Now().UTC(),
	})
}

// Subscribe streams published notifications. The subscription is live once
// Subscribe returns; stop ends it and closes the channel.
func (n *NotificationService) Subscribe(ctx context.Context) (notes <-chan Notification, stop func(), err error) {
	out := make(chan Notification, 16)
	if n == nil || n.cache == nil {
		close(out)
		return out, func() {}, nil
	}

	sub := n.cache.SubscribeNotifications(ctx)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to notifications: %w", err)
	}

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var note Notification
			if err := json.Unmarshal([]byte(msg.Payload), &note); err != nil {
				logger.Warn("Dropping malformed notification", zap.Error(err))
				continue
			}
			select {
			case out <- note:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { sub.Close() }, nil
}
