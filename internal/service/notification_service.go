// internal/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/notification"
)

// listLimit caps how many notifications one poll returns.
const listLimit = 50

type NotificationService struct {
	client *ent.Client
}

func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{
		client: client,
	}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*ent.Notification, error) {
	query := s.client.Notification.
		Query().
		Where(notification.UserID(userID))

	if unreadOnly {
		query = query.Where(notification.IsRead(false))
	}

	notifications, err := query.
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(listLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the is_read flag of one of the user's notifications.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*ent.Notification, error) {
	n, err := s.client.Notification.
		Query().
		Where(notification.ID(id), notification.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}

	updated, err := s.client.Notification.
		UpdateOne(n).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were affected.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.client.Notification.
		Update().
		Where(notification.UserID(userID), notification.IsRead(false)).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

// Delete removes one of the user's notifications.
func (s *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.client.Notification.
		Delete().
		Where(notification.ID(id), notification.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
