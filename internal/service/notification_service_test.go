// internal/service/notification_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
)

func createTestNotification(t *testing.T, client *ent.Client, userID uuid.UUID, content string) *ent.Notification {
	t.Helper()

	n, err := client.Notification.Create().
		SetType("COMMENT").
		SetContent(content).
		SetUserID(userID).
		SetRelatedType("TASK").
		Save(context.Background())
	require.NoError(t, err)

	return n
}

func TestNotificationService_List(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "user", "user@example.com")
	other := createTestUser(t, client, "other", "other@example.com")
	ctx := context.Background()

	first := createTestNotification(t, client, u.ID, "第一条")
	createTestNotification(t, client, u.ID, "第二条")
	createTestNotification(t, client, other.ID, "别人的")

	svc := NewNotificationService(client)

	all, err := svc.List(ctx, u.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.MarkRead(ctx, u.ID, first.ID)
	require.NoError(t, err)

	unread, err := svc.List(ctx, u.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "第二条", unread[0].Content)
}

func TestNotificationService_MarkRead_Ownership(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "user", "user@example.com")
	other := createTestUser(t, client, "other", "other@example.com")

	n := createTestNotification(t, client, u.ID, "私密通知")

	svc := NewNotificationService(client)
	ctx := context.Background()

	// Another user's notification behaves like a missing one
	_, err := svc.MarkRead(ctx, other.ID, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	marked, err := svc.MarkRead(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.True(t, marked.IsRead)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "user", "user@example.com")
	ctx := context.Background()

	createTestNotification(t, client, u.ID, "一")
	createTestNotification(t, client, u.ID, "二")
	createTestNotification(t, client, u.ID, "三")

	svc := NewNotificationService(client)

	count, err := svc.MarkAllRead(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	unread, err := svc.List(ctx, u.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// Second pass has nothing left to flip
	count, err = svc.MarkAllRead(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNotificationService_Delete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "user", "user@example.com")
	other := createTestUser(t, client, "other", "other@example.com")

	n := createTestNotification(t, client, u.ID, "待删除")

	svc := NewNotificationService(client)
	ctx := context.Background()

	err := svc.Delete(ctx, other.ID, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, u.ID, n.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, u.ID, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
