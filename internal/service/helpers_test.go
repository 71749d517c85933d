// internal/service/helpers_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/enttest"
	"github.com/gurkanbulca/taskboard/ent/generated/notification"
	"github.com/gurkanbulca/taskboard/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
}

func createTestUser(t *testing.T, client *ent.Client, name, email string) *ent.User {
	t.Helper()

	passwordManager := auth.NewPasswordManager()
	hash, err := passwordManager.HashPassword("test-password")
	require.NoError(t, err)

	u, err := client.User.Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash(hash).
		Save(context.Background())
	require.NoError(t, err)

	return u
}

func actorFor(u *ent.User) Actor {
	return Actor{ID: u.ID, Name: u.Name, Email: u.Email}
}

func createTestTask(t *testing.T, client *ent.Client, ownerID uuid.UUID, title string, assigneeID *uuid.UUID) *ent.Task {
	t.Helper()

	task, err := client.Task.Create().
		SetTitle(title).
		SetUserID(ownerID).
		SetNillableAssignedUserID(assigneeID).
		Save(context.Background())
	require.NoError(t, err)

	return task
}

func countNotifications(t *testing.T, client *ent.Client, userID uuid.UUID, typ string) int {
	t.Helper()

	n, err := client.Notification.Query().
		Where(
			notification.UserID(userID),
			notification.TypeEQ(notification.Type(typ)),
		).
		Count(context.Background())
	require.NoError(t, err)

	return n
}
