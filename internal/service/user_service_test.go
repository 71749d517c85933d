// internal/service/user_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

func newUserService(client *ent.Client) *UserService {
	return NewUserService(client, auth.NewPasswordManager())
}

func TestUserService_Create(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newUserService(client)
	ctx := context.Background()

	u, err := svc.Create(ctx, "新同事", "new@example.com", "")
	require.NoError(t, err)

	// Omitted password falls back to the default one
	passwords := auth.NewPasswordManager()
	assert.NoError(t, passwords.ComparePassword(u.PasswordHash, "123456"))

	_, err = svc.Create(ctx, "重复", "new@example.com", "secret123")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
}

func TestUserService_PasswordErrors(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newUserService(client)
	ctx := context.Background()

	var verr *ValidationError

	_, err := svc.Create(ctx, "短密码", "short@example.com", "12345")
	require.Error(t, err)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "password")

	// bcrypt rejects inputs over 72 bytes; that surfaces as an internal
	// failure, not a field message
	long := strings.Repeat("x", 80)
	_, err = svc.Create(ctx, "超长密码", "long@example.com", long)
	require.Error(t, err)
	assert.False(t, errors.As(err, &verr))

	u := createTestUser(t, client, "updatee", "updatee@example.com")

	short := "12345"
	_, err = svc.Update(ctx, u.ID, UserUpdateInput{Password: &short})
	require.Error(t, err)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "password")

	_, err = svc.Update(ctx, u.ID, UserUpdateInput{Password: &long})
	require.Error(t, err)
	assert.False(t, errors.As(err, &verr))
}

func TestUserService_Update(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "old name", "old@example.com")
	createTestUser(t, client, "neighbor", "taken@example.com")

	svc := newUserService(client)
	ctx := context.Background()

	newName := "new name"
	updated, err := svc.Update(ctx, u.ID, UserUpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "new name", updated.Name)
	assert.Equal(t, "old@example.com", updated.Email)

	takenEmail := "taken@example.com"
	_, err = svc.Update(ctx, u.ID, UserUpdateInput{Email: &takenEmail})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")

	// Re-submitting the current email is not a conflict
	sameEmail := "old@example.com"
	_, err = svc.Update(ctx, u.ID, UserUpdateInput{Email: &sameEmail})
	assert.NoError(t, err)

	newPassword := "changed123"
	updated, err = svc.Update(ctx, u.ID, UserUpdateInput{Password: &newPassword})
	require.NoError(t, err)

	passwords := auth.NewPasswordManager()
	assert.NoError(t, passwords.ComparePassword(updated.PasswordHash, newPassword))

	_, err = svc.Update(ctx, uuid.New(), UserUpdateInput{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	actor := createTestUser(t, client, "actor", "actor@example.com")
	victim := createTestUser(t, client, "victim", "victim@example.com")

	svc := newUserService(client)
	ctx := context.Background()

	err := svc.Delete(ctx, actor.ID, actor.ID)
	assert.ErrorIs(t, err, ErrSelfDelete)

	err = svc.Delete(ctx, actor.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, actor.ID, victim.ID)
	require.NoError(t, err)

	_, err = client.User.Get(ctx, victim.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestUserService_Search(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	actor := createTestUser(t, client, "searcher", "searcher@example.com")
	match := createTestUser(t, client, "Zhang Wei", "zhangwei@example.com")
	createTestUser(t, client, "unrelated", "other@example.com")

	svc := newUserService(client)
	ctx := context.Background()

	results, err := svc.Search(ctx, actor.ID, "zhang")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)

	// The searcher never appears in their own results
	results, err = svc.Search(ctx, actor.ID, "searcher")
	require.NoError(t, err)
	assert.Empty(t, results)
}
