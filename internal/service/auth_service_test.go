// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

func newAuthService(client *ent.Client) *AuthService {
	return NewAuthService(
		client,
		auth.NewPasswordManager(),
		auth.NewTokenManager("test-session-secret", time.Hour),
	)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		setupFunc func(t *testing.T, client *ent.Client)
		wantErr   bool
		wantField string
	}{
		{
			name:     "successful registration",
			userName: "张三",
			email:    "zhangsan@example.com",
			password: "secret123",
		},
		{
			name:     "duplicate email",
			userName: "李四",
			email:    "taken@example.com",
			password: "secret123",
			setupFunc: func(t *testing.T, client *ent.Client) {
				createTestUser(t, client, "existing", "taken@example.com")
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "invalid email format",
			userName:  "王五",
			email:     "not-an-email",
			password:  "secret123",
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "short password",
			userName:  "赵六",
			email:     "zhaoliu@example.com",
			password:  "12345",
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "empty name",
			userName:  "",
			email:     "noname@example.com",
			password:  "secret123",
			wantErr:   true,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			if tt.setupFunc != nil {
				tt.setupFunc(t, client)
			}

			svc := newAuthService(client)
			u, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Fields, tt.wantField)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, u.Email)
			assert.Equal(t, tt.userName, u.Name)
			assert.NotEqual(t, tt.password, u.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "login@example.com",
			password: "test-password",
		},
		{
			name:     "wrong password",
			email:    "login@example.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "test-password",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			registered := createTestUser(t, client, "login user", "login@example.com")

			svc := newAuthService(client)
			u, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, registered.ID, u.ID)

			// Token must round-trip through the session validator
			tokens := auth.NewTokenManager("test-session-secret", time.Hour)
			claims, err := tokens.ValidateSessionToken(token)
			require.NoError(t, err)
			assert.Equal(t, registered.ID.String(), claims.UserID)
			assert.Equal(t, registered.Email, claims.Email)
		})
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "current", "current@example.com")
	svc := newAuthService(client)

	got, err := svc.CurrentUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
