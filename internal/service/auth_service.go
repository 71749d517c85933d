// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

type AuthService struct {
	client    *ent.Client
	passwords *auth.PasswordManager
	tokens    *auth.TokenManager
}

func NewAuthService(client *ent.Client, passwords *auth.PasswordManager, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		client:    client,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates a new account. The password is hashed before
// storage and never leaves this layer in any form.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ent.User, error) {
	if name == "" {
		return nil, NewValidationError("name", "姓名不能为空")
	}
	if err := auth.ValidateEmail(email); err != nil {
		return nil, NewValidationError("email", "请输入有效的邮箱地址")
	}
	if err := s.passwords.ValidatePassword(password); err != nil {
		return nil, NewValidationError("password", "密码至少6个字符")
	}

	exists, err := s.client.User.
		Query().
		Where(user.Email(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, NewValidationError("email", "该邮箱已被注册")
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.client.User.
		Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		// Concurrent registration with the same email lands here
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("email", "该邮箱已被注册")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ent.User, string, error) {
	u, err := s.client.User.
		Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := s.passwords.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(u.ID.String(), u.Email, u.Name)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	return u, token, nil
}

// CurrentUser resolves the user behind a session.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
