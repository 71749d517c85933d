// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

// defaultPassword is assigned to users created through the management
// endpoint without an explicit password.
const defaultPassword = "123456"

type UserService struct {
	client    *ent.Client
	passwords *auth.PasswordManager
}

func NewUserService(client *ent.Client, passwords *auth.PasswordManager) *UserService {
	return &UserService{
		client:    client,
		passwords: passwords,
	}
}

// ListAll returns every user, newest first.
func (s *UserService) ListAll(ctx context.Context) ([]*ent.User, error) {
	users, err := s.client.User.
		Query().
		Order(ent.Desc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Search finds up to 10 users matching the query by name or email,
// excluding the actor. Feeds the @-mention autocomplete.
func (s *UserService) Search(ctx context.Context, actorID uuid.UUID, query string) ([]*ent.User, error) {
	users, err := s.client.User.
		Query().
		Where(
			user.Or(
				user.NameContainsFold(query),
				user.EmailContainsFold(query),
			),
			user.IDNEQ(actorID),
		).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Create adds a user through the management endpoint. Omitting the
// password falls back to a default one.
func (s *UserService) Create(ctx context.Context, name, email, password string) (*ent.User, error) {
	if err := auth.ValidateEmail(email); err != nil {
		return nil, NewValidationError("email", "请输入有效的邮箱地址")
	}

	exists, err := s.client.User.
		Query().
		Where(user.Email(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, NewValidationError("email", "该邮箱已被使用")
	}

	if password == "" {
		password = defaultPassword
	}
	if err := s.passwords.ValidatePassword(password); err != nil {
		return nil, NewValidationError("password", "密码至少6个字符")
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
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("email", "该邮箱已被使用")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UserUpdateInput carries optional fields of an update request.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Update changes a user's name, email or password. A new email must
// not belong to another user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UserUpdateInput) (*ent.User, error) {
	existing, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	update := s.client.User.UpdateOneID(id)

	if input.Name != nil {
		update = update.SetName(*input.Name)
	}

	if input.Email != nil && *input.Email != existing.Email {
		if err := auth.ValidateEmail(*input.Email); err != nil {
			return nil, NewValidationError("email", "请输入有效的邮箱地址")
		}

		taken, err := s.client.User.
			Query().
			Where(user.Email(*input.Email), user.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, NewValidationError("email", "该邮箱已被使用")
		}
		update = update.SetEmail(*input.Email)
	}

	if input.Password != nil {
		if err := s.passwords.ValidatePassword(*input.Password); err != nil {
			return nil, NewValidationError("password", "密码至少6个字符")
		}
		hash, err := s.passwords.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update = update.SetPasswordHash(hash)
	}

	u, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete removes a user and, per the schema's referential rules, the
// records they own. Users cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if id == actorID {
		return ErrSelfDelete
	}

	if _, err := s.client.User.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := s.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
