// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// Bootstrap seeds the default admin and regular accounts from config
// and makes the admin current. Safe to call once per process; a seed
// that already exists is left alone.
func (u *Usecase) Bootstrap(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	seeds := []entities.User{
		{Name: u.seed.AdminName, Email: u.seed.AdminEmail, Role: entities.RoleAdmin},
		{Name: u.seed.UserName, Email: u.seed.UserEmail, Role: entities.RoleRegular},
	}
	for i := range seeds {
		if _, err := u.repo.AddUser(ctx, &seeds[i]); err != nil {
			if errors.Is(err, entities.ErrDuplicateEmail) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", seeds[i].Email, err)
		}
	}

	u.currentEmail = u.seed.AdminEmail
	u.log.Infow("bootstrap complete", "current_user", u.currentEmail)
	return nil
}

// CreateUser builds an account with a validated email and a freshly
// issued ID. The result is not stored; AddUser inserts it.
func (u *Usecase) CreateUser(ctx context.Context, name, email string, isAdmin bool) (*entities.User, error) {
	if err := entities.ValidateEmail(email); err != nil {
		return nil, err
	}

	id, err := u.issuer.NextID(identity.KindUser)
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}
	role := entities.RoleRegular
	if isAdmin {
		role = entities.RoleAdmin
	}
	return &entities.User{ID: id, Name: name, Email: email, Role: role}, nil
}

// AddUser inserts an account into the store.
func (u *Usecase) AddUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user == nil {
		return nil, fmt.Errorf("%w: user cannot be null", entities.ErrInvalidArgument)
	}
	res, err := u.repo.AddUser(ctx, user)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user create", "user_id", res.ID)
	return res, nil
}

// GetUserByEmail matches case-insensitively.
func (u *Usecase) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUserByEmail(ctx, email)
}

// GetUserByID returns an account by ID.
func (u *Usecase) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUserByID(ctx, id)
}

// GetAllUsers returns a snapshot of every account in insertion order.
func (u *Usecase) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetAllUsers(ctx)
}

// SwitchUser makes the account matched by email current. A miss leaves
// the current user unchanged and reports false.
func (u *Usecase) SwitchUser(ctx context.Context, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	u.currentEmail = user.Email
	u.log.Infow("user switched", "user_id", user.ID)
	return true, nil
}

// DeleteUser removes the account matched by email. The currently
// active user cannot be deleted.
func (u *Usecase) DeleteUser(ctx context.Context, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return false, nil
	}
	if u.currentEmail != "" && strings.EqualFold(email, u.currentEmail) {
		u.log.Warnw("refusing to delete current user", "email", email)
		return false, nil
	}
	return u.repo.DeleteUser(ctx, email)
}

// CurrentUser returns the active account, fetched fresh from the store.
func (u *Usecase) CurrentUser(ctx context.Context) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if u.currentEmail == "" {
		return nil, fmt.Errorf("%w: no current user", entities.ErrUserNotFound)
	}
	return u.repo.GetUserByEmail(ctx, u.currentEmail)
}

// ValidateEmail checks the strict address shape.
func (u *Usecase) ValidateEmail(email string) error {
	return entities.ValidateEmail(email)
}

// ValidateRole normalizes a role name case-insensitively and reports
// whether it grants admin capability.
func (u *Usecase) ValidateRole(role string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if normalized == "" {
		return false, fmt.Errorf("%w: role cannot be null or empty", entities.ErrInvalidRole)
	}
	switch normalized {
	case "admin", "adminuser":
		return true, nil
	case "regular", "regularuser":
		return false, nil
	default:
		return false, fmt.Errorf("%w: role must be 'admin' or 'regular', got %q", entities.ErrInvalidRole, role)
	}
}
