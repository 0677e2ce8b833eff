package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// AddUser appends a user, enforcing email shape and case-insensitive
// email uniqueness at insertion time.
func (m *Memory) AddUser(_ context.Context, user *entities.User) (*entities.User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user cannot be null", entities.ErrInvalidArgument)
	}
	if len(m.users) >= m.cfg.UserCapacity {
		return nil, fmt.Errorf("%w: maximum users limit reached (%d)", entities.ErrCapacityExceeded, m.cfg.UserCapacity)
	}
	if err := entities.ValidateEmail(user.Email); err != nil {
		return nil, err
	}
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, user.Email) {
			return nil, fmt.Errorf("%w: %s", entities.ErrDuplicateEmail, user.Email)
		}
	}

	if user.ID == "" {
		id, err := m.issuer.NextID(identity.KindUser)
		if err != nil {
			return nil, fmt.Errorf("generate user id: %w", err)
		}
		user.ID = id
	} else {
		for i := range m.users {
			if m.users[i].ID == user.ID {
				return nil, fmt.Errorf("%w: user ID already exists: %s", entities.ErrDuplicateID, user.ID)
			}
		}
	}

	m.users = append(m.users, *user)
	m.log.Infow("user added", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetUserByEmail matches case-insensitively.
func (m *Memory) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be null", entities.ErrUserNotFound)
	}
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, email) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: no user with email %q", entities.ErrUserNotFound, email)
}

// GetUserByID scans the store in insertion order.
func (m *Memory) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user ID cannot be null", entities.ErrUserNotFound)
	}
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user ID %q does not exist", entities.ErrUserNotFound, id)
}

// GetAllUsers returns a snapshot in insertion order.
func (m *Memory) GetAllUsers(_ context.Context) ([]entities.User, error) {
	all := make([]entities.User, len(m.users))
	copy(all, m.users)
	return all, nil
}

// DeleteUser removes the user matched by email, compacting the store.
// Guarding the currently active user is the service layer's concern.
func (m *Memory) DeleteUser(_ context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, email) {
			id := m.users[i].ID
			m.users = append(m.users[:i], m.users[i+1:]...)
			m.log.Infow("user deleted", "user_id", id)
			return true, nil
		}
	}
	return false, nil
}
