// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidEmail signals a malformed email address.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidRole signals an unrecognized role name.
	ErrInvalidRole = errors.New("invalid role")
	// ErrDuplicateEmail signals a user email conflict.
	ErrDuplicateEmail = errors.New("email exists")
	// ErrDuplicateID signals an ID collision on insert.
	ErrDuplicateID = errors.New("id exists")
	// ErrCapacityExceeded signals an insert into a full store.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound signals a failed task removal.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyProject signals a status report over a project with zero tasks.
	ErrEmptyProject = errors.New("empty project")
	// ErrUnknownKind signals an unregistered entity kind.
	ErrUnknownKind = errors.New("unknown entity kind")
)
