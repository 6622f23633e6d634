// Package backend describes the account and project service that gates
// access to the beat maker, plus an in-memory implementation used by the
// host programs and tests.
package backend

import (
	"context"
	"errors"
)

var (
	// ErrLocked is returned by calls that need an unlocked session.
	ErrLocked = errors.New("backend: locked, unlock your account")
	// ErrInvalidName is returned for an empty project name.
	ErrInvalidName = errors.New("backend: invalid project name")
	// ErrPermission is returned when the caller's role may not perform a call.
	ErrPermission = errors.New("backend: permission denied")
)

// Role is the caller's access level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// Project is a named project entry.
type Project struct {
	ID   uint64
	Name string
}

// Backend is the remote collaborator. Password arguments are hashes from
// HashAppPassword, never plaintext.
type Backend interface {
	ListProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, name string) (Project, error)
	IsUnlocked(ctx context.Context) (bool, error)
	UnlockAccount(ctx context.Context, passwordHash string) (bool, error)
	SaveAppPassword(ctx context.Context, passwordHash string) error
	Logout(ctx context.Context) error
	CallerRole(ctx context.Context) (Role, error)
}

// IsLocked reports whether err is a locked-session rejection.
func IsLocked(err error) bool {
	return errors.Is(err, ErrLocked)
}

// CallerRole returns b's role for the caller, treating any failure as guest.
func CallerRole(ctx context.Context, b Backend) Role {
	r, err := b.CallerRole(ctx)
	if err != nil || r != RoleAdmin {
		return RoleGuest
	}
	return r
}
