package backend

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
)

// MemoryOption configures a Memory backend.
type MemoryOption func(*Memory)

// WithRole sets the caller role (default admin).
func WithRole(r Role) MemoryOption {
	return func(m *Memory) {
		if r == RoleAdmin || r == RoleGuest {
			m.role = r
		}
	}
}

// WithPasswordHash presets the app password, leaving the session locked.
func WithPasswordHash(h string) MemoryOption {
	return func(m *Memory) {
		m.passwordHash = h
	}
}

// WithProjects seeds the project list.
func WithProjects(names ...string) MemoryOption {
	return func(m *Memory) {
		for _, n := range names {
			m.nextID++
			m.projects = append(m.projects, Project{ID: m.nextID, Name: n})
		}
	}
}

// Memory is an in-process Backend. Project calls need an unlocked session;
// creating projects needs the admin role. Until an app password is saved
// the session counts as locked, and SaveAppPassword is the only way in.
type Memory struct {
	mu           sync.Mutex
	role         Role
	passwordHash string
	unlocked     bool
	projects     []Project
	nextID       uint64
}

var _ Backend = (*Memory)(nil)

// NewMemory returns an empty in-memory backend.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{role: RoleAdmin}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// ListProjects implements Backend.
func (m *Memory) ListProjects(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.unlocked {
		return nil, ErrLocked
	}
	out := make([]Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

// CreateProject implements Backend.
func (m *Memory) CreateProject(ctx context.Context, name string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Project{}, ErrInvalidName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.unlocked {
		return Project{}, ErrLocked
	}
	if m.role != RoleAdmin {
		return Project{}, fmt.Errorf("%w: create project as %s", ErrPermission, m.role)
	}
	m.nextID++
	p := Project{ID: m.nextID, Name: name}
	m.projects = append(m.projects, p)
	return p, nil
}

// IsUnlocked implements Backend.
func (m *Memory) IsUnlocked(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked, nil
}

// UnlockAccount implements Backend.
func (m *Memory) UnlockAccount(ctx context.Context, passwordHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.passwordHash == "" {
		return false, nil
	}
	ok := subtle.ConstantTimeCompare([]byte(m.passwordHash), []byte(passwordHash)) == 1
	if ok {
		m.unlocked = true
	}
	return ok, nil
}

// SaveAppPassword implements Backend. Replacing an existing password needs
// an unlocked session; saving unlocks the session.
func (m *Memory) SaveAppPassword(ctx context.Context, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if passwordHash == "" {
		return fmt.Errorf("backend: empty password hash")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.passwordHash != "" && !m.unlocked {
		return ErrLocked
	}
	m.passwordHash = passwordHash
	m.unlocked = true
	return nil
}

// HasPassword reports whether an app password has been saved.
func (m *Memory) HasPassword() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.passwordHash != ""
}

// Logout implements Backend.
func (m *Memory) Logout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.unlocked = false
	m.mu.Unlock()
	return nil
}

// CallerRole implements Backend.
func (m *Memory) CallerRole(ctx context.Context) (Role, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.role, nil
}
